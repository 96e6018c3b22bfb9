package rbac

// Role identifies what a person is; Capability identifies what a role may do.
// Authorization is a lookup in the grants table below, never an ordinal
// comparison between roles.

type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleHRD        Role = "HRD"
	RoleSupervisor Role = "SUPERVISOR"
	RoleFinance    Role = "FINANCE"
	RoleSysAdmin   Role = "SYSADMIN"
)

type Capability string

const (
	CapManagePeople  Capability = "manage-people"
	CapApproveLeave  Capability = "approve-leave"
	CapApproveTrips  Capability = "approve-trips"
	CapManagePayroll Capability = "manage-payroll"
)

var grants = map[Role][]Capability{
	RoleEmployee:   {},
	RoleHRD:        {CapManagePeople},
	RoleSupervisor: {CapApproveLeave, CapApproveTrips},
	RoleFinance:    {CapManagePayroll},
	RoleSysAdmin:   {CapManagePeople, CapApproveLeave, CapApproveTrips, CapManagePayroll},
}

// Valid reports whether role is a known role.
func Valid(role Role) bool {
	_, ok := grants[role]
	return ok
}

// Can reports whether role holds capability.
func Can(role Role, capability Capability) bool {
	for _, c := range grants[role] {
		if c == capability {
			return true
		}
	}
	return false
}

func CanManagePeople(role Role) bool  { return Can(role, CapManagePeople) }
func CanApproveLeave(role Role) bool  { return Can(role, CapApproveLeave) }
func CanApproveTrips(role Role) bool  { return Can(role, CapApproveTrips) }
func CanManagePayroll(role Role) bool { return Can(role, CapManagePayroll) }

// Roles lists every known role, for validation and seeding.
func Roles() []Role {
	return []Role{RoleEmployee, RoleHRD, RoleSupervisor, RoleFinance, RoleSysAdmin}
}
