package person

import (
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Password   string          `json:"password" binding:"required"`
	Role       string          `json:"role"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateSalaryRequest struct {
	BaseSalary decimal.Decimal `json:"base_salary"`
}

type PersonResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	JoinDate           string `json:"join_date"`
	RemainingLeaveDays int    `json:"remaining_leave_days"`
	BaseSalary         string `json:"base_salary"`
	Active             bool   `json:"active"`
}

func mapToResponse(p Person) PersonResponse {
	return PersonResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Role:               string(p.Role),
		JoinDate:           p.JoinDate.Format("2006-01-02"),
		RemainingLeaveDays: p.RemainingLeaveDays,
		BaseSalary:         p.BaseSalary.StringFixed(2),
		Active:             p.Active,
	}
}

func mapToListResponse(persons []Person) []PersonResponse {
	resp := make([]PersonResponse, len(persons))
	for i, p := range persons {
		resp[i] = mapToResponse(p)
	}
	return resp
}
