package payroll

import "time"

type GeneratePayrollRequest struct {
	PersonID    int64  `json:"person_id" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type PayrollResponse struct {
	ID          int64  `json:"id"`
	PersonID    int64  `json:"person_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	BaseSalary  string `json:"base_salary"`
	Deduction   string `json:"deduction"`
	Allowance   string `json:"allowance"`
	NetSalary   string `json:"net_salary"`
	Paid        bool   `json:"paid"`
	PaymentDate string `json:"payment_date"`
	CreatedAt   string `json:"created_at"`
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          p.ID,
		PersonID:    p.PersonID,
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
		BaseSalary:  p.BaseSalary.StringFixed(2),
		Deduction:   p.Deduction.StringFixed(2),
		Allowance:   p.Allowance.StringFixed(2),
		NetSalary:   p.NetSalary.StringFixed(2),
		Paid:        p.Paid,
		PaymentDate: p.PaymentDate.Format(time.RFC3339),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}
