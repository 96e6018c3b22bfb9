package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitTripRequest struct {
	Destination   string          `json:"destination" binding:"required"`
	Purpose       string          `json:"purpose"`
	StartDate     string          `json:"start_date" binding:"required"`
	EndDate       string          `json:"end_date" binding:"required"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

type RejectTripRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

type UpdateActualCostRequest struct {
	ActualCost decimal.Decimal `json:"actual_cost"`
}

type TripResponse struct {
	ID              int64   `json:"id"`
	RequesterID     int64   `json:"requester_id"`
	Destination     string  `json:"destination"`
	Purpose         string  `json:"purpose"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Duration        int     `json:"duration"`
	EstimatedCost   string  `json:"estimated_cost"`
	ActualCost      string  `json:"actual_cost"`
	Status          string  `json:"status"`
	RequestedAt     string  `json:"requested_at"`
	ApproverID      *int64  `json:"approver_id,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func mapToResponse(t Trip) TripResponse {
	resp := TripResponse{
		ID:            t.ID,
		RequesterID:   t.RequesterID,
		Destination:   t.Destination,
		Purpose:       t.Purpose,
		StartDate:     t.StartDate.Format("2006-01-02"),
		EndDate:       t.EndDate.Format("2006-01-02"),
		Duration:      t.Duration(),
		EstimatedCost: t.EstimatedCost.StringFixed(2),
		ActualCost:    t.ActualCost.StringFixed(2),
		Status:        t.Status,
		RequestedAt:   t.RequestedAt.Format(time.RFC3339),
	}
	resp.ApproverID = t.ApproverID
	if t.ApprovedAt != nil {
		v := t.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = t.RejectionReason
	return resp
}

func mapToListResponse(trips []Trip) []TripResponse {
	resp := make([]TripResponse, len(trips))
	for i, t := range trips {
		resp[i] = mapToResponse(t)
	}
	return resp
}
