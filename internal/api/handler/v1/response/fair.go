package response

import "github.com/shopspring/decimal"

// FairSummary carries the derived values of one fair; they are recomputed on
// every request and never cached.
type FairSummary struct {
	FairID               string          `json:"fair_id"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	TotalStaff           int             `json:"total_staff"`
	AttendanceProjection int             `json:"attendance_projection"`
}

type Selection struct {
	FairID string `json:"fair_id,omitempty"`
}

type Locale struct {
	Locale string `json:"locale"`
}
