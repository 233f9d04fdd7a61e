package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreatePaymentRequest struct {
	MethodID    int64           `json:"payment_method_id" validate:"required,gt=0"`
	TreasurerID int64           `json:"treasurer_id" validate:"required,gt=0"`
	Value       decimal.Decimal `json:"payed_value"`
	Date        string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

type PatchPaymentRequest struct {
	MethodID    *int64           `json:"payment_method_id" validate:"omitempty,gt=0"`
	TreasurerID *int64           `json:"treasurer_id" validate:"omitempty,gt=0"`
	Value       *decimal.Decimal `json:"payed_value"`
	Date        *string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE DTOs (report)
========================================================= */

// ReportRow is one payment of the camp report, fully denormalized for the
// treasurer's spreadsheet.
type ReportRow struct {
	PaymentID        int64           `json:"payment_id"`
	PaymentDate      time.Time       `json:"payment_date"`
	Value            decimal.Decimal `json:"payed_value" gorm:"column:payed_value"`
	MethodName       string          `json:"method_name"`
	ParticipantName  string          `json:"participant_name"`
	CongregationName string          `json:"congregation_name"`
	TreasurerName    string          `json:"treasurer_name"`
	CreatorName      string          `json:"creator_name"`
}

// MethodTotal is the per-method rollup shown above the report table.
type MethodTotal struct {
	MethodName string          `json:"method_name"`
	Total      decimal.Decimal `json:"total"`
}

type CampPaymentsReport struct {
	CampID         int64           `json:"camp_id"`
	Rows           []ReportRow     `json:"rows"`
	TotalsByMethod []MethodTotal   `json:"totals_by_method"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}
