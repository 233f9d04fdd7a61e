package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"acampamentos_backend/internals/features/registrations/registrations/service"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// NewParticipantInline creates the person together with the registration when
// the search found nobody.
type NewParticipantInline struct {
	Name           string  `json:"name" validate:"required,min=3,max=160"`
	CongregationID int64   `json:"congregation_id" validate:"required,gt=0"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
}

// InitialPaymentInline is the optional first installment taken at the desk
// while the registration is being created.
type InitialPaymentInline struct {
	MethodID    int64           `json:"payment_method_id" validate:"required,gt=0"`
	TreasurerID int64           `json:"treasurer_id" validate:"required,gt=0"`
	Value       decimal.Decimal `json:"payed_value"`
	Date        string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

type CreateRegistrationRequest struct {
	CampID int64 `json:"camp_id" validate:"required,gt=0"`

	// Exactly one of ParticipantID / NewParticipant.
	ParticipantID  *int64                `json:"participant_id" validate:"omitempty,gt=0"`
	NewParticipant *NewParticipantInline `json:"new_participant"`

	CongregationID int64 `json:"congregation_id" validate:"required,gt=0"`
	TierID         int64 `json:"participant_tier_id" validate:"required,gt=0"`
	PackageID      int64 `json:"registration_package_id" validate:"required,gt=0"`

	InitialPayment *InitialPaymentInline `json:"initial_payment"`
}

func (r *CreateRegistrationRequest) Normalize() {
	if r.NewParticipant != nil {
		r.NewParticipant.Name = strings.TrimSpace(r.NewParticipant.Name)
	}
}

type PatchRegistrationRequest struct {
	CongregationID *int64           `json:"congregation_id" validate:"omitempty,gt=0"`
	TierID         *int64           `json:"participant_tier_id" validate:"omitempty,gt=0"`
	PackageID      *int64           `json:"registration_package_id" validate:"omitempty,gt=0"`
	FinalPrice     *decimal.Decimal `json:"final_price"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

// RegistrationListRow is one line of the camp dashboard.
type RegistrationListRow struct {
	ID               int64           `json:"id"`
	ParticipantID    int64           `json:"participant_id"`
	ParticipantName  string          `json:"participant_name"`
	CongregationName string          `json:"congregation_name"`
	TierName         string          `json:"tier_name"`
	PackageName      string          `json:"package_name"`
	FinalPrice       decimal.Decimal `json:"final_price"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PaymentRow is one installment inside the registration detail.
type PaymentRow struct {
	ID            int64           `json:"id"`
	Value         decimal.Decimal `json:"payed_value" gorm:"column:payed_value"`
	Date          time.Time       `json:"payment_date" gorm:"column:payment_date"`
	MethodName    string          `json:"method_name"`
	TreasurerName string          `json:"treasurer_name"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RegistrationHeader struct {
	ID               int64           `json:"id"`
	CampID           int64           `json:"camp_id"`
	CampName         string          `json:"camp_name"`
	ParticipantID    int64           `json:"participant_id"`
	ParticipantName  string          `json:"participant_name"`
	CongregationID   int64           `json:"congregation_id"`
	CongregationName string          `json:"congregation_name"`
	TierID           int64           `json:"participant_tier_id" gorm:"column:participant_tier_id"`
	TierName         string          `json:"tier_name"`
	PackageID        int64           `json:"registration_package_id" gorm:"column:registration_package_id"`
	PackageName      string          `json:"package_name"`
	FinalPrice       decimal.Decimal `json:"final_price"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type RegistrationDetailResponse struct {
	RegistrationHeader
	Payments []PaymentRow   `json:"payments"`
	Ledger   service.Ledger `json:"ledger"`
}

// ResolvePriceResponse is the answer of the re-resolution endpoint. The new
// amount is never applied here; the client confirms and PATCHes final_price.
type ResolvePriceResponse struct {
	Price              decimal.Decimal `json:"price"`
	DiffersFromCurrent bool            `json:"differs_from_current"`
	CurrentFinalPrice  decimal.Decimal `json:"current_final_price"`
}
