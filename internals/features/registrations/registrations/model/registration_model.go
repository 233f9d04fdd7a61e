package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* ===================== Enum (string) ===================== */

const (
	RegistrationStatusInProgress = "in_progress"
	RegistrationStatusCancelled  = "cancelled"
)

/* ===================== Model ===================== */

// Registration ties a participant to a camp with a price snapshot.
// final_price is frozen at create time: later edits to the camp's price table
// never move it, only an explicit PATCH does. Cancelling is one-way and keeps
// every payment already made.
type Registration struct {
	RegistrationID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	RegistrationParticipantID  int64 `gorm:"column:participant_id;not null;index" json:"participant_id"`
	RegistrationCampID         int64 `gorm:"column:camp_id;not null;index" json:"camp_id"`
	RegistrationCongregationID int64 `gorm:"column:congregation_id;not null" json:"congregation_id"`
	RegistrationTierID         int64 `gorm:"column:participant_tier_id;not null" json:"participant_tier_id"`
	RegistrationPackageID      int64 `gorm:"column:registration_package_id;not null" json:"registration_package_id"`

	RegistrationFinalPrice decimal.Decimal `gorm:"column:final_price;type:numeric(12,2);not null" json:"final_price"`
	RegistrationStatus     string          `gorm:"column:status;type:varchar(20);not null;default:'in_progress';index" json:"status"`

	RegistrationRegistrantID uuid.UUID `gorm:"column:registrant_id;type:uuid;not null" json:"registrant_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Registration) TableName() string { return "registrations" }

func (m *Registration) IsCancelled() bool {
	return m.RegistrationStatus == RegistrationStatusCancelled
}
