package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* ===================== Model ===================== */

// Payment is one installment towards a registration's final_price.
// payed_value is strictly positive; refunds are out of scope and corrections
// go through the audited PATCH.
type Payment struct {
	PaymentID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	PaymentRegistrationID int64 `gorm:"column:registration_id;not null;index" json:"registration_id"`
	PaymentMethodID       int64 `gorm:"column:payment_method_id;not null" json:"payment_method_id"`
	PaymentTreasurerID    int64 `gorm:"column:treasurer_id;not null" json:"treasurer_id"`

	PaymentValue decimal.Decimal `gorm:"column:payed_value;type:numeric(12,2);not null" json:"payed_value"`
	PaymentDate  time.Time       `gorm:"column:payment_date;type:date;not null" json:"payment_date"`

	PaymentCreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
