package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enum (string) ===================== */

const (
	LogActionCreate    = "CREATE"
	LogActionUpdate    = "UPDATE"
	LogActionDelete    = "DELETE"
	LogActionCancelled = "CANCELLED"
)

/* ===================== Model ===================== */

// PaymentLog is one append-only audit row. Rows are never updated or deleted;
// the trail is the financial history of a registration.
type PaymentLog struct {
	PaymentLogID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	PaymentLogAdminUserID    uuid.UUID `gorm:"column:admin_user_id;type:uuid;not null;index" json:"admin_user_id"`
	PaymentLogRegistrationID int64     `gorm:"column:registration_id;not null;index" json:"registration_id"`
	PaymentLogPaymentID      *int64    `gorm:"column:payment_id" json:"payment_id,omitempty"`

	PaymentLogAction  string            `gorm:"column:action;type:varchar(20);not null" json:"action"`
	PaymentLogDetails string            `gorm:"column:details;type:text;not null" json:"details"`
	PaymentLogMeta    datatypes.JSONMap `gorm:"column:meta;type:jsonb" json:"meta,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_payment_logs_created_at,sort:desc" json:"created_at"`
}

func (PaymentLog) TableName() string { return "payment_logs" }
