package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"acampamentos_backend/internals/features/audit/payment_logs/model"
)

/* =========================
   AuditLogger
========================= */

// AuditLogger appends rows to payment_logs. Logging never fails the business
// operation that triggered it: an insert error goes to the server log and the
// caller proceeds.
type AuditLogger struct {
	DB *gorm.DB
}

func NewAuditLogger(db *gorm.DB) *AuditLogger {
	return &AuditLogger{DB: db}
}

type Entry struct {
	AdminUserID    uuid.UUID
	RegistrationID int64
	PaymentID      *int64
	Action         string
	Details        string
	Meta           datatypes.JSONMap
}

// Record inserts one audit row. The insert runs on the DB's own context, not
// the request's, so a client disconnect after the business write still gets
// its trail entry.
func (a *AuditLogger) Record(e Entry) {
	row := model.PaymentLog{
		PaymentLogAdminUserID:    e.AdminUserID,
		PaymentLogRegistrationID: e.RegistrationID,
		PaymentLogPaymentID:      e.PaymentID,
		PaymentLogAction:         e.Action,
		PaymentLogDetails:        e.Details,
		PaymentLogMeta:           e.Meta,
	}
	if err := a.DB.Create(&row).Error; err != nil {
		log.Printf("❌ [AUDIT] falha ao registrar log (registration=%d action=%s): %v",
			e.RegistrationID, e.Action, err)
	}
}
