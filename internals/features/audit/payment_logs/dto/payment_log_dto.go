package dto

import (
	"time"
)

/* =========================================================
   RESPONSE DTOs
========================================================= */

// TrailRow is one line of the audit trail screen: the raw log plus the names
// a human needs to read it (who did it, whose registration it touched).
type TrailRow struct {
	ID              int64     `json:"id"`
	Action          string    `json:"action"`
	Details         string    `json:"details"`
	ActorName       string    `json:"actor_name"`
	ParticipantName string    `json:"participant_name"`
	RegistrationID  int64     `json:"registration_id"`
	PaymentID       *int64    `json:"payment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
