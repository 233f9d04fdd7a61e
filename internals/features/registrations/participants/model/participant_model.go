package model

import "time"

/* ===================== Model ===================== */

// Participant is a person that can be enrolled in camps. The same person is
// reused across camps, so search-before-create matters more than hard
// uniqueness on the name.
type Participant struct {
	ParticipantID             int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParticipantName           string  `gorm:"column:name;type:varchar(160);not null;index" json:"name"`
	ParticipantCongregationID int64   `gorm:"column:congregation_id;not null;index" json:"congregation_id"`
	ParticipantPhone          *string `gorm:"column:phone;type:varchar(32)" json:"phone,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Participant) TableName() string { return "participants" }
