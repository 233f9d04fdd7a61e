package model

import (
	"time"
)

/* ===================== Enum (string) ===================== */

const (
	CampStatusActive   = "active"
	CampStatusArchived = "archived"
)

/* ===================== Model ===================== */

// Camp is a bounded event/session participants register for.
// Archiving is a soft-delete: archived camps leave the active list but stay
// restorable with every registration intact.
type Camp struct {
	CampID     int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CampName   string `gorm:"column:name;type:varchar(120);not null" json:"name"`
	CampStatus string `gorm:"column:status;type:varchar(20);not null;default:'active';index" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Camp) TableName() string { return "camps" }

func (m *Camp) IsArchived() bool { return m.CampStatus == CampStatusArchived }
