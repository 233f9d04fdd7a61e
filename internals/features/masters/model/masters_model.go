package model

import "time"

/* =========================================================
   Master data (lookup tables)
   All five share the same shape: id + unique name.
========================================================= */

type Congregation struct {
	CongregationID   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CongregationName string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Congregation) TableName() string { return "congregations" }

type ParticipantTier struct {
	ParticipantTierID   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParticipantTierName string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ParticipantTier) TableName() string { return "participant_tiers" }

type RegistrationPackage struct {
	RegistrationPackageID   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RegistrationPackageName string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	CreatedAt               time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RegistrationPackage) TableName() string { return "registration_packages" }

type PaymentMethod struct {
	PaymentMethodID   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PaymentMethodName string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

type Treasurer struct {
	TreasurerID   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TreasurerName string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Treasurer) TableName() string { return "treasurers" }
