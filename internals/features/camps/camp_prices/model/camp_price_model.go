package model

import (
	"time"

	"github.com/shopspring/decimal"
)

/* ===================== Model ===================== */

// CampPrice is one row of the per-camp price table: the amount charged for a
// given participant tier and registration package inside a single camp.
// The triple (camp, tier, package) is unique so a lookup resolves to at most
// one amount.
type CampPrice struct {
	CampPriceID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	CampPriceCampID    int64 `gorm:"column:camp_id;not null;uniqueIndex:uniq_camp_tier_package,priority:1" json:"camp_id"`
	CampPriceTierID    int64 `gorm:"column:participant_tier_id;not null;uniqueIndex:uniq_camp_tier_package,priority:2" json:"participant_tier_id"`
	CampPricePackageID int64 `gorm:"column:registration_package_id;not null;uniqueIndex:uniq_camp_tier_package,priority:3" json:"registration_package_id"`

	CampPriceValue decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CampPrice) TableName() string { return "camp_prices" }
