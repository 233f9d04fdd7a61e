package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"acampamentos_backend/internals/features/camps/camp_prices/model"
)

/* =========================
   Errors
========================= */

var (
	// ErrPriceNotFound means no price row matches the (camp, tier, package) triple.
	ErrPriceNotFound = errors.New("preço não cadastrado para essa combinação")
	// ErrPriceAmbiguous means more than one row matched. The unique index makes
	// this unreachable on a healthy schema; it guards imported legacy data.
	ErrPriceAmbiguous = errors.New("mais de um preço cadastrado para essa combinação")
)

/* =========================
   PriceResolver
========================= */

// PriceResolver answers "what does this participant pay for this camp".
// Lookup is an exact match on the full triple; there is no fallback or
// wildcard row.
type PriceResolver struct {
	DB *gorm.DB
}

func NewPriceResolver(db *gorm.DB) *PriceResolver {
	return &PriceResolver{DB: db}
}

// Resolve returns the configured amount for the triple.
// Any ID <= 0 short-circuits to ErrPriceNotFound without touching the DB.
func (r *PriceResolver) Resolve(ctx context.Context, campID, tierID, packageID int64) (decimal.Decimal, error) {
	if campID <= 0 || tierID <= 0 || packageID <= 0 {
		return decimal.Zero, ErrPriceNotFound
	}

	var rows []model.CampPrice
	err := r.DB.WithContext(ctx).
		Where("camp_id = ? AND participant_tier_id = ? AND registration_package_id = ?",
			campID, tierID, packageID).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return decimal.Zero, err
	}

	switch len(rows) {
	case 0:
		return decimal.Zero, ErrPriceNotFound
	case 1:
		return rows[0].CampPriceValue, nil
	default:
		return decimal.Zero, ErrPriceAmbiguous
	}
}
