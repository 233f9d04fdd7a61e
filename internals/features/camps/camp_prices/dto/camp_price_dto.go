package dto

import (
	"github.com/shopspring/decimal"

	"acampamentos_backend/internals/features/camps/camp_prices/model"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateCampPriceRequest struct {
	TierID    int64           `json:"participant_tier_id" validate:"required,gt=0"`
	PackageID int64           `json:"registration_package_id" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

func (r CreateCampPriceRequest) ToModel(campID int64) model.CampPrice {
	return model.CampPrice{
		CampPriceCampID:    campID,
		CampPriceTierID:    r.TierID,
		CampPricePackageID: r.PackageID,
		CampPriceValue:     helper.RoundMoney(r.Price),
	}
}

type PatchCampPriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

func (r PatchCampPriceRequest) ApplyTo(m *model.CampPrice) {
	if r.Price != nil {
		m.CampPriceValue = helper.RoundMoney(*r.Price)
	}
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

// CampPriceRow is the listing row with the tier/package names joined in so
// the price table screen needs no extra lookups.
type CampPriceRow struct {
	ID          int64           `json:"id"`
	CampID      int64           `json:"camp_id"`
	TierID      int64           `json:"participant_tier_id"`
	TierName    string          `json:"tier_name"`
	PackageID   int64           `json:"registration_package_id"`
	PackageName string          `json:"package_name"`
	Price       decimal.Decimal `json:"price"`
}

type CampPriceResponse struct {
	ID        int64           `json:"id"`
	CampID    int64           `json:"camp_id"`
	TierID    int64           `json:"participant_tier_id"`
	PackageID int64           `json:"registration_package_id"`
	Price     decimal.Decimal `json:"price"`
}

func FromModel(m model.CampPrice) CampPriceResponse {
	return CampPriceResponse{
		ID:        m.CampPriceID,
		CampID:    m.CampPriceCampID,
		TierID:    m.CampPriceTierID,
		PackageID: m.CampPricePackageID,
		Price:     m.CampPriceValue,
	}
}
