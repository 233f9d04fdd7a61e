package dto

import (
	"strings"
	"time"

	"acampamentos_backend/internals/features/camps/camps/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateCampRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

func (r *CreateCampRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateCampRequest) ToModel() model.Camp {
	return model.Camp{
		CampName:   r.Name,
		CampStatus: model.CampStatusActive,
	}
}

type PatchCampRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=120"`
}

func (r PatchCampRequest) ApplyTo(m *model.Camp) {
	if r.Name != nil {
		m.CampName = strings.TrimSpace(*r.Name)
	}
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type CampResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.Camp) CampResponse {
	return CampResponse{
		ID:        m.CampID,
		Name:      m.CampName,
		Status:    m.CampStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(ms []model.Camp) []CampResponse {
	out := make([]CampResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
