package dto

import (
	"strings"

	"acampamentos_backend/internals/features/registrations/participants/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type CreateParticipantRequest struct {
	Name           string  `json:"name" validate:"required,min=3,max=160"`
	CongregationID int64   `json:"congregation_id" validate:"required,gt=0"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
}

func (r *CreateParticipantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Phone != nil {
		p := strings.TrimSpace(*r.Phone)
		if p == "" {
			r.Phone = nil
		} else {
			r.Phone = &p
		}
	}
}

func (r CreateParticipantRequest) ToModel() model.Participant {
	return model.Participant{
		ParticipantName:           r.Name,
		ParticipantCongregationID: r.CongregationID,
		ParticipantPhone:          r.Phone,
	}
}

type PatchParticipantRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=3,max=160"`
	CongregationID *int64  `json:"congregation_id" validate:"omitempty,gt=0"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
}

func (r PatchParticipantRequest) ApplyTo(m *model.Participant) {
	if r.Name != nil {
		m.ParticipantName = strings.TrimSpace(*r.Name)
	}
	if r.CongregationID != nil {
		m.ParticipantCongregationID = *r.CongregationID
	}
	if r.Phone != nil {
		m.ParticipantPhone = r.Phone
	}
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

// ParticipantSearchRow feeds the search-as-you-type box on the registration
// form, carrying the congregation name along.
type ParticipantSearchRow struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	CongregationID   int64   `json:"congregation_id"`
	CongregationName string  `json:"congregation_name"`
	Phone            *string `json:"phone,omitempty"`
}
