package dto

import (
	"strings"
	"time"
)

/* =========================================================
   Shared DTOs for the master tables.
   Every master is a named lookup row, so one request/response
   pair covers all of them.
========================================================= */

type UpsertMasterRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

func (r *UpsertMasterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type MasterResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
