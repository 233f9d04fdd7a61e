package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "acampamentos_backend/internals/features/audit/payment_logs/dto"
	helper "acampamentos_backend/internals/helpers"
)

// trailLimit caps the trail screen at the most recent entries.
const trailLimit = 100

/* =========================
   Controller
========================= */

type TrailController struct {
	DB *gorm.DB
}

func NewTrailController(db *gorm.DB) *TrailController {
	return &TrailController{DB: db}
}

/* =========================
   Trail
   GET /api/u/audit-trail
========================= */
func (ctl *TrailController) Latest(c *fiber.Ctx) error {
	var rows []dto.TrailRow
	err := ctl.DB.WithContext(c.Context()).
		Table("payment_logs AS pl").
		Select(`pl.id, pl.action, pl.details,
			u.name AS actor_name,
			p.name AS participant_name,
			pl.registration_id, pl.payment_id, pl.created_at`).
		Joins("JOIN users u ON u.id = pl.admin_user_id").
		Joins("JOIN registrations r ON r.id = pl.registration_id").
		Joins("JOIN participants p ON p.id = r.participant_id").
		Order("pl.created_at DESC").
		Limit(trailLimit).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}
