package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "acampamentos_backend/internals/features/camps/camps/dto"
	m "acampamentos_backend/internals/features/camps/camps/model"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Controller
========================= */

type CampController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCampController(db *gorm.DB) *CampController {
	return &CampController{DB: db, Validate: validator.New()}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* =========================
   List (active)
   GET /api/u/camps
========================= */
func (ctl *CampController) List(c *fiber.Ctx) error {
	var camps []m.Camp
	if err := ctl.DB.WithContext(c.Context()).
		Where("status = ?", m.CampStatusActive).
		Order("name ASC").
		Find(&camps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(camps), nil)
}

/* =========================
   List (archived)
   GET /api/u/camps/archived
========================= */
func (ctl *CampController) ListArchived(c *fiber.Ctx) error {
	var camps []m.Camp
	if err := ctl.DB.WithContext(c.Context()).
		Where("status = ?", m.CampStatusArchived).
		Order("name ASC").
		Find(&camps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(camps), nil)
}

/* =========================
   Detail
   GET /api/u/camps/:id
========================= */
func (ctl *CampController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var camp m.Camp
	if err := ctl.DB.WithContext(c.Context()).First(&camp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Acampamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromModel(camp))
}

/* =========================
   Create
   POST /api/u/camps
========================= */
func (ctl *CampController) Create(c *fiber.Ctx) error {
	var req dto.CreateCampRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome do acampamento é obrigatório")
	}

	rec := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Acampamento criado", dto.FromModel(rec))
}

/* =========================
   Patch
   PATCH /api/u/camps/:id
========================= */
func (ctl *CampController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchCampRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome inválido")
	}

	var rec m.Camp
	if err := ctl.DB.WithContext(c.Context()).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Acampamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&rec)
	if err := ctl.DB.WithContext(c.Context()).Save(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Acampamento atualizado", dto.FromModel(rec))
}

/* =========================
   Archive (soft delete)
   POST /api/u/camps/:id/archive
========================= */
func (ctl *CampController) Archive(c *fiber.Ctx) error {
	return ctl.setStatus(c, m.CampStatusActive, m.CampStatusArchived, "Acampamento arquivado")
}

/* =========================
   Restore
   POST /api/u/camps/:id/restore
========================= */
func (ctl *CampController) Restore(c *fiber.Ctx) error {
	return ctl.setStatus(c, m.CampStatusArchived, m.CampStatusActive, "Acampamento restaurado")
}

func (ctl *CampController) setStatus(c *fiber.Ctx, from, to, okMsg string) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.Camp{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Acampamento não encontrado ou já está nesse estado")
	}
	return helper.JsonUpdated(c, okMsg, fiber.Map{"id": id, "status": to})
}
