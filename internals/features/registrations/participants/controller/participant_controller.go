package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "acampamentos_backend/internals/features/registrations/participants/dto"
	m "acampamentos_backend/internals/features/registrations/participants/model"
	helper "acampamentos_backend/internals/helpers"
)

// Search-as-you-type only fires once the query is long enough to be
// selective; shorter input returns an empty list without a query.
const minSearchLen = 3
const searchLimit = 5

/* =========================
   Controller
========================= */

type ParticipantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParticipantController(db *gorm.DB) *ParticipantController {
	return &ParticipantController{DB: db, Validate: validator.New()}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* =========================
   Search
   GET /api/u/participants?search=
========================= */
func (ctl *ParticipantController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("search"))
	if len([]rune(q)) < minSearchLen {
		return helper.JsonList(c, "", []dto.ParticipantSearchRow{}, nil)
	}

	var rows []dto.ParticipantSearchRow
	err := ctl.DB.WithContext(c.Context()).
		Table("participants AS p").
		Select("p.id, p.name, p.congregation_id, cg.name AS congregation_name, p.phone").
		Joins("JOIN congregations cg ON cg.id = p.congregation_id").
		Where("p.name ILIKE ?", "%"+q+"%").
		Order("p.name ASC").
		Limit(searchLimit).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

/* =========================
   Create
   POST /api/u/participants
========================= */
func (ctl *ParticipantController) Create(c *fiber.Ctx) error {
	var req dto.CreateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome e congregação são obrigatórios")
	}

	rec := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&rec).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Congregação inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Participante criado", rec)
}

/* =========================
   Patch
   PATCH /api/u/participants/:id
========================= */
func (ctl *ParticipantController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}

	var rec m.Participant
	if err := ctl.DB.WithContext(c.Context()).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Participante não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&rec)
	if err := ctl.DB.WithContext(c.Context()).Save(&rec).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Congregação inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Participante atualizado", rec)
}
