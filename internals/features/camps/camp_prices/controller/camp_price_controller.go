package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "acampamentos_backend/internals/features/camps/camp_prices/dto"
	m "acampamentos_backend/internals/features/camps/camp_prices/model"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Controller
========================= */

type CampPriceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCampPriceController(db *gorm.DB) *CampPriceController {
	return &CampPriceController{DB: db, Validate: validator.New()}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* =========================
   List prices of a camp
   GET /api/u/camps/:id/prices
========================= */
func (ctl *CampPriceController) ListByCamp(c *fiber.Ctx) error {
	campID, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var rows []dto.CampPriceRow
	err = ctl.DB.WithContext(c.Context()).
		Table("camp_prices AS cp").
		Select(`cp.id, cp.camp_id,
			cp.participant_tier_id, pt.name AS tier_name,
			cp.registration_package_id, rp.name AS package_name,
			cp.price`).
		Joins("JOIN participant_tiers pt ON pt.id = cp.participant_tier_id").
		Joins("JOIN registration_packages rp ON rp.id = cp.registration_package_id").
		Where("cp.camp_id = ?", campID).
		Order("pt.name ASC, rp.name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

/* =========================
   Create
   POST /api/u/camps/:id/prices
========================= */
func (ctl *CampPriceController) Create(c *fiber.Ctx) error {
	campID, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.CreateCampPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Categoria e pacote são obrigatórios")
	}
	if req.Price.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Preço não pode ser negativo")
	}

	rec := req.ToModel(campID)
	if err := ctl.DB.WithContext(c.Context()).Create(&rec).Error; err != nil {
		if helper.IsUniqueViolation(err, "uniq_camp_tier_package") {
			return helper.JsonError(c, fiber.StatusConflict,
				"Já existe um preço para essa combinação de categoria e pacote")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Acampamento, categoria ou pacote inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Preço cadastrado", dto.FromModel(rec))
}

/* =========================
   Patch (amount only)
   PATCH /api/u/camp-prices/:id
========================= */
func (ctl *CampPriceController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchCampPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Price != nil && req.Price.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Preço não pode ser negativo")
	}

	var rec m.CampPrice
	if err := ctl.DB.WithContext(c.Context()).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Preço não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&rec)
	if err := ctl.DB.WithContext(c.Context()).Save(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Preço atualizado", dto.FromModel(rec))
}

/* =========================
   Delete
   DELETE /api/u/camp-prices/:id
========================= */
func (ctl *CampPriceController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.CampPrice{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Preço não encontrado")
	}
	return helper.JsonDeleted(c, "Preço removido", fiber.Map{"id": id})
}
