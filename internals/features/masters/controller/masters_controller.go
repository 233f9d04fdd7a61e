package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "acampamentos_backend/internals/features/masters/dto"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Resource descriptor
========================= */

// masterResource describes one lookup table. label and inUseMsg feed the
// Portuguese user-facing messages; inUseMsg names what still references the
// row when Postgres blocks the delete with a foreign key violation.
type masterResource struct {
	Table    string
	Label    string
	InUseMsg string
}

var (
	Congregations = masterResource{
		Table:    "congregations",
		Label:    "Congregação",
		InUseMsg: "Ação Bloqueada: esta congregação está vinculada a participantes",
	}
	ParticipantTiers = masterResource{
		Table:    "participant_tiers",
		Label:    "Categoria",
		InUseMsg: "Ação Bloqueada: esta categoria está vinculada a inscrições ou preços",
	}
	RegistrationPackages = masterResource{
		Table:    "registration_packages",
		Label:    "Pacote",
		InUseMsg: "Ação Bloqueada: este pacote está vinculado a inscrições ou preços",
	}
	PaymentMethods = masterResource{
		Table:    "payment_methods",
		Label:    "Forma de pagamento",
		InUseMsg: "Ação Bloqueada: esta forma de pagamento está vinculada a pagamentos",
	}
	Treasurers = masterResource{
		Table:    "treasurers",
		Label:    "Tesoureiro",
		InUseMsg: "Ação Bloqueada: este tesoureiro está vinculado a pagamentos",
	}
)

/* =========================
   Controller
========================= */

type MasterController struct {
	DB       *gorm.DB
	Res      masterResource
	Validate *validator.Validate
}

func NewMasterController(db *gorm.DB, res masterResource) *MasterController {
	return &MasterController{DB: db, Res: res, Validate: validator.New()}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* =========================
   List
========================= */
func (ctl *MasterController) List(c *fiber.Ctx) error {
	var rows []dto.MasterResponse
	err := ctl.DB.WithContext(c.Context()).
		Table(ctl.Res.Table).
		Select("id, name, created_at, updated_at").
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", rows, nil)
}

/* =========================
   Create
========================= */
func (ctl *MasterController) Create(c *fiber.Ctx) error {
	var req dto.UpsertMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome é obrigatório")
	}

	var row dto.MasterResponse
	err := ctl.DB.WithContext(c.Context()).
		Table(ctl.Res.Table).
		Raw("INSERT INTO "+ctl.Res.Table+" (name) VALUES (?) RETURNING id, name, created_at, updated_at", req.Name).
		Scan(&row).Error
	if err != nil {
		if helper.IsUniqueViolation(err, "") {
			return helper.JsonError(c, fiber.StatusConflict, ctl.Res.Label+" já cadastrada com esse nome")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, ctl.Res.Label+" criada", row)
}

/* =========================
   Detail
========================= */
func (ctl *MasterController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var row dto.MasterResponse
	res := ctl.DB.WithContext(c.Context()).
		Table(ctl.Res.Table).
		Select("id, name, created_at, updated_at").
		Where("id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, ctl.Res.Label+" não encontrada")
	}
	return helper.JsonOK(c, "", row)
}

/* =========================
   Update (rename)
========================= */
func (ctl *MasterController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpsertMasterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome é obrigatório")
	}

	res := ctl.DB.WithContext(c.Context()).
		Table(ctl.Res.Table).
		Where("id = ?", id).
		Update("name", req.Name)
	if res.Error != nil {
		if helper.IsUniqueViolation(res.Error, "") {
			return helper.JsonError(c, fiber.StatusConflict, ctl.Res.Label+" já cadastrada com esse nome")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, ctl.Res.Label+" não encontrada")
	}
	return helper.JsonUpdated(c, ctl.Res.Label+" atualizada", fiber.Map{"id": id, "name": req.Name})
}

/* =========================
   Delete (FK-guarded)
========================= */
func (ctl *MasterController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.WithContext(c.Context()).
		Exec("DELETE FROM "+ctl.Res.Table+" WHERE id = ?", id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, ctl.Res.InUseMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, ctl.Res.Label+" não encontrada")
	}
	return helper.JsonDeleted(c, ctl.Res.Label+" removida", fiber.Map{"id": id})
}
