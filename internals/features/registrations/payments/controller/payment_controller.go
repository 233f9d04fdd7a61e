package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "acampamentos_backend/internals/features/audit/payment_logs/model"
	auditService "acampamentos_backend/internals/features/audit/payment_logs/service"
	dto "acampamentos_backend/internals/features/registrations/payments/dto"
	m "acampamentos_backend/internals/features/registrations/payments/model"
	registrationModel "acampamentos_backend/internals/features/registrations/registrations/model"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Controller
========================= */

type PaymentController struct {
	DB       *gorm.DB
	Audit    *auditService.AuditLogger
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:       db,
		Audit:    auditService.NewAuditLogger(db),
		Validate: validator.New(),
	}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* =========================
   Create
   POST /api/u/registrations/:id/payments
========================= */
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	regID, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Forma de pagamento, tesoureiro e data são obrigatórios")
	}
	if !req.Value.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Valor do pagamento deve ser maior que zero")
	}
	payDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data do pagamento inválida (use AAAA-MM-DD)")
	}

	// Payments remain accepted on a cancelled registration (late settlement
	// of money already owed), so only existence is checked here.
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&registrationModel.Registration{}).
		Where("id = ?", regID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
	}

	rec := m.Payment{
		PaymentRegistrationID: regID,
		PaymentMethodID:       req.MethodID,
		PaymentTreasurerID:    req.TreasurerID,
		PaymentValue:          helper.RoundMoney(req.Value),
		PaymentDate:           payDate,
		PaymentCreatedBy:      actorID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&rec).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Forma de pagamento ou tesoureiro inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctl.Audit.Record(auditService.Entry{
		AdminUserID:    actorID,
		RegistrationID: regID,
		PaymentID:      &rec.PaymentID,
		Action:         auditModel.LogActionCreate,
		Details:        fmt.Sprintf("Pagamento de %s criado.", helper.FormatBRL(rec.PaymentValue)),
		Meta:           datatypes.JSONMap{"payed_value": rec.PaymentValue.StringFixed(2)},
	})
	return helper.JsonCreated(c, "Pagamento registrado", rec)
}

/* =========================
   Patch
   PATCH /api/u/payments/:id
========================= */
func (ctl *PaymentController) Patch(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	if req.Value != nil && !req.Value.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Valor do pagamento deve ser maior que zero")
	}

	var rec m.Payment
	if err := ctl.DB.WithContext(c.Context()).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pagamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	oldValue := rec.PaymentValue
	if req.MethodID != nil {
		rec.PaymentMethodID = *req.MethodID
	}
	if req.TreasurerID != nil {
		rec.PaymentTreasurerID = *req.TreasurerID
	}
	if req.Value != nil {
		rec.PaymentValue = helper.RoundMoney(*req.Value)
	}
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data do pagamento inválida (use AAAA-MM-DD)")
		}
		rec.PaymentDate = d
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&rec).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Forma de pagamento ou tesoureiro inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// The value diff sentence only appears when the amount actually moved.
	details := "Pagamento atualizado. "
	meta := datatypes.JSONMap{}
	if !oldValue.Equal(rec.PaymentValue) {
		details += fmt.Sprintf("Valor alterado de %s para %s. ",
			helper.FormatBRL(oldValue), helper.FormatBRL(rec.PaymentValue))
		meta["old_value"] = oldValue.StringFixed(2)
		meta["new_value"] = rec.PaymentValue.StringFixed(2)
	}
	ctl.Audit.Record(auditService.Entry{
		AdminUserID:    actorID,
		RegistrationID: rec.PaymentRegistrationID,
		PaymentID:      &rec.PaymentID,
		Action:         auditModel.LogActionUpdate,
		Details:        details,
		Meta:           meta,
	})
	return helper.JsonUpdated(c, "Pagamento atualizado", rec)
}
