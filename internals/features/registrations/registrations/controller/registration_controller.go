package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "acampamentos_backend/internals/features/audit/payment_logs/model"
	auditService "acampamentos_backend/internals/features/audit/payment_logs/service"
	priceService "acampamentos_backend/internals/features/camps/camp_prices/service"
	participantModel "acampamentos_backend/internals/features/registrations/participants/model"
	paymentModel "acampamentos_backend/internals/features/registrations/payments/model"
	dto "acampamentos_backend/internals/features/registrations/registrations/dto"
	m "acampamentos_backend/internals/features/registrations/registrations/model"
	"acampamentos_backend/internals/features/registrations/registrations/service"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Controller
========================= */

type RegistrationController struct {
	DB       *gorm.DB
	Prices   *priceService.PriceResolver
	Audit    *auditService.AuditLogger
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:       db,
		Prices:   priceService.NewPriceResolver(db),
		Audit:    auditService.NewAuditLogger(db),
		Validate: validator.New(),
	}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

/* =========================
   Dashboard list
   GET /api/u/camps/:id/registrations?search=
========================= */
func (ctl *RegistrationController) ListByCamp(c *fiber.Ctx) error {
	campID, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	params := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := params.SafeOrderClause(map[string]string{
		"created_at":  "r.created_at",
		"participant": "p.name",
		"status":      "r.status",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ordenação inválida")
	}

	base := ctl.DB.WithContext(c.Context()).
		Table("registrations AS r").
		Joins("JOIN participants p ON p.id = r.participant_id").
		Joins("JOIN congregations cg ON cg.id = r.congregation_id").
		Joins("JOIN participant_tiers pt ON pt.id = r.participant_tier_id").
		Joins("JOIN registration_packages rp ON rp.id = r.registration_package_id").
		Where("r.camp_id = ?", campID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		base = base.Where("p.name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []dto.RegistrationListRow
	err = base.Session(&gorm.Session{}).
		Select(`r.id, r.participant_id, p.name AS participant_name,
			cg.name AS congregation_name,
			pt.name AS tier_name,
			rp.name AS package_name,
			r.final_price,
			COALESCE((SELECT SUM(py.payed_value) FROM payments py WHERE py.registration_id = r.id), 0) AS total_paid,
			r.status, r.created_at`).
		Order(order).
		Limit(params.Limit()).
		Offset(params.Offset()).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pg := helper.BuildPaginationFromPage(total, params.Page, params.PerPage)
	pg.Count = len(rows)
	return helper.JsonList(c, "", rows, &pg)
}

/* =========================
   Create
   POST /api/u/registrations
========================= */
func (ctl *RegistrationController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados obrigatórios ausentes")
	}
	if (req.ParticipantID == nil) == (req.NewParticipant == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Informe um participante existente ou os dados de um novo, não ambos")
	}

	// Snapshot the price before any write. No price, no registration.
	finalPrice, err := ctl.Prices.Resolve(c.Context(), req.CampID, req.TierID, req.PackageID)
	if err != nil {
		if errors.Is(err, priceService.ErrPriceNotFound) || errors.Is(err, priceService.ErrPriceAmbiguous) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var initialDate time.Time
	if req.InitialPayment != nil {
		if !req.InitialPayment.Value.IsPositive() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Valor do pagamento deve ser maior que zero")
		}
		initialDate, err = time.Parse("2006-01-02", req.InitialPayment.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data do pagamento inválida (use AAAA-MM-DD)")
		}
	}

	// Participant + registration commit together. The optional initial
	// payment is written after the commit on purpose: a payment failure must
	// not throw away the registration the user just confirmed.
	var rec m.Registration
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		participantID, err := ctl.resolveParticipant(tx, &req)
		if err != nil {
			return err
		}
		rec = m.Registration{
			RegistrationParticipantID:  participantID,
			RegistrationCampID:         req.CampID,
			RegistrationCongregationID: req.CongregationID,
			RegistrationTierID:         req.TierID,
			RegistrationPackageID:      req.PackageID,
			RegistrationFinalPrice:     finalPrice,
			RegistrationStatus:         m.RegistrationStatusInProgress,
			RegistrationRegistrantID:   actorID,
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Acampamento, congregação, categoria ou pacote inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.InitialPayment == nil {
		return helper.JsonCreated(c, "Inscrição criada", rec)
	}

	pay := paymentModel.Payment{
		PaymentRegistrationID: rec.RegistrationID,
		PaymentMethodID:       req.InitialPayment.MethodID,
		PaymentTreasurerID:    req.InitialPayment.TreasurerID,
		PaymentValue:          helper.RoundMoney(req.InitialPayment.Value),
		PaymentDate:           initialDate,
		PaymentCreatedBy:      actorID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&pay).Error; err != nil {
		return helper.JsonCreatedWithWarning(c, "Inscrição criada",
			"A inscrição foi criada, mas o pagamento inicial falhou. Registre-o manualmente.", rec)
	}

	ctl.Audit.Record(auditService.Entry{
		AdminUserID:    actorID,
		RegistrationID: rec.RegistrationID,
		PaymentID:      &pay.PaymentID,
		Action:         auditModel.LogActionCreate,
		Details:        fmt.Sprintf("Pagamento inicial de %s criado.", helper.FormatBRL(pay.PaymentValue)),
		Meta:           datatypes.JSONMap{"payed_value": pay.PaymentValue.StringFixed(2)},
	})
	return helper.JsonCreated(c, "Inscrição criada", fiber.Map{
		"registration":    rec,
		"initial_payment": pay,
	})
}

// resolveParticipant returns the existing participant's id or inserts the
// inline one inside the caller's transaction.
func (ctl *RegistrationController) resolveParticipant(tx *gorm.DB, req *dto.CreateRegistrationRequest) (int64, error) {
	if req.ParticipantID != nil {
		var count int64
		if err := tx.Model(&participantModel.Participant{}).
			Where("id = ?", *req.ParticipantID).
			Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, gorm.ErrRecordNotFound
		}
		return *req.ParticipantID, nil
	}

	p := participantModel.Participant{
		ParticipantName:           req.NewParticipant.Name,
		ParticipantCongregationID: req.NewParticipant.CongregationID,
		ParticipantPhone:          req.NewParticipant.Phone,
	}
	if err := tx.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ParticipantID, nil
}

/* =========================
   Detail + ledger
   GET /api/u/registrations/:id
========================= */
func (ctl *RegistrationController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var head dto.RegistrationHeader
	res := ctl.DB.WithContext(c.Context()).
		Table("registrations AS r").
		Select(`r.id, r.camp_id, cm.name AS camp_name,
			r.participant_id, p.name AS participant_name,
			r.congregation_id, cg.name AS congregation_name,
			r.participant_tier_id, pt.name AS tier_name,
			r.registration_package_id, rp.name AS package_name,
			r.final_price, r.status, r.created_at`).
		Joins("JOIN camps cm ON cm.id = r.camp_id").
		Joins("JOIN participants p ON p.id = r.participant_id").
		Joins("JOIN congregations cg ON cg.id = r.congregation_id").
		Joins("JOIN participant_tiers pt ON pt.id = r.participant_tier_id").
		Joins("JOIN registration_packages rp ON rp.id = r.registration_package_id").
		Where("r.id = ?", id).
		Limit(1).
		Scan(&head)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
	}

	var pays []dto.PaymentRow
	err = ctl.DB.WithContext(c.Context()).
		Table("payments AS py").
		Select(`py.id, py.payed_value, py.payment_date,
			pm.name AS method_name, tr.name AS treasurer_name, py.created_at`).
		Joins("JOIN payment_methods pm ON pm.id = py.payment_method_id").
		Joins("JOIN treasurers tr ON tr.id = py.treasurer_id").
		Where("py.registration_id = ?", id).
		Order("py.payment_date DESC, py.id DESC").
		Scan(&pays).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	values := make([]decimal.Decimal, 0, len(pays))
	for _, p := range pays {
		values = append(values, p.Value)
	}
	out := dto.RegistrationDetailResponse{
		RegistrationHeader: head,
		Payments:           pays,
		Ledger:             service.ComputeLedger(head.FinalPrice, values),
	}
	return helper.JsonOK(c, "", out)
}

/* =========================
   Patch
   PATCH /api/u/registrations/:id
========================= */
func (ctl *RegistrationController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.PatchRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	if req.FinalPrice != nil && req.FinalPrice.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Preço não pode ser negativo")
	}

	updates := map[string]interface{}{}
	if req.CongregationID != nil {
		updates["congregation_id"] = *req.CongregationID
	}
	if req.TierID != nil {
		updates["participant_tier_id"] = *req.TierID
	}
	if req.PackageID != nil {
		updates["registration_package_id"] = *req.PackageID
	}
	if req.FinalPrice != nil {
		updates["final_price"] = helper.RoundMoney(*req.FinalPrice)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.Registration{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Congregação, categoria ou pacote inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
	}
	return helper.JsonUpdated(c, "Inscrição atualizada", fiber.Map{"id": id})
}

/* =========================
   Re-resolve price (read only)
   GET /api/u/registrations/:id/resolve-price?tier_id=&package_id=
========================= */
func (ctl *RegistrationController) ResolvePrice(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var rec m.Registration
	if err := ctl.DB.WithContext(c.Context()).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tierID := rec.RegistrationTierID
	if v := c.Query("tier_id"); v != "" {
		if tierID, err = parseID(v); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tier_id inválido")
		}
	}
	packageID := rec.RegistrationPackageID
	if v := c.Query("package_id"); v != "" {
		if packageID, err = parseID(v); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "package_id inválido")
		}
	}

	price, err := ctl.Prices.Resolve(c.Context(), rec.RegistrationCampID, tierID, packageID)
	if err != nil {
		if errors.Is(err, priceService.ErrPriceNotFound) || errors.Is(err, priceService.ErrPriceAmbiguous) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.ResolvePriceResponse{
		Price:              price,
		DiffersFromCurrent: !price.Equal(rec.RegistrationFinalPrice),
		CurrentFinalPrice:  rec.RegistrationFinalPrice,
	})
}

/* =========================
   Cancel (one-way)
   POST /api/u/registrations/:id/cancel
========================= */
func (ctl *RegistrationController) Cancel(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	id, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	// The status guard makes a repeat cancel a no-op at the DB level, so
	// exactly one CANCELLED log ever exists per registration.
	res := ctl.DB.WithContext(c.Context()).
		Model(&m.Registration{}).
		Where("id = ? AND status <> ?", id, m.RegistrationStatusCancelled).
		Update("status", m.RegistrationStatusCancelled)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&m.Registration{}).
			Where("id = ?", id).
			Count(&count).Error; err == nil && count == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Inscrição já está cancelada")
	}

	var name string
	if err := ctl.DB.WithContext(c.Context()).
		Table("registrations AS r").
		Select("p.name").
		Joins("JOIN participants p ON p.id = r.participant_id").
		Where("r.id = ?", id).
		Scan(&name).Error; err != nil || name == "" {
		name = "participante"
	}

	ctl.Audit.Record(auditService.Entry{
		AdminUserID:    actorID,
		RegistrationID: id,
		Action:         auditModel.LogActionCancelled,
		Details:        fmt.Sprintf("Inscrição de %q foi cancelada.", name),
	})
	return helper.JsonUpdated(c, "Inscrição cancelada", fiber.Map{
		"id":     id,
		"status": m.RegistrationStatusCancelled,
	})
}
