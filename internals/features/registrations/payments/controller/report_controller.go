package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "acampamentos_backend/internals/features/registrations/payments/dto"
	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Controller
========================= */

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* =========================
   Payments report
   GET /api/u/camps/:id/payments-report?format=csv
========================= */
func (ctl *ReportController) PaymentsByCamp(c *fiber.Ctx) error {
	campID, err := parseID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var rows []dto.ReportRow
	err = ctl.DB.WithContext(c.Context()).
		Table("payments AS py").
		Select(`py.id AS payment_id, py.payment_date, py.payed_value,
			pm.name AS method_name,
			p.name AS participant_name,
			cg.name AS congregation_name,
			tr.name AS treasurer_name,
			u.name AS creator_name`).
		Joins("JOIN registrations r ON r.id = py.registration_id").
		Joins("JOIN payment_methods pm ON pm.id = py.payment_method_id").
		Joins("JOIN participants p ON p.id = r.participant_id").
		Joins("JOIN congregations cg ON cg.id = r.congregation_id").
		Joins("JOIN treasurers tr ON tr.id = py.treasurer_id").
		Joins("JOIN users u ON u.id = py.created_by").
		Where("r.camp_id = ?", campID).
		Order("py.payment_date DESC, py.id DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	report := buildReport(campID, rows)

	if c.Query("format") == "csv" {
		return writeReportCSV(c, report)
	}
	return helper.JsonOK(c, "", report)
}

// buildReport rolls the rows up per payment method, preserving first-seen
// method order so the CSV and JSON agree.
func buildReport(campID int64, rows []dto.ReportRow) dto.CampPaymentsReport {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	grand := decimal.Zero

	for _, row := range rows {
		if _, ok := totals[row.MethodName]; !ok {
			order = append(order, row.MethodName)
		}
		totals[row.MethodName] = totals[row.MethodName].Add(row.Value)
		grand = grand.Add(row.Value)
	}

	byMethod := make([]dto.MethodTotal, 0, len(order))
	for _, name := range order {
		byMethod = append(byMethod, dto.MethodTotal{
			MethodName: name,
			Total:      helper.RoundMoney(totals[name]),
		})
	}

	return dto.CampPaymentsReport{
		CampID:         campID,
		Rows:           rows,
		TotalsByMethod: byMethod,
		GrandTotal:     helper.RoundMoney(grand),
	}
}

func writeReportCSV(c *fiber.Ctx, report dto.CampPaymentsReport) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"data", "valor", "forma_pagamento", "participante", "congregacao", "tesoureiro", "registrado_por"})
	for _, row := range report.Rows {
		_ = w.Write([]string{
			row.PaymentDate.Format("2006-01-02"),
			row.Value.StringFixed(2),
			row.MethodName,
			row.ParticipantName,
			row.CongregationName,
			row.TreasurerName,
			row.CreatorName,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="pagamentos_acampamento_%d.csv"`, report.CampID))
	return c.Send(buf.Bytes())
}
