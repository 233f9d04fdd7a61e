package controller

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	dto "acampamentos_backend/internals/features/registrations/payments/dto"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func row(method, value string) dto.ReportRow {
	return dto.ReportRow{
		PaymentDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Value:       d(value),
		MethodName:  method,
	}
}

func TestBuildReportTotalsByMethod(t *testing.T) {
	rows := []dto.ReportRow{
		row("Pix", "100.00"),
		row("Dinheiro", "50.00"),
		row("Pix", "25.50"),
	}

	rep := buildReport(3, rows)

	assert.Equal(t, int64(3), rep.CampID)
	assert.Len(t, rep.TotalsByMethod, 2)
	assert.Equal(t, "Pix", rep.TotalsByMethod[0].MethodName)
	assert.True(t, rep.TotalsByMethod[0].Total.Equal(d("125.50")), "pix %s", rep.TotalsByMethod[0].Total)
	assert.Equal(t, "Dinheiro", rep.TotalsByMethod[1].MethodName)
	assert.True(t, rep.TotalsByMethod[1].Total.Equal(d("50.00")))
	assert.True(t, rep.GrandTotal.Equal(d("175.50")), "grand %s", rep.GrandTotal)
}

func TestBuildReportEmpty(t *testing.T) {
	rep := buildReport(3, nil)

	assert.Empty(t, rep.TotalsByMethod)
	assert.True(t, rep.GrandTotal.IsZero())
}
