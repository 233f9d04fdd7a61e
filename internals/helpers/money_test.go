package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoneyToCents(t *testing.T) {
	got := RoundMoney(decimal.RequireFromString("10.005"))
	assert.Equal(t, "10.01", got.StringFixed(2))

	got = RoundMoney(decimal.RequireFromString("10.004"))
	assert.Equal(t, "10.00", got.StringFixed(2))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 150.00", FormatBRL(decimal.RequireFromString("150")))
	assert.Equal(t, "R$ 0.50", FormatBRL(decimal.RequireFromString("0.5")))
}
