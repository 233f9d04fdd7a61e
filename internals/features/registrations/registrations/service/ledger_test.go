package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeLedgerPartial(t *testing.T) {
	led := ComputeLedger(d("250.00"), []decimal.Decimal{d("100.00")})

	assert.True(t, led.TotalPaid.Equal(d("100.00")), "total %s", led.TotalPaid)
	assert.True(t, led.BalanceDue.Equal(d("150.00")), "balance %s", led.BalanceDue)
	assert.False(t, led.Settled)
}

func TestComputeLedgerExactlySettled(t *testing.T) {
	led := ComputeLedger(d("250.00"), []decimal.Decimal{d("100.00"), d("150.00")})

	assert.True(t, led.BalanceDue.IsZero(), "balance %s", led.BalanceDue)
	assert.True(t, led.Settled)
}

func TestComputeLedgerOverpaidIsSettled(t *testing.T) {
	led := ComputeLedger(d("250.00"), []decimal.Decimal{d("300.00")})

	assert.True(t, led.BalanceDue.Equal(d("-50.00")), "balance %s", led.BalanceDue)
	assert.True(t, led.Settled)
}

func TestComputeLedgerNoPayments(t *testing.T) {
	led := ComputeLedger(d("250.00"), nil)

	assert.True(t, led.TotalPaid.IsZero())
	assert.True(t, led.BalanceDue.Equal(d("250.00")))
	assert.False(t, led.Settled)
}

func TestComputeLedgerRoundsToCents(t *testing.T) {
	led := ComputeLedger(d("10.00"), []decimal.Decimal{d("3.333"), d("3.333"), d("3.333")})

	assert.True(t, led.TotalPaid.Equal(d("10.00")), "total %s", led.TotalPaid)
	assert.True(t, led.Settled)
}
