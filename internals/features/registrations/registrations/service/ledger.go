package service

import (
	"github.com/shopspring/decimal"

	helper "acampamentos_backend/internals/helpers"
)

/* =========================
   Ledger
========================= */

// Ledger is the financial summary of one registration.
type Ledger struct {
	TotalPaid  decimal.Decimal `json:"total_paid"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	Settled    bool            `json:"settled"`
}

// ComputeLedger sums the installments against the frozen final_price.
// Settled means the balance reached zero or went past it (overpayment still
// counts as settled; clients render it "Quitado").
func ComputeLedger(finalPrice decimal.Decimal, installments []decimal.Decimal) Ledger {
	total := decimal.Zero
	for _, v := range installments {
		total = total.Add(v)
	}
	total = helper.RoundMoney(total)
	balance := helper.RoundMoney(finalPrice.Sub(total))

	return Ledger{
		TotalPaid:  total,
		BalanceDue: balance,
		Settled:    balance.LessThanOrEqual(decimal.Zero),
	}
}
