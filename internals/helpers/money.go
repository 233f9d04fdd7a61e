// file: internals/helpers/money.go
package helper

import "github.com/shopspring/decimal"

// RoundMoney normalizes a currency amount to 2 decimal places. Every value
// crossing a storage or display boundary goes through this, so the ledger
// math never accumulates drift.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// FormatBRL renders an amount the way the app displays it in log details,
// e.g. "R$ 150.00".
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}
