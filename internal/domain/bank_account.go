package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a bank or wallet account holding one of the business
// currencies. Balance is a cached aggregate: it mirrors the net sum of all
// payments routed through the account and is adjusted as a side effect of
// the payment lifecycle, never recomputed on read.
type BankAccount struct {
	ID            string
	AccountName   string
	BankName      string
	AccountNumber string
	Currency      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
