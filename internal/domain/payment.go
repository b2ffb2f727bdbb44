package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes customer settlements from other money movements.
type PaymentType string

const (
	PaymentTypeCustomer PaymentType = "customer_payment"
	PaymentTypeOther    PaymentType = "other"
)

// Valid reports whether the payment type is one of the known kinds.
func (t PaymentType) Valid() bool {
	return t == PaymentTypeCustomer || t == PaymentTypeOther
}

// Payment records money received. Amount is signed from the perspective of
// money coming in; when BankAccountID is set the amount is additionally
// applied to that account's cached balance.
type Payment struct {
	ID            string
	CustomerID    *string
	AgentID       *string
	SupplierID    *string
	BankAccountID *string
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Currency      string
	Type          PaymentType
	AgentRate     *decimal.Decimal
	Notes         string
	CreatedAt     time.Time
}
