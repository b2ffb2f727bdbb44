package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType marks the direction of a supplier transaction.
type TransactionType string

const (
	TransactionSupplierToMe TransactionType = "supplier_to_me"
	TransactionMeToSupplier TransactionType = "me_to_supplier"
)

// Valid reports whether the transaction type is one of the known kinds.
func (t TransactionType) Valid() bool {
	return t == TransactionSupplierToMe || t == TransactionMeToSupplier
}

// SupplierTransaction records an RMB movement against a supplier.
// CalculatedUSDT is supplied by the caller and stored verbatim; the engine
// does not recompute rmb_amount * usdt_rate.
type SupplierTransaction struct {
	ID              string
	SupplierID      *string
	CustomerID      *string
	TransactionDate time.Time
	RMBAmount       decimal.Decimal
	USDTRate        decimal.Decimal
	CalculatedUSDT  decimal.Decimal
	Type            TransactionType
	Notes           string
	CreatedAt       time.Time
}
