package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill records an amount owed by a customer, optionally sourced through an
// agent. TotalBill is the figure the customer balance is derived from.
type Bill struct {
	ID           string
	CustomerID   *string
	AgentID      *string
	BillDate     time.Time
	Amount       decimal.Decimal
	SellingPrice decimal.Decimal
	TotalBill    decimal.Decimal
	CreatedAt    time.Time
}
