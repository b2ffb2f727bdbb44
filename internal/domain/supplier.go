package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is an overseas counterparty transacting in RMB against USDT.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	RMBToUSDTRate decimal.Decimal
	CreatedAt     time.Time
}
