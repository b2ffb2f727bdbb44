package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementType marks the direction of an agent settlement.
type SettlementType string

const (
	SettlementTypeReceived SettlementType = "received"
	SettlementTypePaid     SettlementType = "paid"
)

// Valid reports whether the settlement type is one of the known kinds.
func (t SettlementType) Valid() bool {
	return t == SettlementTypeReceived || t == SettlementTypePaid
}

// AgentSettlement is a reconciling payment between the business and an
// agent, separate from customer-facing payments. Only received settlements
// count against an agent's pending balance.
type AgentSettlement struct {
	ID             string
	AgentID        *string
	SettlementDate time.Time
	Amount         decimal.Decimal
	Currency       string
	Type           SettlementType
	Notes          string
	CreatedAt      time.Time
}
