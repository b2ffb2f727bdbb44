package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgentType identifies the currency leg an agent operates on.
type AgentType string

const (
	AgentTypeUSDT AgentType = "usdt"
	AgentTypeDHS  AgentType = "dhs"
)

// Valid reports whether the agent type is one of the known kinds.
func (t AgentType) Valid() bool {
	return t == AgentTypeUSDT || t == AgentTypeDHS
}

// Agent is a commission intermediary that receives payments on our behalf
// and is reconciled against settlements.
type Agent struct {
	ID        string
	Name      string
	Type      AgentType
	USDTRate  decimal.Decimal
	DHSRate   decimal.Decimal
	Phone     string
	Email     string
	CreatedAt time.Time
}
