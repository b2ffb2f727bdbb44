package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Business currencies the books are kept in.
var validCurrencies = map[string]bool{
	"AED":  true,
	"USD":  true,
	"USDT": true,
	"RMB":  true,
}

const MaxNameLength = 255

// NormalizeCurrency upper-cases and trims a currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// ValidateCurrency validates a currency code against the business set.
func ValidateCurrency(currency string) error {
	if !validCurrencies[NormalizeCurrency(currency)] {
		return fmt.Errorf("%w: %q is not a supported currency", ErrValidation, currency)
	}

	return nil
}

// ValidateName validates a party or account display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLength)
	}

	return nil
}

// ValidateAgentType validates an agent type value.
func ValidateAgentType(t AgentType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown agent type %q", ErrValidation, t)
	}

	return nil
}

// ValidatePaymentType validates a payment type value.
func ValidatePaymentType(t PaymentType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown payment type %q", ErrValidation, t)
	}

	return nil
}

// ValidateSettlementType validates a settlement type value.
func ValidateSettlementType(t SettlementType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown settlement type %q", ErrValidation, t)
	}

	return nil
}

// ValidateTransactionType validates a supplier transaction type value.
func ValidateTransactionType(t TransactionType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t)
	}

	return nil
}

// ValidateRate validates a conversion rate. Rates must not be negative;
// zero means "use the default".
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("%w: rate cannot be negative", ErrValidation)
	}

	return nil
}

// ValidatePagination limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 1000
	const defaultPageSize = 50

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
