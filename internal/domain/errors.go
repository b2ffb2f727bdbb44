package domain

import "errors"

var (
	// Not-found errors, mapped to 404 by the HTTP layer.
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrAgentNotFound       = errors.New("agent not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrBillNotFound        = errors.New("bill not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrSettlementNotFound  = errors.New("settlement not found")
	ErrTransactionNotFound = errors.New("supplier transaction not found")

	// ErrValidation wraps all boundary validation failures.
	ErrValidation = errors.New("validation failed")
)
