package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
	"github.com/iho/tradebook/internal/usecase"
)

// CustomerRequest is the write payload for a customer.
type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CustomerRequest) ToUseCaseInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// AgentRequest is the write payload for an agent.
type AgentRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	USDTRate decimal.Decimal `json:"usdt_rate"`
	DHSRate  decimal.Decimal `json:"dhs_rate"`
	Phone    string          `json:"phone,omitempty"`
	Email    string          `json:"email,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AgentRequest) ToUseCaseInput() usecase.AgentInput {
	return usecase.AgentInput{
		Name:     r.Name,
		Type:     domain.AgentType(r.Type),
		USDTRate: r.USDTRate,
		DHSRate:  r.DHSRate,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

// SupplierRequest is the write payload for a supplier.
type SupplierRequest struct {
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	RMBToUSDTRate decimal.Decimal `json:"rmb_to_usdt_rate"`
}

// ToUseCaseInput converts to use case input.
func (r *SupplierRequest) ToUseCaseInput() usecase.SupplierInput {
	return usecase.SupplierInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Email:         r.Email,
		RMBToUSDTRate: r.RMBToUSDTRate,
	}
}

// BankAccountRequest is the write payload for a bank account.
type BankAccountRequest struct {
	AccountName   string          `json:"account_name"`
	BankName      string          `json:"bank_name,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToUseCaseInput converts to use case input.
func (r *BankAccountRequest) ToUseCaseInput() usecase.BankAccountInput {
	return usecase.BankAccountInput{
		AccountName:   r.AccountName,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Currency:      r.Currency,
		Balance:       r.Balance,
	}
}

// BillRequest is the write payload for a bill.
type BillRequest struct {
	CustomerID   *string         `json:"customer_id,omitempty"`
	AgentID      *string         `json:"agent_id,omitempty"`
	BillDate     time.Time       `json:"bill_date"`
	Amount       decimal.Decimal `json:"amount"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TotalBill    decimal.Decimal `json:"total_bill"`
}

// ToUseCaseInput converts to use case input.
func (r *BillRequest) ToUseCaseInput() usecase.BillInput {
	return usecase.BillInput{
		CustomerID:   r.CustomerID,
		AgentID:      r.AgentID,
		BillDate:     r.BillDate,
		Amount:       r.Amount,
		SellingPrice: r.SellingPrice,
		TotalBill:    r.TotalBill,
	}
}

// PaymentRequest is the write payload for a payment.
type PaymentRequest struct {
	CustomerID    *string          `json:"customer_id,omitempty"`
	AgentID       *string          `json:"agent_id,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	BankAccountID *string          `json:"bank_account_id,omitempty"`
	PaymentDate   time.Time        `json:"payment_date"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency,omitempty"`
	Type          string           `json:"type,omitempty"`
	AgentRate     *decimal.Decimal `json:"agent_rate,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *PaymentRequest) ToUseCaseInput() usecase.PaymentInput {
	return usecase.PaymentInput{
		CustomerID:    r.CustomerID,
		AgentID:       r.AgentID,
		SupplierID:    r.SupplierID,
		BankAccountID: r.BankAccountID,
		PaymentDate:   r.PaymentDate,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Type:          domain.PaymentType(r.Type),
		AgentRate:     r.AgentRate,
		Notes:         r.Notes,
	}
}

// SettlementRequest is the write payload for an agent settlement.
type SettlementRequest struct {
	AgentID        *string         `json:"agent_id,omitempty"`
	SettlementDate time.Time       `json:"settlement_date"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency,omitempty"`
	Type           string          `json:"type"`
	Notes          string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SettlementRequest) ToUseCaseInput() usecase.SettlementInput {
	return usecase.SettlementInput{
		AgentID:        r.AgentID,
		SettlementDate: r.SettlementDate,
		Amount:         r.Amount,
		Currency:       r.Currency,
		Type:           domain.SettlementType(r.Type),
		Notes:          r.Notes,
	}
}

// SupplierTransactionRequest is the write payload for a supplier transaction.
type SupplierTransactionRequest struct {
	SupplierID      *string         `json:"supplier_id,omitempty"`
	CustomerID      *string         `json:"customer_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	RMBAmount       decimal.Decimal `json:"rmb_amount"`
	USDTRate        decimal.Decimal `json:"usdt_rate"`
	CalculatedUSDT  decimal.Decimal `json:"calculated_usdt"`
	Type            string          `json:"type"`
	Notes           string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SupplierTransactionRequest) ToUseCaseInput() usecase.SupplierTransactionInput {
	return usecase.SupplierTransactionInput{
		SupplierID:      r.SupplierID,
		CustomerID:      r.CustomerID,
		TransactionDate: r.TransactionDate,
		RMBAmount:       r.RMBAmount,
		USDTRate:        r.USDTRate,
		CalculatedUSDT:  r.CalculatedUSDT,
		Type:            domain.TransactionType(r.Type),
		Notes:           r.Notes,
	}
}
