package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tradebook/internal/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// CustomerWithBalanceResponse is a customer list row with derived balance.
type CustomerWithBalanceResponse struct {
	CustomerResponse

	TotalBilled  decimal.Decimal `json:"total_billed"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	SupplierPaid decimal.Decimal `json:"supplier_paid"`
	Balance      decimal.Decimal `json:"balance"`
}

// CustomersWithBalancesFromDomain converts balance rows to responses.
func CustomersWithBalancesFromDomain(rows []*domain.CustomerWithBalance) []*CustomerWithBalanceResponse {
	result := make([]*CustomerWithBalanceResponse, len(rows))
	for i, row := range rows {
		result[i] = &CustomerWithBalanceResponse{
			CustomerResponse: *CustomerFromDomain(&row.Customer),
			TotalBilled:      row.TotalBilled,
			TotalPaid:        row.TotalPaid,
			SupplierPaid:     row.SupplierPaid,
			Balance:          row.Balance,
		}
	}
	return result
}

// AgentResponse represents an agent in API responses.
type AgentResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	USDTRate  decimal.Decimal `json:"usdt_rate"`
	DHSRate   decimal.Decimal `json:"dhs_rate"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AgentFromDomain converts a domain agent to a response.
func AgentFromDomain(a *domain.Agent) *AgentResponse {
	return &AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		USDTRate:  a.USDTRate,
		DHSRate:   a.DHSRate,
		Phone:     a.Phone,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// AgentWithBalanceResponse is an agent list row with derived balance.
type AgentWithBalanceResponse struct {
	AgentResponse

	TotalReceived  decimal.Decimal `json:"total_received"`
	TotalSettled   decimal.Decimal `json:"total_settled"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// AgentsWithBalancesFromDomain converts balance rows to responses.
func AgentsWithBalancesFromDomain(rows []*domain.AgentWithBalance) []*AgentWithBalanceResponse {
	result := make([]*AgentWithBalanceResponse, len(rows))
	for i, row := range rows {
		result[i] = &AgentWithBalanceResponse{
			AgentResponse:  *AgentFromDomain(&row.Agent),
			TotalReceived:  row.TotalReceived,
			TotalSettled:   row.TotalSettled,
			PendingBalance: row.PendingBalance,
		}
	}
	return result
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	RMBToUSDTRate decimal.Decimal `json:"rmb_to_usdt_rate"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SupplierFromDomain converts a domain supplier to a response.
func SupplierFromDomain(s *domain.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		RMBToUSDTRate: s.RMBToUSDTRate,
		CreatedAt:     s.CreatedAt,
	}
}

// SupplierWithBalanceResponse is a supplier list row with derived balance.
type SupplierWithBalanceResponse struct {
	SupplierResponse

	TotalUSDTReceived decimal.Decimal `json:"total_usdt_received"`
	TotalUSDTPaid     decimal.Decimal `json:"total_usdt_paid"`
	NetBalance        decimal.Decimal `json:"net_balance"`
}

// SuppliersWithBalancesFromDomain converts balance rows to responses.
func SuppliersWithBalancesFromDomain(rows []*domain.SupplierWithBalance) []*SupplierWithBalanceResponse {
	result := make([]*SupplierWithBalanceResponse, len(rows))
	for i, row := range rows {
		result[i] = &SupplierWithBalanceResponse{
			SupplierResponse:  *SupplierFromDomain(&row.Supplier),
			TotalUSDTReceived: row.TotalUSDTReceived,
			TotalUSDTPaid:     row.TotalUSDTPaid,
			NetBalance:        row.NetBalance,
		}
	}
	return result
}

// BankAccountResponse represents a bank account in API responses.
type BankAccountResponse struct {
	ID            string          `json:"id"`
	AccountName   string          `json:"account_name"`
	BankName      string          `json:"bank_name,omitempty"`
	AccountNumber string          `json:"account_number,omitempty"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BankAccountFromDomain converts a domain bank account to a response.
func BankAccountFromDomain(a *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		ID:            a.ID,
		AccountName:   a.AccountName,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		Currency:      a.Currency,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// BankAccountsFromDomain converts domain bank accounts to responses.
func BankAccountsFromDomain(accounts []*domain.BankAccount) []*BankAccountResponse {
	result := make([]*BankAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = BankAccountFromDomain(a)
	}
	return result
}

// BillResponse represents a bill in API responses.
type BillResponse struct {
	ID           string          `json:"id"`
	CustomerID   *string         `json:"customer_id,omitempty"`
	AgentID      *string         `json:"agent_id,omitempty"`
	BillDate     time.Time       `json:"bill_date"`
	Amount       decimal.Decimal `json:"amount"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TotalBill    decimal.Decimal `json:"total_bill"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BillFromDomain converts a domain bill to a response.
func BillFromDomain(b *domain.Bill) *BillResponse {
	return &BillResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		AgentID:      b.AgentID,
		BillDate:     b.BillDate,
		Amount:       b.Amount,
		SellingPrice: b.SellingPrice,
		TotalBill:    b.TotalBill,
		CreatedAt:    b.CreatedAt,
	}
}

// BillsFromDomain converts domain bills to responses.
func BillsFromDomain(bills []*domain.Bill) []*BillResponse {
	result := make([]*BillResponse, len(bills))
	for i, b := range bills {
		result[i] = BillFromDomain(b)
	}
	return result
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID            string           `json:"id"`
	CustomerID    *string          `json:"customer_id,omitempty"`
	AgentID       *string          `json:"agent_id,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	BankAccountID *string          `json:"bank_account_id,omitempty"`
	PaymentDate   time.Time        `json:"payment_date"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency"`
	Type          string           `json:"type"`
	AgentRate     *decimal.Decimal `json:"agent_rate,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		AgentID:       p.AgentID,
		SupplierID:    p.SupplierID,
		BankAccountID: p.BankAccountID,
		PaymentDate:   p.PaymentDate,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Type:          string(p.Type),
		AgentRate:     p.AgentRate,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

// PaymentWriteResponse reports a payment write together with the outcome of
// the bank balance adjustment.
type PaymentWriteResponse struct {
	Payment         *PaymentResponse `json:"payment"`
	BalanceAdjusted bool             `json:"balance_adjusted"`
}

// PaymentDetailResponse is a payment enriched with display names.
type PaymentDetailResponse struct {
	PaymentResponse

	CustomerName    string `json:"customer_name,omitempty"`
	AgentName       string `json:"agent_name,omitempty"`
	AgentType       string `json:"agent_type,omitempty"`
	BankAccountName string `json:"bank_account_name,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	BankCurrency    string `json:"bank_currency,omitempty"`
}

// PaymentDetailsFromDomain converts payment details to responses.
func PaymentDetailsFromDomain(details []*domain.PaymentDetail) []*PaymentDetailResponse {
	result := make([]*PaymentDetailResponse, len(details))
	for i, d := range details {
		result[i] = &PaymentDetailResponse{
			PaymentResponse: *PaymentFromDomain(&d.Payment),
			CustomerName:    d.CustomerName,
			AgentName:       d.AgentName,
			AgentType:       string(d.AgentType),
			BankAccountName: d.BankAccountName,
			BankName:        d.BankName,
			BankCurrency:    d.BankCurrency,
		}
	}
	return result
}

// SettlementResponse represents an agent settlement in API responses.
type SettlementResponse struct {
	ID             string          `json:"id"`
	AgentID        *string         `json:"agent_id,omitempty"`
	SettlementDate time.Time       `json:"settlement_date"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Type           string          `json:"type"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SettlementFromDomain converts a domain settlement to a response.
func SettlementFromDomain(s *domain.AgentSettlement) *SettlementResponse {
	return &SettlementResponse{
		ID:             s.ID,
		AgentID:        s.AgentID,
		SettlementDate: s.SettlementDate,
		Amount:         s.Amount,
		Currency:       s.Currency,
		Type:           string(s.Type),
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
}

// SettlementsFromDomain converts domain settlements to responses.
func SettlementsFromDomain(settlements []*domain.AgentSettlement) []*SettlementResponse {
	result := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		result[i] = SettlementFromDomain(s)
	}
	return result
}

// SupplierTransactionResponse represents a supplier transaction in API responses.
type SupplierTransactionResponse struct {
	ID              string          `json:"id"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	CustomerID      *string         `json:"customer_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	RMBAmount       decimal.Decimal `json:"rmb_amount"`
	USDTRate        decimal.Decimal `json:"usdt_rate"`
	CalculatedUSDT  decimal.Decimal `json:"calculated_usdt"`
	Type            string          `json:"type"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SupplierTransactionFromDomain converts a domain transaction to a response.
func SupplierTransactionFromDomain(t *domain.SupplierTransaction) *SupplierTransactionResponse {
	return &SupplierTransactionResponse{
		ID:              t.ID,
		SupplierID:      t.SupplierID,
		CustomerID:      t.CustomerID,
		TransactionDate: t.TransactionDate,
		RMBAmount:       t.RMBAmount,
		USDTRate:        t.USDTRate,
		CalculatedUSDT:  t.CalculatedUSDT,
		Type:            string(t.Type),
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

// SupplierTransactionDetailResponse is a transaction enriched with display names.
type SupplierTransactionDetailResponse struct {
	SupplierTransactionResponse

	SupplierName string `json:"supplier_name,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
}

// SupplierTransactionDetailsFromDomain converts transaction details to responses.
func SupplierTransactionDetailsFromDomain(details []*domain.SupplierTransactionDetail) []*SupplierTransactionDetailResponse {
	result := make([]*SupplierTransactionDetailResponse, len(details))
	for i, d := range details {
		result[i] = &SupplierTransactionDetailResponse{
			SupplierTransactionResponse: *SupplierTransactionFromDomain(&d.SupplierTransaction),
			SupplierName:                d.SupplierName,
			CustomerName:                d.CustomerName,
		}
	}
	return result
}

// CustomerStatementResponse is a customer with rows and derived summary.
type CustomerStatementResponse struct {
	Customer             *CustomerResponse                    `json:"customer"`
	Bills                []*BillResponse                      `json:"bills"`
	Payments             []*PaymentDetailResponse             `json:"payments"`
	SupplierTransactions []*SupplierTransactionDetailResponse `json:"supplier_transactions"`
	Summary              CustomerSummaryResponse              `json:"summary"`
}

// CustomerSummaryResponse is the derived position of one customer.
type CustomerSummaryResponse struct {
	TotalBilled  decimal.Decimal `json:"total_billed"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	SupplierPaid decimal.Decimal `json:"supplier_paid"`
	Balance      decimal.Decimal `json:"balance"`
}

// CustomerStatementFromDomain converts a domain statement to a response.
func CustomerStatementFromDomain(s *domain.CustomerStatement) *CustomerStatementResponse {
	return &CustomerStatementResponse{
		Customer:             CustomerFromDomain(s.Customer),
		Bills:                BillsFromDomain(s.Bills),
		Payments:             PaymentDetailsFromDomain(s.Payments),
		SupplierTransactions: SupplierTransactionDetailsFromDomain(s.SupplierTransactions),
		Summary: CustomerSummaryResponse{
			TotalBilled:  s.Summary.TotalBilled,
			TotalPaid:    s.Summary.TotalPaid,
			SupplierPaid: s.Summary.SupplierPaid,
			Balance:      s.Summary.Balance,
		},
	}
}

// AgentStatementResponse is an agent with rows and derived summary.
type AgentStatementResponse struct {
	Agent       *AgentResponse           `json:"agent"`
	Payments    []*PaymentDetailResponse `json:"payments"`
	Settlements []*SettlementResponse    `json:"settlements"`
	Summary     AgentSummaryResponse     `json:"summary"`
}

// AgentSummaryResponse is the derived position of one agent.
type AgentSummaryResponse struct {
	TotalReceived  decimal.Decimal `json:"total_received"`
	TotalSettled   decimal.Decimal `json:"total_settled"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// AgentStatementFromDomain converts a domain statement to a response.
func AgentStatementFromDomain(s *domain.AgentStatement) *AgentStatementResponse {
	return &AgentStatementResponse{
		Agent:       AgentFromDomain(s.Agent),
		Payments:    PaymentDetailsFromDomain(s.Payments),
		Settlements: SettlementsFromDomain(s.Settlements),
		Summary: AgentSummaryResponse{
			TotalReceived:  s.Summary.TotalReceived,
			TotalSettled:   s.Summary.TotalSettled,
			PendingBalance: s.Summary.PendingBalance,
		},
	}
}

// SupplierStatementResponse is a supplier with rows and derived summary.
type SupplierStatementResponse struct {
	Supplier     *SupplierResponse                    `json:"supplier"`
	Transactions []*SupplierTransactionDetailResponse `json:"transactions"`
	Summary      SupplierSummaryResponse              `json:"summary"`
}

// SupplierSummaryResponse is the derived position of one supplier.
type SupplierSummaryResponse struct {
	TotalRMBReceived decimal.Decimal `json:"total_rmb_received"`
	TotalUSDTPaid    decimal.Decimal `json:"total_usdt_paid"`
	NetBalance       decimal.Decimal `json:"net_balance"`
}

// SupplierStatementFromDomain converts a domain statement to a response.
func SupplierStatementFromDomain(s *domain.SupplierStatement) *SupplierStatementResponse {
	return &SupplierStatementResponse{
		Supplier:     SupplierFromDomain(s.Supplier),
		Transactions: SupplierTransactionDetailsFromDomain(s.Transactions),
		Summary: SupplierSummaryResponse{
			TotalRMBReceived: s.Summary.TotalRMBReceived,
			TotalUSDTPaid:    s.Summary.TotalUSDTPaid,
			NetBalance:       s.Summary.NetBalance,
		},
	}
}

// OverviewResponse is the system-wide position.
type OverviewResponse struct {
	Customers    PartyOverviewResponse `json:"customers"`
	Agents       PartyOverviewResponse `json:"agents"`
	Suppliers    PartyOverviewResponse `json:"suppliers"`
	BankAccounts BankOverviewResponse  `json:"bank_accounts"`
}

// PartyOverviewResponse is the count and summed balance of one party kind.
type PartyOverviewResponse struct {
	Count        int64           `json:"count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// BankOverviewResponse is the aggregate bank position.
type BankOverviewResponse struct {
	Count        int64           `json:"count"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Currencies   []string        `json:"currencies"`
}

// OverviewFromDomain converts a domain overview to a response.
func OverviewFromDomain(o *domain.Overview) *OverviewResponse {
	return &OverviewResponse{
		Customers:    PartyOverviewResponse{Count: o.Customers.Count, TotalBalance: o.Customers.TotalBalance},
		Agents:       PartyOverviewResponse{Count: o.Agents.Count, TotalBalance: o.Agents.TotalBalance},
		Suppliers:    PartyOverviewResponse{Count: o.Suppliers.Count, TotalBalance: o.Suppliers.TotalBalance},
		BankAccounts: BankOverviewResponse{Count: o.BankAccounts.Count, TotalBalance: o.BankAccounts.TotalBalance, Currencies: o.BankAccounts.Currencies},
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
