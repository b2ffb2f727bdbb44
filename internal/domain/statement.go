package domain

import "github.com/shopspring/decimal"

// Derived balances are never stored; every figure in this file is computed
// by folding event records fetched for one party. Missing rows contribute
// zero by construction.

// PaymentDetail is a payment enriched with display names of the parties and
// account it references, for rendering statements.
type PaymentDetail struct {
	Payment

	CustomerName    string
	AgentName       string
	AgentType       AgentType
	BankAccountName string
	BankName        string
	BankCurrency    string
}

// SupplierTransactionDetail is a supplier transaction enriched with the
// supplier and customer display names.
type SupplierTransactionDetail struct {
	SupplierTransaction

	SupplierName string
	CustomerName string
}

// CustomerSummary is the derived position of one customer.
type CustomerSummary struct {
	TotalBilled  decimal.Decimal
	TotalPaid    decimal.Decimal
	SupplierPaid decimal.Decimal
	Balance      decimal.Decimal
}

// NewCustomerSummary folds a customer's event records into its balance:
// total billed minus customer payments minus supplier_to_me transactions
// linked to the customer.
func NewCustomerSummary(bills []*Bill, payments []*PaymentDetail, txns []*SupplierTransactionDetail) CustomerSummary {
	var s CustomerSummary
	for _, b := range bills {
		s.TotalBilled = s.TotalBilled.Add(b.TotalBill)
	}
	for _, p := range payments {
		if p.Type == PaymentTypeCustomer {
			s.TotalPaid = s.TotalPaid.Add(p.Amount)
		}
	}
	for _, t := range txns {
		if t.Type == TransactionSupplierToMe {
			s.SupplierPaid = s.SupplierPaid.Add(t.CalculatedUSDT)
		}
	}
	s.Balance = s.TotalBilled.Sub(s.TotalPaid).Sub(s.SupplierPaid)

	return s
}

// CustomerStatement is a customer with its supporting rows and summary.
type CustomerStatement struct {
	Customer             *Customer
	Bills                []*Bill
	Payments             []*PaymentDetail
	SupplierTransactions []*SupplierTransactionDetail
	Summary              CustomerSummary
}

// AgentSummary is the derived position of one agent. Paid settlements are
// intentionally excluded from TotalSettled; they represent a different
// accounting leg.
type AgentSummary struct {
	TotalReceived  decimal.Decimal
	TotalSettled   decimal.Decimal
	PendingBalance decimal.Decimal
}

// NewAgentSummary folds an agent's payments and settlements into its
// pending balance.
func NewAgentSummary(payments []*PaymentDetail, settlements []*AgentSettlement) AgentSummary {
	var s AgentSummary
	for _, p := range payments {
		s.TotalReceived = s.TotalReceived.Add(p.Amount)
	}
	for _, st := range settlements {
		if st.Type == SettlementTypeReceived {
			s.TotalSettled = s.TotalSettled.Add(st.Amount)
		}
	}
	s.PendingBalance = s.TotalReceived.Sub(s.TotalSettled)

	return s
}

// AgentStatement is an agent with its supporting rows and summary.
type AgentStatement struct {
	Agent       *Agent
	Payments    []*PaymentDetail
	Settlements []*AgentSettlement
	Summary     AgentSummary
}

// SupplierSummary is the derived position of one supplier. TotalRMBReceived
// is informational (raw RMB of incoming transactions); NetBalance is in USDT.
type SupplierSummary struct {
	TotalRMBReceived decimal.Decimal
	TotalUSDTPaid    decimal.Decimal
	NetBalance       decimal.Decimal
}

// NewSupplierSummary folds a supplier's transactions into its net balance:
// calculated USDT of supplier_to_me minus calculated USDT of me_to_supplier.
func NewSupplierSummary(txns []*SupplierTransactionDetail) SupplierSummary {
	var s SupplierSummary

	var receivedUSDT decimal.Decimal
	for _, t := range txns {
		switch t.Type {
		case TransactionSupplierToMe:
			s.TotalRMBReceived = s.TotalRMBReceived.Add(t.RMBAmount)
			receivedUSDT = receivedUSDT.Add(t.CalculatedUSDT)
		case TransactionMeToSupplier:
			s.TotalUSDTPaid = s.TotalUSDTPaid.Add(t.CalculatedUSDT)
		}
	}
	s.NetBalance = receivedUSDT.Sub(s.TotalUSDTPaid)

	return s
}

// SupplierStatement is a supplier with its supporting rows and summary.
type SupplierStatement struct {
	Supplier     *Supplier
	Transactions []*SupplierTransactionDetail
	Summary      SupplierSummary
}

// CustomerWithBalance is a customer row in a list aggregation.
type CustomerWithBalance struct {
	Customer

	TotalBilled  decimal.Decimal
	TotalPaid    decimal.Decimal
	SupplierPaid decimal.Decimal
	Balance      decimal.Decimal
}

// AgentWithBalance is an agent row in a list aggregation.
type AgentWithBalance struct {
	Agent

	TotalReceived  decimal.Decimal
	TotalSettled   decimal.Decimal
	PendingBalance decimal.Decimal
}

// SupplierWithBalance is a supplier row in a list aggregation.
type SupplierWithBalance struct {
	Supplier

	TotalUSDTReceived decimal.Decimal
	TotalUSDTPaid     decimal.Decimal
	NetBalance        decimal.Decimal
}

// Overview aggregates every party's derived position plus the raw sum of
// bank account balances.
type Overview struct {
	Customers    PartyOverview
	Agents       PartyOverview
	Suppliers    PartyOverview
	BankAccounts BankOverview
}

// PartyOverview is the count and summed balance of one party kind.
type PartyOverview struct {
	Count        int64
	TotalBalance decimal.Decimal
}

// BankOverview is the count, summed balance, and currency set of all
// bank accounts.
type BankOverview struct {
	Count        int64
	TotalBalance decimal.Decimal
	Currencies   []string
}
