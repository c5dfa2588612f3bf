package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Expense is one P&L account balance line from the accounting ledger (I355).
type Expense struct {
	AccountCode        string
	AccountDescription string
	ReferenceCode      string // reference chart-of-accounts code, blank when unmapped
	Value              decimal.Decimal
	IsDebit            bool
}

// Validate checks the account code is present.
func (e Expense) Validate() error {
	if e.AccountCode == "" {
		return fmt.Errorf("expense missing account code")
	}
	return nil
}
