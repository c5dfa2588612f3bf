package extract

import (
	"strings"

	"github.com/fiscalia-dev/spedparse/internal/codes"
	"github.com/fiscalia-dev/spedparse/internal/layout"
	"github.com/fiscalia-dev/spedparse/internal/model"
	"github.com/fiscalia-dev/spedparse/internal/sped"
)

// Ledger extracts accounting balances from ECD files: I355 period P&L
// lines, enriched with account names from I050 and reference-chart codes
// from their I051 children.
type Ledger struct {
	lay *layout.Family
}

// NewLedger creates the ledger-family extractor.
func NewLedger() *Ledger {
	mustValidate(layout.Ledger)
	return &Ledger{lay: layout.Ledger}
}

func (e *Ledger) Family() model.FileFamily { return e.lay.Name }
func (e *Ledger) NumColumns() int          { return e.lay.Columns }
func (e *Ledger) ParentTypes() []string    { return e.lay.ParentTypes }
func (e *Ledger) EndMarker() string        { return e.lay.EndMarker }

// Extract builds the header and the expense collection.
func (e *Ledger) Extract(t sped.Table, opts sped.Options) (*sped.Extraction, error) {
	header, err := extractHeader(t, e.lay, opts)
	if err != nil {
		return nil, err
	}
	accounts, err := e.accountLookup(t)
	if err != nil {
		return nil, err
	}
	expenses, err := e.expenses(t, accounts, opts)
	if err != nil {
		return nil, err
	}
	return &sped.Extraction{Header: header, Expenses: expenses}, nil
}

// account is one chart-of-accounts row assembled from I050 and I051.
type account struct {
	Name string
	Ref  string
}

// accountLookup collects I050 chart rows by account code, then attaches the
// reference-chart code carried by each account's I051 child records.
func (e *Ledger) accountLookup(t sped.Table) (map[string]account, error) {
	i050, err := e.lay.Fields("I050", "COD_CTA", "NOME_CTA")
	if err != nil {
		return nil, err
	}
	i051, err := e.lay.Fields("I051", "COD_CTA_REF")
	if err != nil {
		return nil, err
	}

	accounts := make(map[string]account)
	codeByRow := make(map[int]string)
	for _, rec := range t.OfType("I050") {
		code := rec.Value(i050["COD_CTA"])
		codeByRow[rec.ID] = code
		if _, ok := accounts[code]; !ok {
			accounts[code] = account{Name: rec.Value(i050["NOME_CTA"])}
		}
	}
	for _, rec := range t.OfType("I051") {
		parent, ok := t.Parent(rec)
		if !ok {
			continue
		}
		code, ok := codeByRow[parent.ID]
		if !ok {
			continue
		}
		acct := accounts[code]
		if acct.Ref == "" {
			acct.Ref = rec.Value(i051["COD_CTA_REF"])
			accounts[code] = acct
		}
	}
	return accounts, nil
}

func (e *Ledger) expenses(t sped.Table, accounts map[string]account, opts sped.Options) ([]model.Expense, error) {
	i355, err := e.lay.Fields("I355", "COD_CTA", "VL_CTA", "IND_VL")
	if err != nil {
		return nil, err
	}

	log := opts.Log()
	var expenses []model.Expense
	for _, rec := range t.OfType("I355") {
		code := rec.Value(i355["COD_CTA"])
		acct := accounts[code]

		exp := model.Expense{
			AccountCode:        code,
			AccountDescription: acct.Name,
			ReferenceCode:      acct.Ref,
			Value:              sped.ParseAmount(rec.Value(i355["VL_CTA"])),
			IsDebit:            strings.ToUpper(rec.Value(i355["IND_VL"])) == codes.IndValueDebit,
		}
		if err := exp.Validate(); err != nil {
			log.Warn("skipping balance line", "row", rec.ID, "error", err)
			continue
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}
