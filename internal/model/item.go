package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a movement line is a purchase or a sale.
type Direction string

const (
	DirectionIncoming Direction = "incoming" // entrada (purchase)
	DirectionOutgoing Direction = "outgoing" // saída (sale)
)

// Item is one goods or service movement line (C170/A170).
//
// Required amounts default to zero when the source field is blank; optional
// amounts are nil when absent so that "no value reported" stays distinct
// from an explicit zero.
type Item struct {
	NCM         string // 8-digit product classification
	CFOP        string // 4-digit operation classification
	ItemCode    string
	Description string

	TotalValue decimal.Decimal
	Quantity   *decimal.Decimal
	Unit       string

	ICMSValue   decimal.Decimal
	PISValue    decimal.Decimal
	COFINSValue decimal.Decimal
	IPIValue    *decimal.Decimal // fiscal family only

	ICMSRate   *decimal.Decimal
	PISRate    *decimal.Decimal
	COFINSRate *decimal.Decimal

	ICMSBase   *decimal.Decimal
	PISBase    *decimal.Decimal
	COFINSBase *decimal.Decimal

	CSTICMS   string
	CSTPIS    string
	CSTCOFINS string

	CreditNature string // NAT_BC_CRED classification, service lines only

	DocumentNumber string
	DocumentKey    string
	DocumentDate   *time.Time

	Direction      Direction
	CounterpartyUF string // incoming items only, blank when unknown
}

// Validate checks the fixed-length classification codes and direction.
func (i Item) Validate() error {
	if len(i.NCM) != 8 || !isDigits(i.NCM) {
		return fmt.Errorf("ncm must be 8 digits, got %q", i.NCM)
	}
	if len(i.CFOP) != 4 || !isDigits(i.CFOP) {
		return fmt.Errorf("cfop must be 4 digits, got %q", i.CFOP)
	}
	if i.Direction != DirectionIncoming && i.Direction != DirectionOutgoing {
		return fmt.Errorf("invalid direction %q", i.Direction)
	}
	if i.CounterpartyUF != "" && (len(i.CounterpartyUF) != 2 || !isUpperLetters(i.CounterpartyUF)) {
		return fmt.Errorf("counterparty uf must be two uppercase letters, got %q", i.CounterpartyUF)
	}
	return nil
}
