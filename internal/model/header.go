package model

import (
	"fmt"
	"time"
)

// FileFamily identifies one of the three supported SPED export variants.
type FileFamily string

const (
	FamilyContributions FileFamily = "contributions" // EFD Contribuições (PIS/COFINS)
	FamilyFiscal        FileFamily = "fiscal"        // EFD Fiscal (ICMS/IPI)
	FamilyLedger        FileFamily = "ledger"        // ECD accounting ledger
)

// Header carries company identification and the bookkeeping period,
// taken from the 0000 record that opens every SPED file.
type Header struct {
	Family      FileFamily
	CNPJ        string // 14-digit taxpayer id, left-padded with zeros
	CompanyName string
	PeriodStart time.Time
	PeriodEnd   time.Time
	UF          string // two-letter state code
}

// Validate checks the fixed-format fields.
func (h Header) Validate() error {
	if len(h.CNPJ) != 14 || !isDigits(h.CNPJ) {
		return fmt.Errorf("cnpj must be 14 digits, got %q", h.CNPJ)
	}
	if len(h.UF) != 2 || !isUpperLetters(h.UF) {
		return fmt.Errorf("uf must be two uppercase letters, got %q", h.UF)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isUpperLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
