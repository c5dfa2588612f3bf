// Package codes holds the read-only domain code dictionaries published with
// the SPED layouts. They are lookup data, never computed.
package codes

// Operation indicator values (IND_OPER on C100/A100).
const (
	IndOperIncoming = "0" // entrada: purchase
	IndOperOutgoing = "1" // saída: sale
)

// Debit indicator value (IND_VL on I355).
const IndValueDebit = "D"

// DocumentSituations describes COD_SIT document status codes.
var DocumentSituations = map[string]string{
	"00": "regular document",
	"01": "late regular document",
	"02": "canceled document",
	"03": "late canceled document",
	"04": "denied NFe",
	"05": "voided NFe numbering",
	"06": "complementary fiscal document",
	"07": "late complementary fiscal document",
	"08": "document issued under special regime",
}

// CreditNatures describes NAT_BC_CRED credit-base classification codes.
var CreditNatures = map[string]string{
	"01": "goods acquired for resale",
	"02": "goods used as production input",
	"03": "services used as production input",
	"04": "electric and thermal energy",
	"05": "building rentals",
	"06": "machinery and equipment rentals",
	"07": "storage and outbound freight",
	"08": "commercial leasing payments",
	"09": "fixed assets (depreciation basis)",
	"10": "fixed assets (acquisition basis)",
	"11": "building amortization and depreciation",
	"12": "returns of non-cumulative sales",
	"13": "other credit-bearing operations",
	"14": "cargo transport subcontracting",
	"15": "cargo transport single-phase sales",
	"16": "other situations",
}

// CreditNatureDescription returns the description for a NAT_BC_CRED code,
// or "" for unknown codes.
func CreditNatureDescription(code string) string {
	return CreditNatures[code]
}
