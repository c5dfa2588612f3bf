package layout

import "github.com/fiscalia-dev/spedparse/internal/model"

// Ledger is the ECD accounting ledger layout. Block I carries the chart of
// accounts (I050/I051) and the P&L balances (I155/I355); the file's logical
// end is I990, ahead of the physical 9999.
var Ledger = &Family{
	Name:      model.FamilyLedger,
	Columns:   40,
	EndMarker: "I990",
	ParentTypes: []string{
		"0000", "0001", "C001", "C040", "C050", "C150", "C600", "I001", "I010", "I050", "I150",
	},
	Records: map[string]Layout{
		"0000": {
			"REG": 0, "LECD": 1, "DT_INI": 2, "DT_FIN": 3, "NOME": 4,
			"CNPJ": 5, "UF": 6, "IE": 7, "COD_MUN": 8, "IM": 9,
			"IND_SIT_ESP": 10, "IND_SIT_INI_PER": 11, "IND_NIRE": 12,
			"IND_FIN_ESC": 13, "COD_HASH_SUB": 14, "NIRE": 15,
		},
		"I050": {
			"REG": 0, "DT_ALT": 1, "COD_NAT": 2, "IND_CTA": 3, "NIVEL": 4,
			"COD_CTA": 5, "NOME_CTA": 6,
		},
		"I051": {
			"REG": 0, "COD_CCUS": 1, "COD_CTA_REF": 2,
		},
		"I155": {
			"REG": 0, "COD_CTA": 1, "COD_CCUS": 2, "VL_SLD_INI": 3,
			"IND_DC_INI": 4, "VL_DEB": 5, "VL_CRED": 6, "VL_SLD_FIN": 7,
			"IND_DC_FIN": 8,
		},
		"I355": {
			"REG": 0, "COD_CTA": 1, "COD_CCUS": 2, "VL_CTA": 3, "IND_VL": 4,
		},
	},
}
