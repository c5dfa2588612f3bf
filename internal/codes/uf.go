package codes

// stateByIBGE maps the first two digits of an IBGE municipality code
// (COD_MUN) to the two-letter state code.
var stateByIBGE = map[string]string{
	"11": "RO", "12": "AC", "13": "AM", "14": "RR", "15": "PA", "16": "AP",
	"17": "TO", "21": "MA", "22": "PI", "23": "CE", "24": "RN", "25": "PB",
	"26": "PE", "27": "AL", "28": "SE", "29": "BA", "31": "MG", "32": "ES",
	"33": "RJ", "35": "SP", "41": "PR", "42": "SC", "43": "RS", "50": "MS",
	"51": "MT", "52": "GO", "53": "DF",
}

// StateFromMunicipality derives the two-letter state code from an IBGE
// municipality code. Returns "" when the code is too short or unknown.
func StateFromMunicipality(codMun string) string {
	if len(codMun) < 2 {
		return ""
	}
	return stateByIBGE[codMun[:2]]
}
