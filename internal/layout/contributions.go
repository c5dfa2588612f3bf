package layout

import "github.com/fiscalia-dev/spedparse/internal/model"

// Contributions is the EFD Contribuições (PIS/COFINS) layout. The C170 and
// A170 detail lines in this family carry the sales side.
var Contributions = &Family{
	Name:      model.FamilyContributions,
	Columns:   40,
	EndMarker: "9999",
	ParentTypes: []string{
		"0000", "0140", "A100", "C100", "C180", "C190", "C380", "C400", "C500",
		"C600", "C800", "D100", "D500", "F100", "F120", "F130", "F150", "F200",
		"F500", "F600", "F700", "F800", "I100", "M100", "M200", "M300", "M350",
		"M400", "M500", "M600", "M700", "M800", "P100", "P200", "1010", "1020",
		"1050", "1100", "1200", "1300", "1500", "1600", "1700", "1800", "1900",
	},
	Records: map[string]Layout{
		"0000": {
			"REG": 0, "COD_VER": 1, "TIPO_ESCRIT": 2, "IND_SIT_ESP": 3,
			"NUM_REC_ANTERIOR": 4, "DT_INI": 5, "DT_FIN": 6, "NOME": 7,
			"CNPJ": 8, "UF": 9, "COD_MUN": 10, "SUFRAMA": 11,
			"IND_NAT_PJ": 12, "IND_ATIV": 13,
		},
		"0140": {
			"REG": 0, "COD_EST": 1, "NOME": 2, "CNPJ": 3, "UF": 4,
			"IE": 5, "COD_MUN": 6, "IM": 7, "SUFRAMA": 8,
		},
		"0200": {
			"REG": 0, "COD_ITEM": 1, "DESCR_ITEM": 2, "COD_BARRA": 3,
			"COD_ANT_ITEM": 4, "UNID_INV": 5, "TIPO_ITEM": 6, "COD_NCM": 7,
			"EX_IPI": 8, "COD_GEN": 9,
		},
		"A100": {
			"REG": 0, "IND_OPER": 1, "IND_EMIT": 2, "COD_PART": 3,
			"COD_SIT": 4, "SER": 5, "SUB": 6, "NUM_DOC": 7, "CHV_NFSE": 8,
			"DT_DOC": 9, "DT_EXE_SERV": 10, "VL_DOC": 11, "IND_PGTO": 12,
			"VL_DESC": 13, "VL_PIS": 14, "VL_COFINS": 15, "VL_PIS_RET": 16,
			"VL_COFINS_RET": 17, "VL_ISS": 18,
		},
		"A170": {
			"REG": 0, "NUM_ITEM": 1, "COD_ITEM": 2, "DESCR_COMPL": 3,
			"VL_ITEM": 4, "VL_DESC": 5, "NAT_BC_CRED": 6, "IND_ORIG_CRED": 7,
			"CST_PIS": 8, "VL_BC_PIS": 9, "ALIQ_PIS": 10, "VL_PIS": 11,
			"CST_COFINS": 12, "VL_BC_COFINS": 13, "ALIQ_COFINS": 14,
			"VL_COFINS": 15, "COD_CTA": 16, "COD_CCUS": 17,
		},
		"C100": {
			"REG": 0, "IND_OPER": 1, "IND_EMIT": 2, "COD_PART": 3,
			"COD_MOD": 4, "COD_SIT": 5, "SER": 6, "NUM_DOC": 7, "CHV_NFE": 8,
			"DT_DOC": 9, "DT_E_S": 10, "VL_DOC": 11, "IND_PGTO": 12,
			"VL_DESC": 13, "VL_ABAT_NT": 14, "VL_MERC": 15, "IND_FRT": 16,
			"VL_FRT": 17, "VL_SEG": 18, "VL_OUT_DA": 19, "VL_BC_ICMS": 20,
			"VL_ICMS": 21, "VL_BC_ICMS_ST": 22, "VL_ICMS_ST": 23, "VL_IPI": 24,
			"VL_PIS": 25, "VL_COFINS": 26, "VL_PIS_ST": 27, "VL_COFINS_ST": 28,
		},
		"C170": {
			"REG": 0, "NUM_ITEM": 1, "COD_ITEM": 2, "DESCR_COMPL": 3,
			"QTD": 4, "UNID": 5, "VL_ITEM": 6, "VL_DESC": 7, "IND_MOV": 8,
			"CST_ICMS": 9, "CFOP": 10, "COD_NAT": 11, "VL_BC_ICMS": 12,
			"ALIQ_ICMS": 13, "VL_ICMS": 14, "VL_BC_ICMS_ST": 15, "ALIQ_ST": 16,
			"VL_ICMS_ST": 17, "IND_APUR": 18, "CST_PIS": 19, "VL_BC_PIS": 20,
			"ALIQ_PIS": 21, "QUANT_BC_PIS": 22, "ALIQ_PIS_QUANT": 23,
			"VL_PIS": 24, "CST_COFINS": 25, "VL_BC_COFINS": 26,
			"ALIQ_COFINS": 27, "QUANT_BC_COFINS": 28, "ALIQ_COFINS_QUANT": 29,
			"VL_COFINS": 30, "COD_CTA": 31,
		},
		"M100": {
			"REG": 0, "COD_CRED": 1, "IND_CRED_ORI": 2, "VL_BC_COFINS": 3,
			"ALIQ_COFINS": 4, "QUANT_BC_COFINS": 5, "ALIQ_COFINS_QUANT": 6,
			"VL_CRED": 7, "VL_AJUS_ACRES": 8, "VL_AJUS_REDUC": 9,
			"VL_CRED_DIF": 10, "VL_CRED_DISP": 11, "IND_DESC_CRED": 12,
			"VL_CRED_DESC": 13, "SLD_CRED": 14,
		},
	},
}
