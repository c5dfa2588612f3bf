package layout

import "github.com/fiscalia-dev/spedparse/internal/model"

// Fiscal is the EFD Fiscal (ICMS/IPI) layout. The C170 detail lines in this
// family carry the purchase side, and 0150 participants supply the
// counterparty state.
var Fiscal = &Family{
	Name:      model.FamilyFiscal,
	Columns:   42,
	EndMarker: "9999",
	ParentTypes: []string{
		"0000",
		"C100", "C300", "C350", "C400", "C495", "C500", "C600", "C700", "C800", "C860",
		"D100", "D300", "D350", "D400", "D500", "D600", "D695", "D700", "D750",
		"E100", "E200", "E300", "E500",
		"G110",
		"H005",
		"K100", "K200", "K210", "K220", "K230", "K250", "K260", "K270", "K280", "K290", "K300",
		"1100", "1200", "1300", "1350", "1390", "1400", "1500", "1600", "1601", "1700", "1800",
		"1900", "1960", "1970", "1980",
	},
	Records: map[string]Layout{
		"0000": {
			"REG": 0, "COD_VER": 1, "COD_FIN": 2, "DT_INI": 3, "DT_FIN": 4,
			"NOME": 5, "CNPJ": 6, "CPF": 7, "UF": 8, "IE": 9, "COD_MUN": 10,
			"IM": 11, "SUFRAMA": 12, "IND_PERFIL": 13, "IND_ATIV": 14,
		},
		"0150": {
			"REG": 0, "COD_PART": 1, "NOME": 2, "COD_PAIS": 3, "CNPJ": 4,
			"CPF": 5, "IE": 6, "COD_MUN": 7, "SUFRAMA": 8, "END": 9,
			"NUM": 10, "COMPL": 11, "BAIRRO": 12,
		},
		"0200": {
			"REG": 0, "COD_ITEM": 1, "DESCR_ITEM": 2, "COD_BARRA": 3,
			"COD_ANT_ITEM": 4, "UNID_INV": 5, "TIPO_ITEM": 6, "COD_NCM": 7,
			"EX_IPI": 8, "COD_GEN": 9, "COD_LST": 10, "ALIQ_ICMS": 11,
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
			"VL_ICMS_ST": 17, "IND_APUR": 18, "CST_IPI": 19, "COD_ENQ": 20,
			"VL_BC_IPI": 21, "ALIQ_IPI": 22, "VL_IPI": 23, "CST_PIS": 24,
			"VL_BC_PIS": 25, "ALIQ_PIS": 26, "QUANT_BC_PIS": 27,
			"ALIQ_PIS_QUANT": 28, "VL_PIS": 29, "CST_COFINS": 30,
			"VL_BC_COFINS": 31, "ALIQ_COFINS": 32, "QUANT_BC_COFINS": 33,
			"ALIQ_COFINS_QUANT": 34, "VL_COFINS": 35, "COD_CTA": 36,
		},
		"C190": {
			"REG": 0, "CST_ICMS": 1, "CFOP": 2, "ALIQ_ICMS": 3, "VL_OPR": 4,
			"VL_BC_ICMS": 5, "VL_ICMS": 6, "VL_BC_ICMS_ST": 7, "VL_ICMS_ST": 8,
			"VL_RED_BC": 9, "VL_IPI": 10, "COD_OBS": 11,
		},
		"E110": {
			"REG": 0, "VL_TOT_DEBITOS": 1, "VL_AJ_DEBITOS": 2,
			"VL_TOT_AJ_DEBITOS": 3, "VL_ESTORNOS_CRED": 4, "VL_TOT_CREDITOS": 5,
			"VL_AJ_CREDITOS": 6, "VL_TOT_AJ_CREDITOS": 7, "VL_ESTORNOS_DEB": 8,
			"VL_SLD_CREDOR_ANT": 9, "VL_SLD_APURADO": 10, "VL_TOT_DED": 11,
			"VL_ICMS_RECOLHER": 12, "VL_SLD_CREDOR_TRANSPORTAR": 13, "DEB_ESP": 14,
		},
	},
}
