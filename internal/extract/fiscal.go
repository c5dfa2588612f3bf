package extract

import (
	"github.com/fiscalia-dev/spedparse/internal/codes"
	"github.com/fiscalia-dev/spedparse/internal/layout"
	"github.com/fiscalia-dev/spedparse/internal/model"
	"github.com/fiscalia-dev/spedparse/internal/sped"
)

// Fiscal extracts the purchase side from EFD Fiscal files: C170 lines under
// incoming C100 documents, enriched with the supplier's state from the 0150
// participant table. Sales live in the contributions family, never here.
type Fiscal struct {
	lay *layout.Family
}

// NewFiscal creates the fiscal-family extractor.
func NewFiscal() *Fiscal {
	mustValidate(layout.Fiscal)
	return &Fiscal{lay: layout.Fiscal}
}

func (e *Fiscal) Family() model.FileFamily { return e.lay.Name }
func (e *Fiscal) NumColumns() int          { return e.lay.Columns }
func (e *Fiscal) ParentTypes() []string    { return e.lay.ParentTypes }
func (e *Fiscal) EndMarker() string        { return e.lay.EndMarker }

// Extract builds the header and the incoming item collection.
func (e *Fiscal) Extract(t sped.Table, opts sped.Options) (*sped.Extraction, error) {
	header, err := extractHeader(t, e.lay, opts)
	if err != nil {
		return nil, err
	}
	products, err := productLookup(t, e.lay)
	if err != nil {
		return nil, err
	}
	participants, err := e.participantLookup(t)
	if err != nil {
		return nil, err
	}
	purchases, err := e.purchases(t, products, participants, opts)
	if err != nil {
		return nil, err
	}
	return &sped.Extraction{Header: header, Purchases: purchases}, nil
}

// participant is one 0150 reference row.
type participant struct {
	Name string
	UF   string
}

// participantLookup collects 0150 participant declarations, one row per
// participant code, first declaration wins. The state comes from the IBGE
// municipality code prefix.
func (e *Fiscal) participantLookup(t sped.Table) (map[string]participant, error) {
	cols, err := e.lay.Fields("0150", "COD_PART", "NOME", "COD_MUN")
	if err != nil {
		return nil, err
	}
	participants := make(map[string]participant)
	for _, rec := range t.OfType("0150") {
		code := rec.Value(cols["COD_PART"])
		if _, ok := participants[code]; ok {
			continue
		}
		participants[code] = participant{
			Name: rec.Value(cols["NOME"]),
			UF:   codes.StateFromMunicipality(rec.Value(cols["COD_MUN"])),
		}
	}
	return participants, nil
}

func (e *Fiscal) purchases(t sped.Table, products map[string]product, participants map[string]participant, opts sped.Options) ([]model.Item, error) {
	c100, err := e.lay.Fields("C100", "IND_OPER", "COD_PART", "NUM_DOC", "CHV_NFE", "DT_DOC")
	if err != nil {
		return nil, err
	}
	c170, err := e.lay.Fields("C170",
		"COD_ITEM", "DESCR_COMPL", "QTD", "UNID", "VL_ITEM", "CFOP",
		"CST_ICMS", "VL_BC_ICMS", "ALIQ_ICMS", "VL_ICMS", "VL_IPI",
		"CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS",
		"CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS")
	if err != nil {
		return nil, err
	}

	log := opts.Log()
	var items []model.Item
	for _, rec := range t.OfType("C170") {
		parent, ok := t.Parent(rec)
		if !ok || parent.Type() != "C100" {
			continue
		}
		if parent.Value(c100["IND_OPER"]) != codes.IndOperIncoming {
			continue
		}

		prod := products[rec.Value(c170["COD_ITEM"])]
		desc := prod.Description
		if desc == "" {
			desc = rec.Value(c170["DESCR_COMPL"])
		}

		item := model.Item{
			NCM:         sped.PadCode(prod.NCM, 8),
			CFOP:        sped.PadCode(rec.Value(c170["CFOP"]), 4),
			ItemCode:    rec.Value(c170["COD_ITEM"]),
			Description: desc,

			TotalValue: sped.ParseAmount(rec.Value(c170["VL_ITEM"])),
			Quantity:   sped.ParseOptionalAmount(rec.Value(c170["QTD"])),
			Unit:       rec.Value(c170["UNID"]),

			ICMSValue:   sped.ParseAmount(rec.Value(c170["VL_ICMS"])),
			PISValue:    sped.ParseAmount(rec.Value(c170["VL_PIS"])),
			COFINSValue: sped.ParseAmount(rec.Value(c170["VL_COFINS"])),
			IPIValue:    sped.ParseOptionalAmount(rec.Value(c170["VL_IPI"])),

			ICMSRate:   sped.ParseOptionalAmount(rec.Value(c170["ALIQ_ICMS"])),
			PISRate:    sped.ParseOptionalAmount(rec.Value(c170["ALIQ_PIS"])),
			COFINSRate: sped.ParseOptionalAmount(rec.Value(c170["ALIQ_COFINS"])),

			ICMSBase:   sped.ParseOptionalAmount(rec.Value(c170["VL_BC_ICMS"])),
			PISBase:    sped.ParseOptionalAmount(rec.Value(c170["VL_BC_PIS"])),
			COFINSBase: sped.ParseOptionalAmount(rec.Value(c170["VL_BC_COFINS"])),

			CSTICMS:   rec.Value(c170["CST_ICMS"]),
			CSTPIS:    rec.Value(c170["CST_PIS"]),
			CSTCOFINS: rec.Value(c170["CST_COFINS"]),

			DocumentNumber: parent.Value(c100["NUM_DOC"]),
			DocumentKey:    parent.Value(c100["CHV_NFE"]),
			DocumentDate:   sped.ParseOptionalDate(parent.Value(c100["DT_DOC"]), opts.FallbackDate),

			Direction:      model.DirectionIncoming,
			CounterpartyUF: participants[parent.Value(c100["COD_PART"])].UF,
		}
		if err := item.Validate(); err != nil {
			log.Warn("skipping purchase line", "row", rec.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
