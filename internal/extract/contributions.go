package extract

import (
	"github.com/fiscalia-dev/spedparse/internal/codes"
	"github.com/fiscalia-dev/spedparse/internal/layout"
	"github.com/fiscalia-dev/spedparse/internal/model"
	"github.com/fiscalia-dev/spedparse/internal/sped"
)

// serviceCFOP is the default operation classification for service lines,
// which carry no CFOP of their own.
const serviceCFOP = "5933"

// Contributions extracts the sales side from EFD Contribuições files:
// goods lines (C170 under C100) and service lines (A170 under A100), both
// outgoing only. Purchase credits live in the fiscal family, never here.
type Contributions struct {
	lay *layout.Family
}

// NewContributions creates the contributions-family extractor.
func NewContributions() *Contributions {
	mustValidate(layout.Contributions)
	return &Contributions{lay: layout.Contributions}
}

func (e *Contributions) Family() model.FileFamily { return e.lay.Name }
func (e *Contributions) NumColumns() int          { return e.lay.Columns }
func (e *Contributions) ParentTypes() []string    { return e.lay.ParentTypes }
func (e *Contributions) EndMarker() string        { return e.lay.EndMarker }

// Extract builds the header and the outgoing item collections.
func (e *Contributions) Extract(t sped.Table, opts sped.Options) (*sped.Extraction, error) {
	header, err := extractHeader(t, e.lay, opts)
	if err != nil {
		return nil, err
	}
	products, err := productLookup(t, e.lay)
	if err != nil {
		return nil, err
	}
	sales, err := e.goodsSales(t, products, opts)
	if err != nil {
		return nil, err
	}
	services, err := e.serviceSales(t, products, opts)
	if err != nil {
		return nil, err
	}
	return &sped.Extraction{Header: header, Sales: append(sales, services...)}, nil
}

func (e *Contributions) goodsSales(t sped.Table, products map[string]product, opts sped.Options) ([]model.Item, error) {
	c100, err := e.lay.Fields("C100", "IND_OPER", "NUM_DOC", "CHV_NFE", "DT_DOC")
	if err != nil {
		return nil, err
	}
	c170, err := e.lay.Fields("C170",
		"COD_ITEM", "DESCR_COMPL", "QTD", "UNID", "VL_ITEM", "CFOP",
		"CST_ICMS", "VL_BC_ICMS", "ALIQ_ICMS", "VL_ICMS",
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
		if parent.Value(c100["IND_OPER"]) != codes.IndOperOutgoing {
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

			Direction: model.DirectionOutgoing,
		}
		if err := item.Validate(); err != nil {
			log.Warn("skipping goods sale line", "row", rec.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (e *Contributions) serviceSales(t sped.Table, products map[string]product, opts sped.Options) ([]model.Item, error) {
	a100, err := e.lay.Fields("A100", "IND_OPER", "NUM_DOC", "CHV_NFSE", "DT_DOC")
	if err != nil {
		return nil, err
	}
	a170, err := e.lay.Fields("A170",
		"COD_ITEM", "DESCR_COMPL", "VL_ITEM", "NAT_BC_CRED",
		"CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS",
		"CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS")
	if err != nil {
		return nil, err
	}

	log := opts.Log()
	var items []model.Item
	for _, rec := range t.OfType("A170") {
		parent, ok := t.Parent(rec)
		if !ok || parent.Type() != "A100" {
			continue
		}
		if parent.Value(a100["IND_OPER"]) != codes.IndOperOutgoing {
			continue
		}

		prod := products[rec.Value(a170["COD_ITEM"])]
		desc := prod.Description
		if desc == "" {
			desc = rec.Value(a170["DESCR_COMPL"])
		}

		item := model.Item{
			NCM:         sped.PadCode(prod.NCM, 8),
			CFOP:        serviceCFOP,
			ItemCode:    rec.Value(a170["COD_ITEM"]),
			Description: desc,

			TotalValue: sped.ParseAmount(rec.Value(a170["VL_ITEM"])),

			PISValue:    sped.ParseAmount(rec.Value(a170["VL_PIS"])),
			COFINSValue: sped.ParseAmount(rec.Value(a170["VL_COFINS"])),

			PISRate:    sped.ParseOptionalAmount(rec.Value(a170["ALIQ_PIS"])),
			COFINSRate: sped.ParseOptionalAmount(rec.Value(a170["ALIQ_COFINS"])),

			PISBase:    sped.ParseOptionalAmount(rec.Value(a170["VL_BC_PIS"])),
			COFINSBase: sped.ParseOptionalAmount(rec.Value(a170["VL_BC_COFINS"])),

			CSTPIS:    rec.Value(a170["CST_PIS"]),
			CSTCOFINS: rec.Value(a170["CST_COFINS"]),

			CreditNature: rec.Value(a170["NAT_BC_CRED"]),

			DocumentNumber: parent.Value(a100["NUM_DOC"]),
			DocumentKey:    parent.Value(a100["CHV_NFSE"]),
			DocumentDate:   sped.ParseOptionalDate(parent.Value(a100["DT_DOC"]), opts.FallbackDate),

			Direction: model.DirectionOutgoing,
		}
		if err := item.Validate(); err != nil {
			log.Warn("skipping service sale line", "row", rec.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
