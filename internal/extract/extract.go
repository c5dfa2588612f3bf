// Package extract implements the per-family business extractors that turn a
// trimmed, hierarchy-resolved record table into typed entities.
package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fiscalia-dev/spedparse/internal/layout"
	"github.com/fiscalia-dev/spedparse/internal/model"
	"github.com/fiscalia-dev/spedparse/internal/sped"
)

// Registry holds the family extractors by name.
type Registry struct {
	exts map[model.FileFamily]sped.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{exts: make(map[model.FileFamily]sped.Extractor)}
}

// Register adds an extractor. Panics on duplicate family.
func (r *Registry) Register(e sped.Extractor) {
	if _, ok := r.exts[e.Family()]; ok {
		panic("duplicate extractor family: " + string(e.Family()))
	}
	r.exts[e.Family()] = e
}

// Get returns the extractor for a family name, or nil.
func (r *Registry) Get(name string) sped.Extractor {
	return r.exts[model.FileFamily(strings.ToLower(name))]
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	names := make([]string, 0, len(r.exts))
	for f := range r.exts {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in family extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewContributions())
	r.Register(NewFiscal())
	r.Register(NewLedger())
	return r
}

// mustValidate enforces layout consistency when extractors are constructed.
// A bad table is a programming defect, not bad input.
func mustValidate(f *layout.Family) {
	if err := f.Validate(); err != nil {
		panic(err)
	}
}

// extractHeader builds the Header from the 0000 identification record. All
// three families name the header fields identically even though the column
// positions differ.
func extractHeader(t sped.Table, lay *layout.Family, opts sped.Options) (model.Header, error) {
	rec, ok := t.First("0000")
	if !ok {
		return model.Header{}, fmt.Errorf("%w: no 0000 identification record", sped.ErrValidation)
	}
	cols, err := lay.Fields("0000", "CNPJ", "NOME", "DT_INI", "DT_FIN", "UF")
	if err != nil {
		return model.Header{}, err
	}
	h := model.Header{
		Family:      lay.Name,
		CNPJ:        sped.PadCode(rec.Value(cols["CNPJ"]), 14),
		CompanyName: rec.Value(cols["NOME"]),
		PeriodStart: sped.ParseDate(rec.Value(cols["DT_INI"]), opts.FallbackDate),
		PeriodEnd:   sped.ParseDate(rec.Value(cols["DT_FIN"]), opts.FallbackDate),
		UF:          rec.Value(cols["UF"]),
	}
	if err := h.Validate(); err != nil {
		return model.Header{}, fmt.Errorf("%w: identification record: %v", sped.ErrValidation, err)
	}
	return h, nil
}

// product is one 0200 reference row.
type product struct {
	Description string
	NCM         string
}

// productLookup collects 0200 product declarations, one row per item code,
// first declaration wins.
func productLookup(t sped.Table, lay *layout.Family) (map[string]product, error) {
	cols, err := lay.Fields("0200", "COD_ITEM", "DESCR_ITEM", "COD_NCM")
	if err != nil {
		return nil, err
	}
	products := make(map[string]product)
	for _, rec := range t.OfType("0200") {
		code := rec.Value(cols["COD_ITEM"])
		if _, ok := products[code]; ok {
			continue
		}
		products[code] = product{
			Description: rec.Value(cols["DESCR_ITEM"]),
			NCM:         rec.Value(cols["COD_NCM"]),
		}
	}
	return products, nil
}
