// Package document assembles the full tax bracket document from a rate
// dataset: federal schedule first, then every province and territory.
package document

import (
	"fmt"

	"github.com/rrspmax/bracketgen/internal/bracket"
	"github.com/rrspmax/bracketgen/internal/taxrate"
)

// ProvinceBrackets holds one province or territory's entry in the output.
type ProvinceBrackets struct {
	Name     string            `json:"name"`
	Brackets []bracket.Bracket `json:"brackets"`
}

// TaxDocument is the top-level output document. The provincial map keys are
// 2-letter codes; encoding/json sorts map keys, which matches the canonical
// code order, so serialization is deterministic.
type TaxDocument struct {
	Year       int                         `json:"year"`
	Federal    []bracket.Bracket           `json:"federal"`
	Provincial map[string]ProvinceBrackets `json:"provincial"`
}

// Observer receives per-jurisdiction progress during assembly. All methods
// must accept a federal code of taxrate.FederalCode. A nil Observer is valid
// and ignored.
type Observer interface {
	FetchStart(code string)
	FetchDone(code string, bands int)
	FetchFailed(code string, err error)
}

// Build assembles a TaxDocument from the dataset. A federal fetch failure is
// fatal and returns an error with no document. A provincial failure is
// reported to the observer, the code is omitted from the map, and assembly
// continues; the skipped codes are returned in order.
func Build(ds taxrate.Dataset, obs Observer) (*TaxDocument, []string, error) {
	if obs == nil {
		obs = noopObserver{}
	}

	obs.FetchStart(taxrate.FederalCode)
	federal, err := ds.Federal()
	if err != nil {
		obs.FetchFailed(taxrate.FederalCode, err)
		return nil, nil, fmt.Errorf("document: federal brackets: %w", err)
	}
	obs.FetchDone(taxrate.FederalCode, len(federal))

	doc := &TaxDocument{
		Year:       ds.Year(),
		Federal:    bracket.Normalize(federal),
		Provincial: make(map[string]ProvinceBrackets, len(taxrate.ProvincialCodes)),
	}

	var skipped []string
	for _, code := range taxrate.ProvincialCodes {
		obs.FetchStart(code)
		sched, err := ds.Provincial(code)
		if err != nil {
			obs.FetchFailed(code, err)
			skipped = append(skipped, code)
			continue
		}
		obs.FetchDone(code, len(sched))

		name, _ := taxrate.Name(code)
		doc.Provincial[code] = ProvinceBrackets{
			Name:     name,
			Brackets: bracket.Normalize(sched),
		}
	}

	return doc, skipped, nil
}

type noopObserver struct{}

func (noopObserver) FetchStart(string)         {}
func (noopObserver) FetchDone(string, int)     {}
func (noopObserver) FetchFailed(string, error) {}
