package renderer

import (
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/importer"
)

// Import is the data of an import report.
type Import struct {
	Rows     int            `json:"rows"`
	Valid    int            `json:"valid"`
	Invalid  int            `json:"invalid"`
	Totals   []wealth.Money `json:"totals"`
	Problems []Problem      `json:"problems,omitempty"`
}

// Problem describes an entry rejected by the import.
type Problem struct {
	Line   int      `json:"line"`
	Type   string   `json:"type"`
	Symbol string   `json:"symbol"`
	Errors []string `json:"errors"`
}

// NewImport summarizes an import result.
func NewImport(r *importer.Result) *Import {
	s := r.Summary()
	report := &Import{
		Rows:    s.Rows,
		Valid:   s.Valid,
		Invalid: s.Invalid,
		Totals:  s.Totals,
	}
	for _, e := range r.Entries {
		if e.Valid() {
			continue
		}
		report.Problems = append(report.Problems, Problem{
			Line:   e.Line,
			Type:   e.Activity.Type.String(),
			Symbol: e.Activity.Symbol,
			Errors: e.Errors,
		})
	}
	return report
}
