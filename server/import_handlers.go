package server

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/importer"
)

// maxImportSize bounds the size of an uploaded export.
const maxImportSize = 10 << 20

// ImportResponse is the preview of a CSV import. Nothing is persisted.
type ImportResponse struct {
	Rows    int            `json:"rows"`
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
	Totals  []Total        `json:"totals"`
	Entries []ImportedItem `json:"entries"`
}

// Total is the net signed value of the valid activities in a currency.
type Total struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// ImportedItem is one row of an import preview.
type ImportedItem struct {
	Line     int             `json:"line"`
	Activity wealth.Activity `json:"activity"`
	Value    string          `json:"value"`
	Errors   []string        `json:"errors,omitempty"`
}

// handleImportCSV previews the import of a CSV export sent as the request body.
// The query parameters delimiter, currency and account adjust the default
// column mapping.
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mapping := importer.Mapping{
		Delimiter: q.Get("delimiter"),
		Currency:  q.Get("currency"),
		AccountID: q.Get("account"),
	}
	if utf8.RuneCountInString(mapping.Delimiter) > 1 {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("delimiter %q must be a single character", mapping.Delimiter))
		return
	}

	result, err := importer.New(mapping, s.log).ImportCSV(http.MaxBytesReader(w, r.Body, maxImportSize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary := result.Summary()
	resp := ImportResponse{
		Rows:    summary.Rows,
		Valid:   summary.Valid,
		Invalid: summary.Invalid,
		Totals:  []Total{},
		Entries: make([]ImportedItem, 0, len(result.Entries)),
	}
	for _, t := range summary.Totals {
		resp.Totals = append(resp.Totals, Total{Currency: t.Currency(), Value: t.Decimal().String()})
	}
	for _, e := range result.Entries {
		resp.Entries = append(resp.Entries, ImportedItem{
			Line:     e.Line,
			Activity: e.Activity,
			Value:    wealth.SignedValue(e.Activity).Decimal().String(),
			Errors:   e.Errors,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}
