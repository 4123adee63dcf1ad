package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// JSONPaths locates activities in a JSON document.
type JSONPaths struct {
	// Records selects the list of records, e.g. "$.transactions[*]".
	Records string `json:"records"`
	// Fields gives, for each field, a path relative to a record, e.g. "$.qty".
	// Unmapped fields are read from the record key of the same name.
	Fields map[Field]string `json:"fields,omitempty"`
}

// DecodeJSONPaths reads JSONPaths from a JSON document. Unknown keys are
// rejected.
func DecodeJSONPaths(r io.Reader) (JSONPaths, error) {
	var p JSONPaths
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("invalid JSON paths: %w", err)
	}
	return p, nil
}

func (p JSONPaths) field(f Field) string {
	if path, ok := p.Fields[f]; ok {
		return path
	}
	return "$." + string(f)
}

// ImportJSON reads the records selected by paths in a JSON document. Numbers
// keep their exact decimal representation.
func (im *Importer) ImportJSON(r io.Reader, paths JSONPaths) (*Result, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	selector := paths.Records
	if selector == "" {
		selector = "$[*]"
	}
	jval, err := jsonpath.Get(selector, doc)
	if err != nil {
		return nil, fmt.Errorf("error selecting records with %q: %w", selector, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// a single record
		records = []any{jval}
	}

	result := new(Result)
	for i, jrec := range records {
		rec := func(f Field) (any, bool) {
			v, err := jsonpath.Get(paths.field(f), jrec)
			if err != nil {
				// unknown key
				return nil, false
			}
			// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer
			if list, ok := v.([]any); ok {
				if len(list) == 0 {
					return nil, false
				}
				v = list[0]
			}
			return v, true
		}
		result.Entries = append(result.Entries, im.entry(i+1, rec))
	}
	im.log.Info().Int("records", len(result.Entries)).Msg("JSON imported")
	return result, nil
}
