package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportCSV reads a CSV export. The first row is the header, every other
// non-blank row becomes an entry, valid or not.
func (im *Importer) ImportCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if d := []rune(im.mapping.Delimiter); len(d) == 1 {
		reader.Comma = d[0]
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	headers := make(map[string]int, len(header))
	for i, h := range header {
		headers[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	// column index per field, absent fields are not in the map.
	index := make(map[Field]int)
	for _, f := range fields {
		if i, ok := headers[strings.ToLower(im.mapping.column(f))]; ok {
			index[f] = i
		}
	}
	for _, f := range []Field{FieldType, FieldDate} {
		if _, ok := index[f]; !ok {
			return nil, fmt.Errorf("CSV header has no %q column for %s", im.mapping.column(f), f)
		}
	}

	result := new(Result)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if blank(row) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rec := func(f Field) (any, bool) {
			i, ok := index[f]
			if !ok || i >= len(row) {
				return nil, false
			}
			return row[i], true
		}
		result.Entries = append(result.Entries, im.entry(line, rec))
	}
	im.log.Info().Int("rows", len(result.Entries)).Msg("CSV imported")
	return result, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
