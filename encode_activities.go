package wealth

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeActivities decodes activities from a stream of JSONL data, one
// activity per line. Empty lines are skipped.
func DecodeActivities(r io.Reader) ([]Activity, error) {
	var activities []Activity
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}
		var a Activity
		if err := json.Unmarshal(lineBytes, &a); err != nil {
			return nil, fmt.Errorf("line %d: could not decode activity %q: %w", line, string(lineBytes), err)
		}
		activities = append(activities, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading activities: %w", err)
	}
	return activities, nil
}

// EncodeActivity writes a single activity as one JSON line.
func EncodeActivity(w io.Writer, a Activity) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("could not encode activity: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EncodeActivities writes activities in JSONL format, in the given order.
func EncodeActivities(w io.Writer, activities []Activity) error {
	bw := bufio.NewWriter(w)
	for _, a := range activities {
		if err := EncodeActivity(bw, a); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SortActivities returns a copy of activities sorted by date. Activities on
// the same date keep their relative order.
func SortActivities(activities []Activity) []Activity {
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b Activity) int { return a.Date.Compare(b.Date) })
	return sorted
}
