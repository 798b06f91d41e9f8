// Package records parses the structured output formats of the remote
// administration CLI: tabular CSV listings and JSON documents.
package records

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one row of a tabular CLI listing, keyed by normalized column name.
type Record map[string]string

// ParseCSV parses the line-oriented CSV output of the admin CLI into one
// Record per data row. Column names from the header row are normalized to
// lowercase with underscores so test code can address fields uniformly
// ("Organization ID" becomes "organization_id").
func ParseCSV(lines []string) ([]Record, error) {
	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV output: %w", err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = normalizeField(name)
	}

	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(header))
		for i, value := range row {
			if i >= len(header) {
				break
			}
			record[header[i]] = value
		}
		out = append(out, record)
	}
	return out, nil
}

// ParseJSON decodes a JSON document emitted by the admin CLI into a generic
// value (map, slice, or scalar).
func ParseJSON(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, fmt.Errorf("failed to parse JSON output: %w", err)
	}
	return value, nil
}

func normalizeField(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
