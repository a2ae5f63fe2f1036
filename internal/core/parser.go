package core

// parser.go turns raw CSV text into keyed rows.
//
// Structural problems never abort the parse. A row whose field count does
// not match the header is reported and dropped, blank lines are skipped
// before rows are numbered, and everything else is returned as data.

import (
	"fmt"
	"strings"
)

// ErrMsgTooFewRows is reported when the input has no data rows.
const ErrMsgTooFewRows = "CSV must have at least a header row and one data row"

// ParseCSV parses CSV text with a mandatory header row.
// Headers are trimmed and lower-cased; values are trimmed.
func ParseCSV(text string) ParseResult {
	var lines []string
	for _, line := range splitRecords(strings.TrimSpace(text)) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return ParseResult{
			Headers: []string{},
			Data:    []Row{},
			Errors:  []string{ErrMsgTooFewRows},
		}
	}

	headers := SplitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	result := ParseResult{
		Headers: headers,
		Data:    make([]Row, 0, len(lines)-1),
		Errors:  []string{},
	}

	for i := 1; i < len(lines); i++ {
		values := SplitLine(lines[i])
		if len(values) != len(headers) {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Row %d: Column count (%d) doesn't match header count (%d)",
				i+1, len(values), len(headers)))
			continue
		}

		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = strings.TrimSpace(values[j])
		}
		result.Data = append(result.Data, row)
	}

	return result
}
