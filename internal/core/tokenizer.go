package core

import "strings"

// SplitLine splits one CSV record into its field values.
//
// Quoting is permissive: a quote anywhere outside a quoted section opens
// one, and an unterminated quote simply runs to the end of the line.
// A doubled quote inside a quoted section is a literal quote.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	return append(fields, current.String())
}

// splitRecords splits CSV text into records on \n or \r\n.
// Line breaks inside a quoted field belong to the field. A quote that is
// never closed only spans its own line: scanning restarts on the next one.
func splitRecords(text string) []string {
	var (
		records  []string
		start    int
		inQuotes bool
	)

	for i := 0; i <= len(text); i++ {
		if i == len(text) {
			if !inQuotes {
				break
			}
			nl := strings.IndexByte(text[start:], '\n')
			if nl < 0 {
				break
			}
			records = append(records, strings.TrimSuffix(text[start:start+nl], "\r"))
			start += nl + 1
			i = start - 1
			inQuotes = false
			continue
		}

		switch text[i] {
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if inQuotes {
				continue
			}
			records = append(records, strings.TrimSuffix(text[start:i], "\r"))
			start = i + 1
		}
	}

	return append(records, strings.TrimSuffix(text[start:], "\r"))
}
