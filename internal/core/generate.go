package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// GenerateCSV renders records as CSV text.
//
// The header line is written verbatim. Each cell is looked up with a dotted
// path ("profile.firstName") and quoted when it contains a comma, quote or
// line break. Rows are joined with \n and there is no trailing newline.
func GenerateCSV(data []Record, headers []string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))

	for _, rec := range data {
		b.WriteByte('\n')
		for i, h := range headers {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(EscapeField(stringify(lookupPath(rec, h))))
		}
	}

	return b.String()
}

// GenerateRows renders parsed rows as CSV text, reading each header's
// lower-cased key.
func GenerateRows(rows []Row, headers []string) string {
	data := make([]Record, len(rows))
	for i, row := range rows {
		rec := make(Record, len(headers))
		for _, h := range headers {
			rec[h] = row[strings.ToLower(h)]
		}
		data[i] = rec
	}
	return GenerateCSV(data, headers)
}

// EscapeField quotes a value when it would otherwise break the record.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// lookupPath resolves a header against rec. An exact key wins; otherwise
// the header is walked as a dotted path. Any missing or nil step yields nil.
func lookupPath(rec Record, path string) any {
	if v, ok := rec[path]; ok {
		return v
	}

	var cur any = rec
	for _, key := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case Record:
			cur = m[key]
		case map[string]any:
			cur = m[key]
		case map[string]string:
			v, ok := m[key]
			if !ok {
				return nil
			}
			cur = v
		case Row:
			v, ok := m[key]
			if !ok {
				return nil
			}
			cur = v
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// stringify converts a resolved value to its cell text. nil becomes "".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return FormatDate(&t)
	case *time.Time:
		return FormatDate(t)
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return t.String()
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
