package core

// encoding.go normalizes uploaded bytes before parsing.
//
// Spreadsheet programs on Windows prefix CSV exports with a UTF-8 byte
// order mark, which would otherwise end up glued to the first header.
// Files saved in a legacy code page can also contain bytes that are not
// valid UTF-8; those are replaced so every later step works on valid text.

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// invalidUTF8Replacement replaces each run of invalid bytes.
const invalidUTF8Replacement = "\uFFFD"

// skipBOM returns a reader that drops a leading UTF-8 BOM from r.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// sanitizeUTF8 returns data with invalid UTF-8 sequences replaced.
// Valid input is returned unchanged.
func sanitizeUTF8(data []byte) []byte {
	for _, b := range data {
		if b >= 0x80 {
			return bytes.ToValidUTF8(data, []byte(invalidUTF8Replacement))
		}
	}
	return data
}
