package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// CSVContentType is the MIME type used for every CSV download.
const CSVContentType = "text/csv;charset=utf-8"

// MaxFileSize is the default read limit for ReadCSVFile (10MB).
var MaxFileSize int64 = 10 * 1024 * 1024

var (
	// ErrNoTemplate is returned when a template download names an unknown template.
	ErrNoTemplate = errors.New("no template available")

	// ErrNoFile is returned when ReadCSVFile is given no file.
	ErrNoFile = errors.New("no file provided")

	// ErrNotCSV is returned when the file name does not end in .csv.
	ErrNotCSV = errors.New("please select a valid CSV file")

	// ErrFileTooLarge is returned when the file exceeds the read limit.
	ErrFileTooLarge = errors.New("file too large")
)

// TemplateCSV renders the downloadable import template for name: the
// header row followed by the example rows.
// Returns ErrNoTemplate for an unknown name.
func TemplateCSV(name string) (filename, content string, err error) {
	tpl, ok := Get(name)
	if !ok {
		return "", "", fmt.Errorf("%w for role: %s", ErrNoTemplate, name)
	}

	records := make([]Record, len(tpl.Example))
	for i, ex := range tpl.Example {
		rec := make(Record, len(tpl.Headers))
		for j, h := range tpl.Headers {
			rec[h] = ex[j]
		}
		records[i] = rec
	}

	return name + "_import_template.csv", GenerateCSV(records, tpl.Headers), nil
}

// DownloadFileName returns the file name for a CSV download of base.
func DownloadFileName(base string) string {
	return base + ".csv"
}

// ReadCSVFile reads the full text of an uploaded CSV file.
// The reader must be non-nil and name must end in ".csv". At most limit
// bytes are accepted; a limit <= 0 uses MaxFileSize. A leading byte order
// mark is dropped and invalid UTF-8 is replaced.
func ReadCSVFile(ctx context.Context, name string, r io.Reader, limit int64) (string, error) {
	if r == nil {
		return "", ErrNoFile
	}
	if !strings.HasSuffix(name, ".csv") {
		return "", fmt.Errorf("%w: %q", ErrNotCSV, name)
	}
	if limit <= 0 {
		limit = MaxFileSize
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(skipBOM(r), limit+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, name, limit)
	}

	return string(sanitizeUTF8(data)), nil
}
