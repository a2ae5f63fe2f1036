// Package core provides the CSV import and export engine.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Template describes the columns expected for one kind of import file.
type Template struct {
	Name     string     `json:"name"`     // Registry key: "student", "attendance", ...
	Headers  []string   `json:"headers"`  // Ordered column names, matched case-insensitively
	Required []string   `json:"required"` // Subset of Headers that must be present and non-empty
	Example  [][]string `json:"example"`  // Example rows, positionally aligned with Headers
}

// Row is one parsed data row keyed by lower-cased header name.
type Row map[string]string

// Record is a generic record handed to the generator. Values may be
// nested Records or maps, resolved with dotted header paths.
type Record map[string]any

// ParseResult is the outcome of ParseCSV.
type ParseResult struct {
	Headers []string `json:"headers"`
	Data    []Row    `json:"data"`
	Errors  []string `json:"errors"`
}

// ValidationResult is the outcome of ValidateCSVFormat.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ImportStatus summarizes how an import ended.
type ImportStatus string

const (
	StatusValid    ImportStatus = "valid"
	StatusInvalid  ImportStatus = "invalid"
	StatusRejected ImportStatus = "rejected"
)

// ImportEntry is one row of import history.
type ImportEntry struct {
	ID        string        `json:"id"`
	Template  string        `json:"template"`
	FileName  string        `json:"fileName"`
	Status    ImportStatus  `json:"status"`
	Rows      int           `json:"rows"`
	Errors    int           `json:"errors"`
	Warnings  int           `json:"warnings"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}
