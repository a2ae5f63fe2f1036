// Package core provides the CSV import and export engine.
//
// The package holds all domain logic independent of any UI or transport
// layer. The web server, the command line tool and tests use it the same
// way.
//
// # Pipeline
//
// An import flows through four pure steps:
//
//  1. [ReadCSVFile] reads the upload (size limit, BOM removal, UTF-8 repair)
//  2. [ParseCSV] splits the text into lower-cased headers and [Row] values
//  3. [ValidateCSVFormat] checks the rows against a registered [Template]
//  4. [TransformCSVToUserData] turns account rows into nested [User] records
//
// Exports run the other way through [TransformUserDataToCSV] and
// [GenerateCSV]. Quoting follows RFC 4180, so a generated file parses back
// to the same values.
//
// # Templates
//
// Templates are registered at init time using [Register], normally by
// importing the tables package for its side effects:
//
//	import _ "github.com/regression1607/meridian-frontend-sub000/internal/core/tables"
//
// # Error Handling
//
// Problems with the data itself never become Go errors. They are returned
// as strings in [ParseResult.Errors], [ValidationResult.Errors] and
// [ValidationResult.Warnings] so a caller can show every problem at once.
// Only misuse returns an error: an unknown template download
// ([ErrNoTemplate]) or an unreadable upload ([ErrNoFile], [ErrNotCSV],
// [ErrFileTooLarge]). [MapError] turns those into user-facing messages.
//
// # Service
//
// [Service] wraps the pipeline with an [ImportLimiter] and an [ImportLog]
// so concurrent uploads stay bounded and every import is recorded.
package core
