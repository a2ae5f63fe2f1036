package core

// validation.go checks parsed CSV data against a registered template.
//
// Validation happens at two levels:
//  1. Header validation: required columns present, unknown columns flagged
//  2. Row validation: required values, email, dates and gender per row
//
// Every check runs; problems accumulate into one result. Errors make the
// result invalid, warnings never do. Row numbers are the data index plus
// two (header is row 1), matching what a spreadsheet shows when no rows
// were dropped during parsing.

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex matches the loose address shape accepted on import.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateFields are the lower-cased columns that must hold calendar dates.
var dateFields = []string{"dateofbirth", "joiningdate", "admissiondate"}

// validGenders lists the accepted gender values (lower-cased).
var validGenders = map[string]bool{"male": true, "female": true, "other": true}

// ValidateCSVFormat validates parsed headers and rows against the named template.
// An unknown template yields an invalid result rather than an error.
func ValidateCSVFormat(headers []string, data []Row, templateName string) ValidationResult {
	tpl, ok := Get(templateName)
	if !ok {
		return ValidationResult{
			Valid:    false,
			Errors:   []string{fmt.Sprintf("Invalid role: %s", templateName)},
			Warnings: []string{},
		}
	}

	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	present := headerSet(headers)

	var missing []string
	for _, req := range tpl.Required {
		if !present[strings.ToLower(req)] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors,
			"Missing required columns: "+strings.Join(missing, ", "))
	}

	known := headerSet(tpl.Headers)
	var unknown []string
	for _, h := range headers {
		if !known[strings.ToLower(strings.TrimSpace(h))] {
			unknown = append(unknown, h)
		}
	}
	if len(unknown) > 0 {
		result.Warnings = append(result.Warnings,
			"Unknown columns will be ignored: "+strings.Join(unknown, ", "))
	}

	for i, row := range data {
		result.Errors = append(result.Errors, validateRow(tpl, present, row, i+2)...)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// validateRow returns every problem found in one row.
// Required columns missing from the header are reported once by the
// caller, so they are not repeated per row.
func validateRow(tpl Template, present map[string]bool, row Row, rowNum int) []string {
	var errs []string

	for _, req := range tpl.Required {
		key := strings.ToLower(req)
		if !present[key] {
			continue
		}
		if strings.TrimSpace(row[key]) == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing required field '%s'", rowNum, req))
		}
	}

	if email := row["email"]; email != "" && !emailRegex.MatchString(email) {
		errs = append(errs, fmt.Sprintf("Row %d: Invalid email format '%s'", rowNum, email))
	}

	for _, field := range dateFields {
		if v := row[field]; v != "" && !IsValidDate(v) {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid date format for '%s'. Use YYYY-MM-DD", rowNum, field))
		}
	}

	if gender := row["gender"]; gender != "" && !validGenders[strings.ToLower(gender)] {
		errs = append(errs, fmt.Sprintf("Row %d: Invalid gender '%s'. Use male, female, or other", rowNum, gender))
	}

	return errs
}
