// Package tables registers the import templates with the core registry.
// Import this package for its side effects to make every template available.
package tables

// Each file in this package registers its templates from init():
//
//	users.go     - student, teacher, parent, staff
//	academics.go - attendance, examResults, homework, events
//	records.go   - fees, payroll, admissions, books
