// Package core provides the CSV import and export engine.
//
// # Error Codes Reference
//
// This file maps technical errors to user-friendly messages with codes for
// support reference. Only hard failures travel as Go errors; data-quality
// problems (missing columns, bad emails, ...) are returned inside
// ParseResult and ValidationResult and never pass through here.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds maximum size limit
//	          Action: Split the file into smaller chunks
//	          Patterns: "file too large"
//
//	FILE002 - Not a CSV file: Only .csv files can be imported
//	          Action: Export the sheet as CSV and upload it again
//	          Patterns: "valid csv file"
//
//	FILE003 - No file: No file was selected
//	          Action: Please select a CSV file to upload
//	          Patterns: "no file provided"
//
//	FILE004 - Invalid form: The upload form could not be read
//	          Action: Upload the file using the "file" form field
//	          Patterns: "invalid form"
//
// # Template Errors (TPL001-TPL099)
//
//	TPL001 - Unknown template: No import template exists for this entity
//	         Action: Choose one of the listed templates
//	         Patterns: "no template available", "unknown template"
//
// # Import Errors (IMP001-IMP099)
//
//	IMP001 - System busy: Too many imports in progress
//	         Action: Please wait a moment and try again
//	         Patterns: "too many concurrent imports"
//
//	IMP002 - Request cancelled: Request was cancelled
//	         Action: Please try again
//	         Patterns: "context canceled"
//
//	IMP003 - Request timeout: Request timed out
//	         Action: Try a smaller file or check your connection
//	         Patterns: "context deadline exceeded"
//
//	IMP004 - History unavailable: Import history could not be stored or read
//	         Action: The import itself was processed; try again later
//	         Patterns: "import history"
//
// # Request Errors (VAL001-VAL099)
//
//	VAL001 - Invalid request: The request body is not valid
//	         Action: Check the request fields and try again
//	         Patterns: "invalid request"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Rate limited: Too many requests
//	          Action: Please wait a moment before trying again
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// File errors
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds maximum size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "valid csv file",
		msg: UserMessage{
			Message: "Only .csv files can be imported",
			Action:  "Export the sheet as CSV and upload it again",
			Code:    "FILE002",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select a CSV file to upload",
			Code:    "FILE003",
		},
	},
	{
		pattern: "invalid form",
		msg: UserMessage{
			Message: "The upload form could not be read",
			Action:  `Upload the file using the "file" form field`,
			Code:    "FILE004",
		},
	},

	// Template errors
	{
		pattern: "no template available",
		msg: UserMessage{
			Message: "No import template exists for this entity",
			Action:  "Choose one of the listed templates",
			Code:    "TPL001",
		},
	},
	{
		pattern: "unknown template",
		msg: UserMessage{
			Message: "No import template exists for this entity",
			Action:  "Choose one of the listed templates",
			Code:    "TPL001",
		},
	},

	// Import errors
	{
		pattern: "too many concurrent imports",
		msg: UserMessage{
			Message: "Too many imports in progress",
			Action:  "Please wait a moment and try again",
			Code:    "IMP001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "IMP002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "IMP003",
		},
	},
	{
		pattern: "import history",
		msg: UserMessage{
			Message: "Import history could not be stored or read",
			Action:  "The import itself was processed; try again later",
			Code:    "IMP004",
		},
	},

	// Request errors
	{
		pattern: "invalid request",
		msg: UserMessage{
			Message: "The request body is not valid",
			Action:  "Check the request fields and try again",
			Code:    "VAL001",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no specific pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than
// falling back to ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
