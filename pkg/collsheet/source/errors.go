// Package source provides grid readers for collection sheets.
package source

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials indicates no service-account credentials were configured.
var ErrMissingCredentials = errors.New("missing service account credentials")

// ErrMissingSpreadsheetID indicates no spreadsheet id was configured.
var ErrMissingSpreadsheetID = errors.New("missing spreadsheet id")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// APIError represents a non-success response from the Sheets API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sheets api returned status %d: %s", e.StatusCode, e.Body)
}
