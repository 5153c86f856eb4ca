package bluebook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates the workbook contains no worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ExtractionError represents an error while loading a workbook sheet.
type ExtractionError struct {
	Path      string
	SheetName string
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error in %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q: %v", e.Path, e.SheetName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, sheetName string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}
