package services

import (
	"errors"
	"fmt"
)

var ErrJobDescriptionRequired = errors.New("job_description is required")

// DocumentParseError reports an upload that could not be read as a PDF.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("Error reading PDF: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Err
}

// GenerationError reports any failure of the generation call: auth, quota,
// timeout or an unusable response.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Error generating analysis: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
