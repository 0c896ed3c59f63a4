package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog means there is nothing to sample from.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrInvalidSampleSize is returned for non-positive sample sizes.
	ErrInvalidSampleSize = errors.New("sample size must be positive")
	// ErrUnsupportedFormat is returned for unknown spreadsheet formats.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// SerializationError reports that a sheet could not be encoded.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("encode %s sheet: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// NewSerializationError wraps err unless it already is a SerializationError.
func NewSerializationError(format Format, err error) error {
	var serr *SerializationError
	if errors.As(err, &serr) {
		return err
	}
	return &SerializationError{Format: format, Err: err}
}
