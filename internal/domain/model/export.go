package model

import (
	"fmt"
	"strings"
)

// Format identifies a spreadsheet container.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat resolves a format name, defaulting to xlsx when empty.
func ParseFormat(val string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(val))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, val)
	}
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type of the container.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

// Sheet is a single named table with a header row.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ExportFile is an encoded spreadsheet ready to be handed to the user.
type ExportFile struct {
	Filename    string
	Format      Format
	ContentType string
	Rows        int
	Data        []byte
}
