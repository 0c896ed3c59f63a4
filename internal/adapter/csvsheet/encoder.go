// Package csvsheet encodes sheets as RFC 4180 CSV.
package csvsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"unicode/utf8"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
)

var _ ports.SheetEncoder = (*Encoder)(nil)

// Encoder writes the header followed by every row. The sheet name is not representable in CSV.
type Encoder struct{}

// New creates a CSV Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Format reports csv.
func (e *Encoder) Format() model.Format {
	return model.FormatCSV
}

// Encode renders sheet as CSV bytes.
func (e *Encoder) Encode(ctx context.Context, sheet model.Sheet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if len(sheet.Header) > 0 {
		if err := e.write(writer, 1, sheet.Header); err != nil {
			return nil, err
		}
	}

	for i, row := range sheet.Rows {
		if err := e.write(writer, i+2, row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, &model.SerializationError{Format: model.FormatCSV, Err: err}
	}
	return buf.Bytes(), nil
}

func (e *Encoder) write(writer *csv.Writer, line int, record []string) error {
	for col, v := range record {
		if !utf8.ValidString(v) {
			return &model.SerializationError{
				Format: model.FormatCSV,
				Err:    fmt.Errorf("line %d column %d is not valid UTF-8", line, col+1),
			}
		}
	}
	if err := writer.Write(record); err != nil {
		return &model.SerializationError{Format: model.FormatCSV, Err: err}
	}
	return nil
}
