// Package xlsx encodes sheets as Office Open XML workbooks.
package xlsx

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
)

const defaultSheet = "Sheet1"

var _ ports.SheetEncoder = (*Encoder)(nil)

// Encoder writes a single-sheet workbook.
type Encoder struct {
	// LinkColumn is the header name whose cells become hyperlinks. Empty disables it.
	LinkColumn string
}

// New creates an Encoder that hyperlinks the "link" column.
func New() *Encoder {
	return &Encoder{LinkColumn: "link"}
}

// Format reports xlsx.
func (e *Encoder) Format() model.Format {
	return model.FormatXLSX
}

// Encode renders sheet into workbook bytes.
func (e *Encoder) Encode(ctx context.Context, sheet model.Sheet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = defaultSheet
	}
	if name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return nil, e.fail(fmt.Errorf("name sheet %q: %w", name, err))
		}
	}

	if err := e.writeHeader(f, name, sheet.Header); err != nil {
		return nil, e.fail(err)
	}

	linkCol := e.linkColumnIndex(sheet.Header)
	for i, row := range sheet.Rows {
		if err := e.writeRow(f, name, i+2, row, linkCol); err != nil {
			return nil, e.fail(err)
		}
	}

	if len(sheet.Header) > 0 {
		last, err := excelize.ColumnNumberToName(len(sheet.Header))
		if err != nil {
			return nil, e.fail(err)
		}
		if err := f.SetColWidth(name, "A", last, 28); err != nil {
			return nil, e.fail(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, e.fail(fmt.Errorf("write workbook: %w", err))
	}
	return buf.Bytes(), nil
}

func (e *Encoder) writeHeader(f *excelize.File, sheet string, header []string) error {
	if len(header) == 0 {
		return nil
	}
	if err := checkCells(1, header); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", toCells(header)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func (e *Encoder) writeRow(f *excelize.File, sheet string, rowNum int, row []string, linkCol int) error {
	if err := checkCells(rowNum, row); err != nil {
		return err
	}

	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, toCells(row)); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}

	if linkCol < 0 || linkCol >= len(row) || row[linkCol] == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(linkCol+1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetCellHyperLink(sheet, cell, row[linkCol], "External"); err != nil {
		return fmt.Errorf("link row %d: %w", rowNum, err)
	}
	return nil
}

// excelize truncates oversized cells and replaces characters XML cannot hold,
// so both are refused rather than exported altered.
func checkCells(rowNum int, values []string) error {
	for i, v := range values {
		if utf8.RuneCountInString(v) > excelize.TotalCellChars {
			return fmt.Errorf("row %d column %d exceeds %d characters", rowNum, i+1, excelize.TotalCellChars)
		}
		if err := model.CheckText(v); err != nil {
			return fmt.Errorf("row %d column %d: %w", rowNum, i+1, err)
		}
	}
	return nil
}

func (e *Encoder) linkColumnIndex(header []string) int {
	if e.LinkColumn == "" {
		return -1
	}
	for i, h := range header {
		if h == e.LinkColumn {
			return i
		}
	}
	return -1
}

func (e *Encoder) fail(err error) error {
	return &model.SerializationError{Format: model.FormatXLSX, Err: err}
}

func toCells(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}
