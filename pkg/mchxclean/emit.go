package mchxclean

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/hvaclab/mchxclean/pkg/mchxclean/models"
)

// OutputSheetName is the single sheet of the emitted workbook.
const OutputSheetName = "Consolidated Data"

// Emit writes the table into a new single-sheet workbook: row 1 holds the
// field labels in schema order, rows 2..N+1 hold one record each. Per-cell
// value types are preserved; no styling or formulas are written. The
// returned buffer is positioned for a full read from offset 0.
func Emit(table *models.Table) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OutputSheetName); err != nil {
		return nil, &EmitError{Err: err}
	}

	for col, label := range table.Fields {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, &EmitError{Err: err}
		}
		if err := f.SetCellValue(OutputSheetName, cell, label); err != nil {
			return nil, &EmitError{Err: err}
		}
	}

	for i := range table.Records {
		for col, v := range table.Row(i) {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, &EmitError{Err: err}
			}
			if err := f.SetCellValue(OutputSheetName, cell, v); err != nil {
				return nil, &EmitError{Err: err}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &EmitError{Err: err}
	}
	return buf, nil
}
