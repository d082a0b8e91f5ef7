package mchxclean

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hvaclab/mchxclean/pkg/mchxclean/models"
)

// ProgressEvent reports consolidation progress for UI display.
type ProgressEvent struct {
	Percent int
	Sheet   string
	Stage   string
}

// ProgressFunc receives progress events. Implementations must not block.
type ProgressFunc func(ProgressEvent)

// ExtractSheet reads the mapped coordinates of one worksheet into a Record.
// Cell values arrive resolved (formulas as their last computed result).
// A blank cell yields a nil value, not an error.
func ExtractSheet(f *excelize.File, sheet string, fm FieldMap) (models.Record, error) {
	rec := make(models.Record, len(fm))
	for _, fld := range fm {
		cell, err := excelize.CoordinatesToCellName(fld.Col, fld.Row)
		if err != nil {
			return nil, err
		}
		raw, isText, err := readCell(f, sheet, cell)
		if err != nil {
			return nil, err
		}
		if fld.Label == QuantityField {
			v, err := normalizeQuantity(sheet, cell, raw, isText)
			if err != nil {
				return nil, err
			}
			rec[fld.Label] = v
			continue
		}
		rec[fld.Label] = cellValue(raw, isText)
	}
	return rec, nil
}

// Consolidate extracts every worksheet of f into one table sharing the field
// map's schema. Worksheets are visited in workbook order; progress is
// reported after each one. A workbook with no sheets yields an empty table
// with the schema still defined.
func Consolidate(f *excelize.File, fm FieldMap, progress ProgressFunc) (*models.Table, error) {
	table := &models.Table{Fields: fm.Labels()}
	sheets := f.GetSheetList()
	for i, sheet := range sheets {
		rec, err := ExtractSheet(f, sheet, fm)
		if err != nil {
			return nil, err
		}
		table.Records = append(table.Records, rec)
		reportProgress(progress, (i+1)*100/len(sheets), sheet, "extracting")
	}
	return table, nil
}

func reportProgress(progress ProgressFunc, percent int, sheet, stage string) {
	if progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	progress(ProgressEvent{
		Percent: percent,
		Sheet:   sheet,
		Stage:   stage,
	})
}

// readCell returns a cell's resolved value and whether the cell holds text.
func readCell(f *excelize.File, sheet, cell string) (raw string, isText bool, err error) {
	raw, err = f.GetCellValue(sheet, cell)
	if err != nil {
		return "", false, err
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return "", false, err
	}
	return raw, isTextCell(typ, raw), nil
}

// isTextCell reports whether a cell holds text. Shared and inline strings
// always do; a formula cell's cached result can be either kind, so it is
// decided by the resolved value's form. Every other type is non-text.
func isTextCell(typ excelize.CellType, raw string) bool {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return true
	case excelize.CellTypeFormula:
		_, err := strconv.ParseFloat(raw, 64)
		return err != nil
	default:
		return false
	}
}

// cellValue maps a resolved cell to its output value: text passes through
// unchanged, blank is nil, anything else parses to its numeric form.
func cellValue(raw string, isText bool) interface{} {
	if raw == "" {
		return nil
	}
	if isText {
		return raw
	}
	return parseValue(raw)
}

// parseValue maps a non-text cell's string form back to a typed value.
// Returns int64 for integers, float64 for decimals, nil for blank,
// or the original string.
func parseValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
