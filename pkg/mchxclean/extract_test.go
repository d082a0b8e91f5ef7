package mchxclean

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

// testFieldMap is a reduced layout exercising the same rules as the full one.
func testFieldMap() FieldMap {
	return FieldMap{
		{Label: QuantityField, Row: 16, Col: 2},
		{Label: "EEV", Row: 7, Col: 2},
		{Label: "Test Condition", Row: 2, Col: 2},
	}
}

func TestExtractSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "B16", "1200GM")
	f.SetCellValue(sheet, "B7", 85)
	f.SetCellValue(sheet, "B2", "T1 Cooling")

	rec, err := ExtractSheet(f, sheet, testFieldMap())
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}

	if rec[QuantityField] != int64(1200) {
		t.Errorf("quantity = %v (type %T), want int64(1200)", rec[QuantityField], rec[QuantityField])
	}
	if rec["EEV"] != int64(85) {
		t.Errorf("EEV = %v (type %T), want int64(85)", rec["EEV"], rec["EEV"])
	}
	if rec["Test Condition"] != "T1 Cooling" {
		t.Errorf("Test Condition = %v, want %q", rec["Test Condition"], "T1 Cooling")
	}
}

func TestExtractSheetBlankCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// Only one mapped cell populated; the rest stay blank.
	f.SetCellValue("Sheet1", "B2", "T2 Heating")

	rec, err := ExtractSheet(f, "Sheet1", testFieldMap())
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}

	if rec[QuantityField] != nil {
		t.Errorf("blank quantity = %v, want nil", rec[QuantityField])
	}
	if rec["EEV"] != nil {
		t.Errorf("blank EEV = %v, want nil", rec["EEV"])
	}
	if rec["Test Condition"] != "T2 Heating" {
		t.Errorf("Test Condition = %v, want %q", rec["Test Condition"], "T2 Heating")
	}
}

func TestQuantityNormalization(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    interface{}
		wantErr bool
	}{
		{"suffix stripped", "1200GM", int64(1200), false},
		{"bare integer text", "1200", int64(1200), false},
		{"already numeric", 1200, int64(1200), false},
		{"numeric decimal passthrough", 1200.5, 1200.5, false},
		{"wrong suffix", "1200KG", nil, true},
		{"lowercase suffix", "1200gm", nil, true},
		{"decimal with suffix", "1200.5GM", nil, true},
		{"not a number", "full charge", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()
			if err := f.SetCellValue("Sheet1", "B16", tt.value); err != nil {
				t.Fatalf("SetCellValue failed: %v", err)
			}

			rec, err := ExtractSheet(f, "Sheet1", testFieldMap())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v, got record %v", tt.value, rec)
				}
				var qe *QuantityError
				if !errors.As(err, &qe) {
					t.Errorf("error = %v, want *QuantityError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractSheet failed: %v", err)
			}
			if rec[QuantityField] != tt.want {
				t.Errorf("quantity = %v (type %T), want %v (type %T)",
					rec[QuantityField], rec[QuantityField], tt.want, tt.want)
			}
		})
	}
}

func TestConsolidate(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []string{"Sheet1", "Run2", "Run3"}
	for _, sheet := range sheets[1:] {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
	}
	for i, sheet := range sheets {
		f.SetCellValue(sheet, "B16", "1200GM")
		f.SetCellValue(sheet, "B7", 80+i)
		f.SetCellValue(sheet, "B2", "T1")
	}

	var events []ProgressEvent
	table, err := Consolidate(f, testFieldMap(), func(p ProgressEvent) {
		events = append(events, p)
	})
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}

	if len(table.Records) != len(sheets) {
		t.Errorf("records = %d, want %d", len(table.Records), len(sheets))
	}
	if len(table.Fields) != 3 {
		t.Errorf("fields = %d, want 3", len(table.Fields))
	}
	// Worksheet order is preserved.
	for i := range sheets {
		if table.Records[i]["EEV"] != int64(80+i) {
			t.Errorf("record %d EEV = %v, want %d", i, table.Records[i]["EEV"], 80+i)
		}
	}
	// One progress event per sheet, ending at 100.
	if len(events) != len(sheets) {
		t.Fatalf("progress events = %d, want %d", len(events), len(sheets))
	}
	if events[len(events)-1].Percent != 100 {
		t.Errorf("final percent = %d, want 100", events[len(events)-1].Percent)
	}
	for i, ev := range events {
		if ev.Sheet != sheets[i] {
			t.Errorf("event %d sheet = %q, want %q", i, ev.Sheet, sheets[i])
		}
	}
}

func TestCellTyping(t *testing.T) {
	tests := []struct {
		name     string
		set      func(f *excelize.File) error
		expected interface{}
	}{
		{"integer cell", func(f *excelize.File) error {
			return f.SetCellValue("Sheet1", "B2", 123)
		}, int64(123)},
		{"decimal cell", func(f *excelize.File) error {
			return f.SetCellValue("Sheet1", "B2", 123.45)
		}, 123.45},
		{"negative cell", func(f *excelize.File) error {
			return f.SetCellValue("Sheet1", "B2", -100)
		}, int64(-100)},
		{"text cell", func(f *excelize.File) error {
			return f.SetCellStr("Sheet1", "B2", "T1 Cooling")
		}, "T1 Cooling"},
		// A text cell holding digits stays text.
		{"digits as text", func(f *excelize.File) error {
			return f.SetCellStr("Sheet1", "B2", "123")
		}, "123"},
		{"empty text cell", func(f *excelize.File) error {
			return f.SetCellStr("Sheet1", "B2", "")
		}, nil},
		{"untouched cell", func(f *excelize.File) error {
			return nil
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()
			if err := tt.set(f); err != nil {
				t.Fatalf("setting cell failed: %v", err)
			}

			rec, err := ExtractSheet(f, "Sheet1", testFieldMap())
			if err != nil {
				t.Fatalf("ExtractSheet failed: %v", err)
			}
			if got := rec["Test Condition"]; got != tt.expected {
				t.Errorf("value = %v (type: %T), expected %v (type: %T)",
					got, got, tt.expected, tt.expected)
			}
		})
	}
}

func TestIsTextCell(t *testing.T) {
	tests := []struct {
		name string
		typ  excelize.CellType
		raw  string
		want bool
	}{
		{"shared string", excelize.CellTypeSharedString, "1200GM", true},
		{"inline string", excelize.CellTypeInlineString, "abc", true},
		{"number", excelize.CellTypeNumber, "1200", false},
		{"unset", excelize.CellTypeUnset, "", false},
		{"bool", excelize.CellTypeBool, "TRUE", false},
		// A formula cell is text exactly when its cached result is.
		{"formula with numeric result", excelize.CellTypeFormula, "1200", false},
		{"formula with decimal result", excelize.CellTypeFormula, "1200.5", false},
		{"formula with text result", excelize.CellTypeFormula, "1200GM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTextCell(tt.typ, tt.raw); got != tt.want {
				t.Errorf("isTextCell(%v, %q) = %v, want %v", tt.typ, tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeQuantityFormulaResult(t *testing.T) {
	// A formula whose cached result is "1200GM" counts as text and gets
	// the suffix stripped; a numeric cached result passes through.
	isText := isTextCell(excelize.CellTypeFormula, "1200GM")
	v, err := normalizeQuantity("Sheet1", "B16", "1200GM", isText)
	if err != nil {
		t.Fatalf("normalizeQuantity failed: %v", err)
	}
	if v != int64(1200) {
		t.Errorf("quantity = %v (type %T), want int64(1200)", v, v)
	}

	isText = isTextCell(excelize.CellTypeFormula, "1250")
	v, err = normalizeQuantity("Sheet1", "B16", "1250", isText)
	if err != nil {
		t.Fatalf("normalizeQuantity failed: %v", err)
	}
	if v != int64(1250) {
		t.Errorf("quantity = %v (type %T), want int64(1250)", v, v)
	}
}
