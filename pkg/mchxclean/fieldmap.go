// Package mchxclean consolidates MCHX (Charge-EEV) experimental results
// scattered across the worksheets of a single workbook into one clean table.
package mchxclean

// Field binds an output column label to a fixed worksheet coordinate.
type Field struct {
	// Label is the output column header.
	Label string
	// Row is the 1-based row index of the source cell.
	Row int
	// Col is the 1-based column index of the source cell.
	Col int
}

// FieldMap is an ordered list of extraction targets. The order defines the
// output column order; labels are unique. It is declared once and never
// mutated.
type FieldMap []Field

// QuantityField is the one field with a unit-suffix normalization rule:
// test engineers record the refrigerant charge as e.g. "1200GM".
const QuantityField = "Refrigerant Qty (g)"

// Labels returns the field labels in map order.
func (m FieldMap) Labels() []string {
	labels := make([]string, len(m))
	for i, f := range m {
		labels[i] = f.Label
	}
	return labels
}

// DefaultFieldMap returns the fixed layout of an MCHX result sheet.
// Coordinates are 1-based and identical on every sheet of a result workbook.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		{Label: QuantityField, Row: 16, Col: 2},
		{Label: "EEV", Row: 7, Col: 2},
		{Label: "Test Condition", Row: 2, Col: 2},
		{Label: "Comp RPM/Hz", Row: 4, Col: 2},
		{Label: "IDU RPM", Row: 5, Col: 2},
		{Label: "ODU RPM", Row: 6, Col: 2},
		{Label: "ID DBT", Row: 9, Col: 2},
		{Label: "ID WBT", Row: 10, Col: 2},
		{Label: "OD DBT", Row: 11, Col: 2},
		{Label: "OD WBT", Row: 12, Col: 2},
		{Label: "Suction Pressure (Bar)", Row: 19, Col: 2},
		{Label: "Cond In Pressure (Bar)", Row: 20, Col: 2},
		{Label: "Cond Out Pressure (Bar)", Row: 21, Col: 2},
		{Label: "Suction Sat T (°C)", Row: 19, Col: 5},
		{Label: "Cond in Sat T (°C)", Row: 20, Col: 5},
		{Label: "Cond out Sat T (°C)", Row: 21, Col: 5},
		{Label: "Temp Compressor in (°C)", Row: 23, Col: 2},
		{Label: "Temp Condenser in (°C)", Row: 24, Col: 2},
		{Label: "Temp Condenser out (°C)", Row: 25, Col: 2},
		{Label: "Temp Evaporator out (°C)", Row: 26, Col: 2},
		{Label: "SH (Evaporator) (°C)", Row: 23, Col: 5},
		{Label: "SH (Suction) (°C)", Row: 24, Col: 5},
		{Label: "SC (°C)", Row: 25, Col: 5},
		{Label: "Power Consumption (W)", Row: 29, Col: 2},
		{Label: "Enthalpy Evap In (kJ/kg)", Row: 31, Col: 2},
		{Label: "Enthalpy Evap Out (kJ/kg)", Row: 32, Col: 2},
		{Label: "∆H Evap (kJ/kg)", Row: 33, Col: 2},
		{Label: "Enthalpy Cond In (kJ/kg)", Row: 34, Col: 2},
		{Label: "Cond Enthalpy Out (kJ/kg)", Row: 35, Col: 2},
		{Label: "∆H Cond (kJ/kg)", Row: 36, Col: 2},
		{Label: "Mass Flow (kg/hr)", Row: 38, Col: 2},
		{Label: "Cooling Cap (W)", Row: 40, Col: 2},
		{Label: "Cooling Cap (Btu/hr)", Row: 40, Col: 4},
		{Label: "COP (W/W)", Row: 45, Col: 2},
	}
}
