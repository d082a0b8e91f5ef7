// Package models defines data structures for consolidated experiment data.
package models

// Record holds the extracted values of one worksheet, keyed by field label.
// A nil value means the source cell was blank. Records are populated once
// and never mutated afterwards.
type Record map[string]interface{}

// Table is the consolidated dataset: a shared column schema plus one record
// per source worksheet, in workbook order.
type Table struct {
	// Fields is the column schema, in output order.
	Fields []string `json:"fields"`
	// Records holds one entry per source worksheet.
	Records []Record `json:"records"`
}

// Row returns record i as a positional value slice in schema order.
func (t *Table) Row(i int) []interface{} {
	row := make([]interface{}, len(t.Fields))
	for col, label := range t.Fields {
		row[col] = t.Records[i][label]
	}
	return row
}

// Preview returns up to n rows as positional value slices in schema order.
func (t *Table) Preview(n int) [][]interface{} {
	if n > len(t.Records) {
		n = len(t.Records)
	}
	rows := make([][]interface{}, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, t.Row(i))
	}
	return rows
}
