package mchxclean

import (
	"strconv"
	"strings"
)

// quantitySuffix is the unit marker test engineers append to the refrigerant
// charge. The match is exact and case-sensitive.
const quantitySuffix = "GM"

// normalizeQuantity applies the refrigerant-quantity rule: a text cell may
// carry a trailing "GM" marker, which is stripped before integer parsing.
// Any other text that does not parse as an integer is a QuantityError.
// Non-text cells (numbers, blanks, booleans) pass through untouched.
// A formula cell whose cached result is text counts as text here.
func normalizeQuantity(sheet, cell, raw string, isText bool) (interface{}, error) {
	if !isText {
		return parseValue(raw), nil
	}
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(raw, quantitySuffix))
	if err != nil {
		return nil, &QuantityError{Sheet: sheet, Cell: cell, Raw: raw, Err: err}
	}
	return int64(n), nil
}
