package mchxclean

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkbook indicates the input bytes are not a readable xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// QuantityError indicates a refrigerant-quantity cell holding text that is
// neither an integer nor an integer with a trailing "GM" marker.
type QuantityError struct {
	Sheet string
	Cell  string
	Raw   string
	Err   error
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("malformed refrigerant quantity %q in sheet %q (%s): %v", e.Raw, e.Sheet, e.Cell, e.Err)
}

func (e *QuantityError) Unwrap() error {
	return e.Err
}

// EmitError indicates serialization of the output workbook failed.
type EmitError struct {
	Err error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit consolidated workbook: %v", e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}
