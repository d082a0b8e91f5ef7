package mchxclean

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hvaclab/mchxclean/pkg/mchxclean/models"
)

// OutputFilename is the suggested name for the emitted workbook.
const OutputFilename = "cleaned_experimental_data.xlsx"

// OutputMIMEType is the OOXML spreadsheet media type used for downloads.
const OutputMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// remediationHint accompanies every pipeline failure shown to the user.
const remediationHint = "Please ensure your file matches the expected format and try again."

// Result carries the consolidated table and the serialized output workbook.
type Result struct {
	Table    *models.Table
	Workbook *bytes.Buffer
}

// Clean runs the whole pipeline once: load the workbook from r, consolidate
// every worksheet, emit the cleaned workbook. Any failure aborts the run
// and discards all intermediate state; no partial result is ever returned.
func Clean(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	table, err := Consolidate(f, opts.fieldMap(), opts.Progress)
	if err != nil {
		return nil, err
	}

	buf, err := Emit(table)
	if err != nil {
		return nil, err
	}

	return &Result{Table: table, Workbook: buf}, nil
}

// UserMessage converts any pipeline failure into the single message and
// static remediation hint shown to the user. Internal error structures
// never cross this boundary.
func UserMessage(err error) (msg, hint string) {
	return fmt.Sprintf("Error processing file: %v", err), remediationHint
}
