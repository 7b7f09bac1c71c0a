// Package export serializes a screen's filtered set to a downloadable
// single-sheet spreadsheet. Bookkeeping fields (_id, createdAt, updatedAt,
// __v) are dropped and date fields are rendered DD/MM/YYYY.
package export

import (
	"bytes"
	"fmt"

	"github.com/auditdesk/backoffice-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// File is a rendered workbook ready to be offered as a download.
type File struct {
	Name    string
	Content *bytes.Buffer
}

// Sheet describes one worksheet of flat rows.
type Sheet struct {
	Name     string
	FileName string
	Headers  []string
	Rows     [][]any
}

// Workbook renders a sheet into an xlsx file. Exporting an empty set is a
// validation error and produces no file.
func Workbook(sheet Sheet) (*File, error) {
	if len(sheet.Rows) == 0 {
		return nil, apperror.NewValidationMessage("No data available to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	return &File{Name: sheet.FileName, Content: buf}, nil
}
