// internal/output/xlsx.go
package output

import (
	"io"

	"github.com/xuri/excelize/v2"
	"microseq-core/pairing"
)

const (
	sheetReport   = "Report"
	sheetManifest = "Manifest"
)

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// WriteReportXLSX writes the pairing report and manifest as a two-sheet
// workbook, for labs that review runs in a spreadsheet.
func WriteReportXLSX(w io.Writer, rep *pairing.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetReport); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetManifest); err != nil {
		return err
	}

	if err := setRow(f, sheetReport, 1, []interface{}{
		"sample_id", "well", "status", "detail", "forward_files", "reverse_files", "other_files",
	}); err != nil {
		return err
	}
	row := 2
	for _, o := range rep.Outcomes {
		if err := setRow(f, sheetReport, row, []interface{}{
			o.Key, o.Well, "paired", o.Action,
			filesCSV(o.Forward), filesCSV(o.Reverse), filesCSV(o.Discarded),
		}); err != nil {
			return err
		}
		row++
	}
	for _, s := range rep.Skips {
		if err := setRow(f, sheetReport, row, []interface{}{
			s.SampleID, s.Well, "skipped", string(s.Reason),
			filesCSV(s.Forward), filesCSV(s.Reverse), filesCSV(s.Other),
		}); err != nil {
			return err
		}
		row++
	}

	if err := setRow(f, sheetManifest, 1, []interface{}{
		"sample", "well", "forward", "reverse", "action",
	}); err != nil {
		return err
	}
	for i, o := range rep.Outcomes {
		if err := setRow(f, sheetManifest, i+2, []interface{}{
			o.Key, o.Well, filesCSV(o.Forward), filesCSV(o.Reverse), o.Action,
		}); err != nil {
			return err
		}
	}

	return f.Write(w)
}
