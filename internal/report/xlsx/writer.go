// Package xlsx writes sweep reports as Excel workbooks.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/report/types"
)

const sheetName = "Estimates"

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

// WriteFile writes the estimate rows of data to an xlsx workbook at path.
// Only estimate-shaped payloads (single estimate or sweep) are supported.
func (w *Writer) WriteFile(data *types.ReportData, path string) error {
	var results []estimation.Result
	switch {
	case data.Sweep != nil:
		results = data.Sweep
	case data.Estimate != nil:
		results = []estimation.Result{*data.Estimate}
	default:
		return fmt.Errorf("xlsx output supports estimate and sweep payloads only")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	header := []any{
		"System", "Security bits", "Transactions", "Batch size", "Batches",
		"Hardware scale", "Volume factor",
		"Per-proof ms", "Per-proof USD", "Total ms", "Total USD", "Per-tx ms", "Per-tx USD",
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, res := range results {
		row := []any{
			res.System, res.SecurityBits, res.TxCount, res.BatchSize, res.Batches,
			res.HardwareScale, res.VolumeFactor,
			res.PerProofMs, res.PerProofUsd, res.TotalMs, res.TotalUsd, res.PerTxMs, res.PerTxUsd,
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("setting cell %s: %w", cell, err)
		}
	}
	return nil
}
