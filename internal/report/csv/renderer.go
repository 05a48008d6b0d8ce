// Package csv renders reports as CSV tables.
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	var rows [][]string

	switch {
	case data.Estimate != nil:
		rows = estimateRows([]estimation.Result{*data.Estimate})
	case data.Sweep != nil:
		rows = estimateRows(data.Sweep)
	case data.Comparison != nil:
		rows = comparisonRows(data.Comparison)
	case data.Gas != nil:
		rows = gasRows(data)
	default:
		return "", fmt.Errorf("report data has no payload")
	}

	return convertRowsToCSV(rows)
}

// EstimateHeader is the column order shared by single-estimate and sweep CSV
// output.
var EstimateHeader = []string{
	"system", "securityBits", "txCount", "batchSize", "batches",
	"hardwareScale", "volumeFactor",
	"perProofMs", "perProofUsd", "totalMs", "totalUsd", "perTxMs", "perTxUsd",
}

func estimateRows(results []estimation.Result) [][]string {
	rows := [][]string{EstimateHeader}
	for _, res := range results {
		rows = append(rows, []string{
			res.System,
			fmt.Sprintf("%d", res.SecurityBits),
			fmt.Sprintf("%d", res.TxCount),
			fmt.Sprintf("%d", res.BatchSize),
			fmt.Sprintf("%d", res.Batches),
			fmt.Sprintf("%g", res.HardwareScale),
			fmt.Sprintf("%.4f", res.VolumeFactor),
			fmt.Sprintf("%.3f", res.PerProofMs),
			fmt.Sprintf("%.6f", res.PerProofUsd),
			fmt.Sprintf("%.3f", res.TotalMs),
			fmt.Sprintf("%.6f", res.TotalUsd),
			fmt.Sprintf("%.5f", res.PerTxMs),
			fmt.Sprintf("%.8f", res.PerTxUsd),
		})
	}
	return rows
}

func comparisonRows(cmp *estimation.Comparison) [][]string {
	rows := [][]string{{"system", "totalMs", "totalUsd", "totalMsDelta", "totalUsdDelta", "verdict"}}
	for _, d := range cmp.Deltas {
		res := cmp.Results[d.System]
		rows = append(rows, []string{
			d.System,
			fmt.Sprintf("%.3f", res.TotalMs),
			fmt.Sprintf("%.6f", res.TotalUsd),
			fmt.Sprintf("%.3f", d.TotalMsDelta),
			fmt.Sprintf("%.6f", d.TotalUsdDelta),
			d.Verdict,
		})
	}
	return rows
}

func gasRows(data *types.ReportData) [][]string {
	res := data.Gas
	return [][]string{
		{"numProofs", "gasPerProof", "totalGas", "gasPriceGwei", "ethPriceUsd", "totalEth", "totalUsd"},
		{
			fmt.Sprintf("%d", res.NumProofs),
			fmt.Sprintf("%d", res.GasPerProof),
			fmt.Sprintf("%d", res.TotalGas),
			fmt.Sprintf("%.3f", res.GasPriceGwei),
			fmt.Sprintf("%.2f", res.EthPriceUsd),
			fmt.Sprintf("%.6f", res.TotalEth),
			fmt.Sprintf("%.2f", res.TotalUsd),
		},
	}
}

func convertRowsToCSV(rows [][]string) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write CSV rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
