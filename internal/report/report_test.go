package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/gascost"
	"github.com/zkcostlab/zkcost/internal/report"
)

func sampleEstimate(t *testing.T) estimation.Result {
	t.Helper()
	res, err := estimation.Estimate(estimation.Request{
		TxCount:       10000,
		SystemKey:     "aztec",
		BatchSize:     500,
		SecurityBits:  128,
		HardwareScale: 1.0,
	})
	require.NoError(t, err)
	return res
}

func TestRender_UnsupportedFormat(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	_, err := svc.Render("html", &report.ReportData{Estimate: &res})
	assert.Error(t, err)
}

func TestRender_EmptyData(t *testing.T) {
	svc := report.NewService()
	_, err := svc.Render(report.ReportFormatJSON, &report.ReportData{})
	assert.Error(t, err)
}

func TestRenderText_AllGroupsPresent(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	out, err := svc.Render(report.ReportFormatText, &report.ReportData{Estimate: &res})
	require.NoError(t, err)

	for _, label := range []string{
		"System", "Family", "Description",
		"Transactions", "Batch size", "Batches", "Security bits", "Hardware x", "Volume factor",
		"Per-proof estimate", "Per-transaction estimate", "Total estimate",
	} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "aztec")
}

func TestRenderJSON_FieldNames(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	out, err := svc.Render(report.ReportFormatJSON, &report.ReportData{Estimate: &res})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	for _, field := range []string{
		"system", "systemName", "family", "securityBits",
		"txCount", "batchSize", "batches",
		"perProofMs", "perProofUsd",
		"totalMs", "totalUsd",
		"perTxMs", "perTxUsd",
		"volumeFactor",
	} {
		assert.Contains(t, decoded, field)
	}
	assert.Equal(t, "aztec", decoded["system"])
	assert.Equal(t, float64(10000), decoded["txCount"])
	assert.Equal(t, float64(20), decoded["batches"])
}

func TestRenderYAML_Estimate(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	out, err := svc.Render(report.ReportFormatYAML, &report.ReportData{Estimate: &res})
	require.NoError(t, err)

	assert.Contains(t, out, "system: aztec")
	assert.Contains(t, out, "txCount: 10000")
	assert.Contains(t, out, "batches: 20")
}

func TestRenderCSV_Sweep(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	out, err := svc.Render(report.ReportFormatCSV, &report.ReportData{
		Sweep: []estimation.Result{res, res},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "system,securityBits,txCount"))
	assert.True(t, strings.HasPrefix(lines[1], "aztec,128,10000"))
}

func TestRenderCSV_Comparison(t *testing.T) {
	svc := report.NewService()

	engine := estimation.NewEngine()
	for _, key := range estimation.SystemKeys() {
		engine.Register(key)
	}
	results, err := engine.Run(estimation.Request{
		TxCount:       10000,
		SystemKey:     "aztec",
		BatchSize:     500,
		SecurityBits:  128,
		HardwareScale: 1.0,
	})
	require.NoError(t, err)
	cmp, err := estimation.Compare(results, "aztec")
	require.NoError(t, err)

	out, err := svc.Render(report.ReportFormatCSV, &report.ReportData{Comparison: &cmp})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "verdict")
}

func TestRenderText_Gas(t *testing.T) {
	svc := report.NewService()

	res, err := gascost.Estimate(gascost.Request{
		NumProofs:    1000,
		GasPerProof:  250_000,
		GasPriceGwei: 30,
		EthPriceUsd:  3200,
	})
	require.NoError(t, err)

	out, err := svc.Render(report.ReportFormatText, &report.ReportData{Gas: &res})
	require.NoError(t, err)

	assert.Contains(t, out, "Total gas")
	assert.Contains(t, out, "250000000")
	assert.Contains(t, out, "7.500000 ETH")
	assert.Contains(t, out, "$24000.00")
}

func TestWriteFile_Xlsx(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	path := filepath.Join(t.TempDir(), "sweep.xlsx")
	err := svc.WriteFile(report.ReportFormatXLSX, &report.ReportData{
		Sweep: []estimation.Result{res},
	}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteFile_RejectsTextFormats(t *testing.T) {
	svc := report.NewService()
	res := sampleEstimate(t)

	err := svc.WriteFile(report.ReportFormatCSV, &report.ReportData{Estimate: &res}, "out.csv")
	assert.Error(t, err)
}
