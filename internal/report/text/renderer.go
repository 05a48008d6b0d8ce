// Package text renders reports as human-readable labeled lines.
package text

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/gascost"
	"github.com/zkcostlab/zkcost/internal/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatText
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	switch {
	case data.Estimate != nil:
		return r.renderEstimate(data.Estimate), nil
	case data.Comparison != nil:
		return r.renderComparison(data.Comparison), nil
	case data.Gas != nil:
		return r.renderGas(data.Gas), nil
	case data.Sweep != nil:
		return r.renderSweep(data.Sweep), nil
	default:
		return "", fmt.Errorf("report data has no payload")
	}
}

func (r *Renderer) renderEstimate(res *estimation.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "System        : %s (%s)\n", res.SystemName, res.System)
	fmt.Fprintf(&b, "Family        : %s\n", res.Family)
	fmt.Fprintf(&b, "Description   : %s\n", res.Description)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Transactions  : %d\n", res.TxCount)
	fmt.Fprintf(&b, "Batch size    : %d\n", res.BatchSize)
	fmt.Fprintf(&b, "Batches       : %d\n", res.Batches)
	fmt.Fprintf(&b, "Security bits : %d\n", res.SecurityBits)
	fmt.Fprintf(&b, "Hardware x    : %g\n", res.HardwareScale)
	fmt.Fprintf(&b, "Volume factor : %.4f\n", res.VolumeFactor)
	b.WriteString("\n")
	b.WriteString("Per-proof estimate:\n")
	fmt.Fprintf(&b, "  Time        : %.3f ms\n", res.PerProofMs)
	fmt.Fprintf(&b, "  Cost        : $%.6f\n", res.PerProofUsd)
	b.WriteString("\n")
	b.WriteString("Per-transaction estimate:\n")
	fmt.Fprintf(&b, "  Time        : %.5f ms/tx\n", res.PerTxMs)
	fmt.Fprintf(&b, "  Cost        : $%.8f per tx\n", res.PerTxUsd)
	b.WriteString("\n")
	b.WriteString("Total estimate:\n")
	fmt.Fprintf(&b, "  Time        : %.3f ms\n", res.TotalMs)
	fmt.Fprintf(&b, "  Cost        : $%.6f\n", res.TotalUsd)

	return b.String()
}

func (r *Renderer) renderComparison(cmp *estimation.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Baseline      : %s\n\n", cmp.Baseline)

	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tTOTAL MS\tTOTAL USD\tVS BASELINE")
	for _, d := range cmp.Deltas {
		res := cmp.Results[d.System]
		fmt.Fprintf(w, "%s\t%.3f\t%.6f\t%s\n", d.System, res.TotalMs, res.TotalUsd, d.Verdict)
	}
	_ = w.Flush()

	fmt.Fprintf(&b, "\nCheapest      : %s\n", cmp.Cheapest)
	fmt.Fprintf(&b, "Fastest       : %s\n", cmp.Fastest)

	return b.String()
}

func (r *Renderer) renderGas(res *gascost.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of proofs : %d\n", res.NumProofs)
	fmt.Fprintf(&b, "Gas per proof    : %d gas\n", res.GasPerProof)
	fmt.Fprintf(&b, "Total gas        : %d gas\n", res.TotalGas)
	fmt.Fprintf(&b, "Gas price        : %.3f gwei\n", res.GasPriceGwei)
	fmt.Fprintf(&b, "ETH price        : $%.2f / ETH\n", res.EthPriceUsd)
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total cost (ETH) : %.6f ETH\n", res.TotalEth)
	fmt.Fprintf(&b, "Total cost (USD) : $%.2f\n", res.TotalUsd)
	if res.Warning != "" {
		fmt.Fprintf(&b, "\nWARNING: %s\n", res.Warning)
	}

	return b.String()
}

func (r *Renderer) renderSweep(sweep []estimation.Result) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TX COUNT\tBATCHES\tVOLUME FACTOR\tPER-PROOF MS\tTOTAL MS\tTOTAL USD")
	for _, res := range sweep {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.3f\t%.3f\t%.6f\n",
			res.TxCount, res.Batches, res.VolumeFactor, res.PerProofMs, res.TotalMs, res.TotalUsd)
	}
	_ = w.Flush()

	return b.String()
}
