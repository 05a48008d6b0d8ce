package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcostlab/zkcost/internal/config"
	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/report"
	"github.com/zkcostlab/zkcost/internal/service"
)

type SweepOptions struct {
	GlobalOptions

	System        string
	BatchSize     int
	SecurityBits  int
	HardwareScale float64
	Steps         int
	OutFile       string

	txStart int
	txEnd   int
}

func DefaultSweepOptions(cfg *config.Config) *SweepOptions {
	o := &SweepOptions{
		GlobalOptions: DefaultGlobalOptions(),
		System:        cfg.DefaultSystem,
		BatchSize:     cfg.DefaultBatchSize,
		SecurityBits:  cfg.DefaultSecurityBits,
		HardwareScale: cfg.DefaultHardwareScale,
		Steps:         10,
	}
	o.legalOutputTypes = append(o.legalOutputTypes, string(report.ReportFormatXLSX))
	return o
}

func NewCmdSweep(cfg *config.Config) *cobra.Command {
	o := DefaultSweepOptions(cfg)
	cmd := &cobra.Command{
		Use:   "sweep TX_START TX_END",
		Short: "Estimate a range of transaction volumes in one run.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SweepOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.System, "system", "s", o.System, fmt.Sprintf("Proving system profile. One of: (%s).", strings.Join(estimation.SystemKeys(), ", ")))
	fs.IntVarP(&o.BatchSize, "batch-size", "b", o.BatchSize, "Transactions per proof/batch.")
	fs.IntVar(&o.SecurityBits, "security-bits", o.SecurityBits, "Security level in bits (128, 192 or 256).")
	fs.Float64Var(&o.HardwareScale, "hardware-scale", o.HardwareScale, "Relative hardware capability; >1 for better hardware.")
	fs.IntVar(&o.Steps, "steps", o.Steps, "Number of evenly spaced volumes to estimate.")
	fs.StringVar(&o.OutFile, "out", o.OutFile, "Destination file for xlsx output.")
}

func (o *SweepOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	start, err := parseTxCount(args[0])
	if err != nil {
		return err
	}
	end, err := parseTxCount(args[1])
	if err != nil {
		return err
	}
	o.txStart, o.txEnd = start, end
	return nil
}

func (o *SweepOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if o.txStart > o.txEnd {
		return fmt.Errorf("sweep start %d is above end %d", o.txStart, o.txEnd)
	}
	if o.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", o.Steps)
	}
	if o.Format() == report.ReportFormatXLSX && o.OutFile == "" {
		return fmt.Errorf("xlsx output requires --out")
	}
	return nil
}

func (o *SweepOptions) Run(args []string) error {
	svc := service.NewEstimatorService()

	results := make([]estimation.Result, 0, o.Steps)
	for _, txCount := range sweepVolumes(o.txStart, o.txEnd, o.Steps) {
		res, err := svc.Evaluate(estimation.Request{
			TxCount:       txCount,
			SystemKey:     o.System,
			BatchSize:     o.BatchSize,
			SecurityBits:  o.SecurityBits,
			HardwareScale: o.HardwareScale,
		})
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	reports := report.NewService()
	data := &report.ReportData{Sweep: results}

	if o.Format() == report.ReportFormatXLSX {
		if err := reports.WriteFile(report.ReportFormatXLSX, data, o.OutFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %d estimates to %s\n", len(results), o.OutFile)
		return nil
	}

	out, err := reports.Render(o.Format(), data)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// sweepVolumes returns steps evenly spaced volumes from start to end
// inclusive, deduplicated when the range is narrower than the step count.
func sweepVolumes(start, end, steps int) []int {
	if steps == 1 || start == end {
		return []int{start}
	}

	out := make([]int, 0, steps)
	prev := 0
	for i := 0; i < steps; i++ {
		tx := start + (end-start)*i/(steps-1)
		if len(out) > 0 && tx == prev {
			continue
		}
		out = append(out, tx)
		prev = tx
	}
	return out
}
