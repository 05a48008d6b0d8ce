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

type CompareOptions struct {
	GlobalOptions

	Systems       string
	Baseline      string
	BatchSize     int
	SecurityBits  int
	HardwareScale float64

	txCount int
	systems []string
}

func DefaultCompareOptions(cfg *config.Config) *CompareOptions {
	return &CompareOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Systems:       strings.Join(estimation.SystemKeys(), ","),
		Baseline:      cfg.DefaultSystem,
		BatchSize:     cfg.DefaultBatchSize,
		SecurityBits:  cfg.DefaultSecurityBits,
		HardwareScale: cfg.DefaultHardwareScale,
	}
}

func NewCmdCompare(cfg *config.Config) *cobra.Command {
	o := DefaultCompareOptions(cfg)
	cmd := &cobra.Command{
		Use:   "compare TX_COUNT",
		Short: "Compare proving cost across systems for one scenario.",
		Args:  cobra.ExactArgs(1),
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

func (o *CompareOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Systems, "systems", o.Systems, "Comma-separated list of systems to compare.")
	fs.StringVar(&o.Baseline, "baseline", o.Baseline, "System the deltas are reported against.")
	fs.IntVarP(&o.BatchSize, "batch-size", "b", o.BatchSize, "Transactions per proof/batch.")
	fs.IntVar(&o.SecurityBits, "security-bits", o.SecurityBits, "Security level in bits (128, 192 or 256).")
	fs.Float64Var(&o.HardwareScale, "hardware-scale", o.HardwareScale, "Relative hardware capability; >1 for better hardware.")
}

func (o *CompareOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	txCount, err := parseTxCount(args[0])
	if err != nil {
		return err
	}
	o.txCount = txCount
	o.systems = splitSystems(o.Systems)
	return nil
}

func (o *CompareOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if len(o.systems) < 2 {
		return fmt.Errorf("compare needs at least two systems, got %d", len(o.systems))
	}
	for _, key := range o.systems {
		if key == o.Baseline {
			return nil
		}
	}
	return fmt.Errorf("baseline %s must be one of the compared systems", o.Baseline)
}

func (o *CompareOptions) Run(args []string) error {
	svc := service.NewEstimatorService()

	cmp, err := svc.CompareAll(estimation.Request{
		TxCount:       o.txCount,
		SystemKey:     o.Baseline,
		BatchSize:     o.BatchSize,
		SecurityBits:  o.SecurityBits,
		HardwareScale: o.HardwareScale,
	}, o.systems, o.Baseline)
	if err != nil {
		return err
	}

	out, err := report.NewService().Render(o.Format(), &report.ReportData{Comparison: &cmp})
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
