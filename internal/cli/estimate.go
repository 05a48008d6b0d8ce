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

type EstimateOptions struct {
	GlobalOptions

	System        string
	BatchSize     int
	SecurityBits  int
	HardwareScale float64

	txCount int
}

func DefaultEstimateOptions(cfg *config.Config) *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		System:        cfg.DefaultSystem,
		BatchSize:     cfg.DefaultBatchSize,
		SecurityBits:  cfg.DefaultSecurityBits,
		HardwareScale: cfg.DefaultHardwareScale,
	}
}

func NewCmdEstimate(cfg *config.Config) *cobra.Command {
	o := DefaultEstimateOptions(cfg)
	cmd := &cobra.Command{
		Use:   "estimate TX_COUNT",
		Short: "Estimate proving time and cost for a transaction volume.",
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

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.System, "system", "s", o.System, fmt.Sprintf("Proving system profile. One of: (%s).", strings.Join(estimation.SystemKeys(), ", ")))
	fs.IntVarP(&o.BatchSize, "batch-size", "b", o.BatchSize, "Transactions per proof/batch.")
	fs.IntVar(&o.SecurityBits, "security-bits", o.SecurityBits, "Security level in bits (128, 192 or 256).")
	fs.Float64Var(&o.HardwareScale, "hardware-scale", o.HardwareScale, "Relative hardware capability; >1 for better hardware.")
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}

	txCount, err := parseTxCount(args[0])
	if err != nil {
		return err
	}
	o.txCount = txCount
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *EstimateOptions) Run(args []string) error {
	svc := service.NewEstimatorService()

	res, err := svc.Evaluate(estimation.Request{
		TxCount:       o.txCount,
		SystemKey:     o.System,
		BatchSize:     o.BatchSize,
		SecurityBits:  o.SecurityBits,
		HardwareScale: o.HardwareScale,
	})
	if err != nil {
		return err
	}

	out, err := report.NewService().Render(o.Format(), &report.ReportData{Estimate: &res})
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
