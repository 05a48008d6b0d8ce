package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zkcostlab/zkcost/internal/gascost"
	"github.com/zkcostlab/zkcost/internal/report"
	"github.com/zkcostlab/zkcost/internal/service"
)

type GasOptions struct {
	GlobalOptions

	NumProofs    int
	GasPerProof  int
	GasPriceGwei float64
	EthPriceUsd  float64
}

func DefaultGasOptions() *GasOptions {
	return &GasOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGas() *cobra.Command {
	o := DefaultGasOptions()
	cmd := &cobra.Command{
		Use:   "gas",
		Short: "Estimate the on-chain cost of verifying a batch of proofs.",
		Args:  cobra.NoArgs,
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
	for _, flag := range []string{"num-proofs", "gas-per-proof", "gas-price-gwei", "eth-price-usd"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}

func (o *GasOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.IntVar(&o.NumProofs, "num-proofs", o.NumProofs, "Number of proofs to verify on-chain.")
	fs.IntVar(&o.GasPerProof, "gas-per-proof", o.GasPerProof, "Gas cost of verifying a single proof.")
	fs.Float64Var(&o.GasPriceGwei, "gas-price-gwei", o.GasPriceGwei, "Gas price in gwei.")
	fs.Float64Var(&o.EthPriceUsd, "eth-price-usd", o.EthPriceUsd, "ETH price in USD.")
}

func (o *GasOptions) Validate(args []string) error {
	return o.GlobalOptions.Validate(args)
}

func (o *GasOptions) Run(args []string) error {
	svc := service.NewEstimatorService()

	res, err := svc.EstimateGas(gascost.Request{
		NumProofs:    o.NumProofs,
		GasPerProof:  o.GasPerProof,
		GasPriceGwei: o.GasPriceGwei,
		EthPriceUsd:  o.EthPriceUsd,
	})
	if err != nil {
		return err
	}

	out, err := report.NewService().Render(o.Format(), &report.ReportData{Gas: &res})
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
