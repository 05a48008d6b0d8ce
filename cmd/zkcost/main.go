package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zkcostlab/zkcost/internal/cli"
	"github.com/zkcostlab/zkcost/internal/config"
	"github.com/zkcostlab/zkcost/pkg/log"
)

func main() {
	command, err := NewZkcostCommand()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewZkcostCommand() (*cobra.Command, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	logger := log.InitLog(log.ParseLevel(cfg.LogLevel))
	zap.ReplaceGlobals(logger)

	cmd := &cobra.Command{
		Use:   "zkcost [flags] [options]",
		Short: "zkcost estimates zk proving latency and cost offline.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	cmd.AddCommand(cli.NewCmdEstimate(cfg))
	cmd.AddCommand(cli.NewCmdCompare(cfg))
	cmd.AddCommand(cli.NewCmdSweep(cfg))
	cmd.AddCommand(cli.NewCmdGas())
	cmd.AddCommand(cli.NewCmdProfiles())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd, nil
}
