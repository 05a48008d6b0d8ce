package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zkcostlab/zkcost/pkg/version"
)

func NewCmdVersion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print zkcost version information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("zkcost version: %s\n", version.Get().String())
			return nil
		},
	}
	return cmd
}
