package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/zkcostlab/zkcost/internal/report"
)

type GlobalOptions struct {
	Output string

	legalOutputTypes []string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Output:           string(report.ReportFormatText),
		legalOutputTypes: report.NewService().Formats(),
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(o.legalOutputTypes, ", ")))
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if !funk.Contains(o.legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(o.legalOutputTypes, ", "))
	}
	return nil
}

func (o *GlobalOptions) Format() report.ReportFormat {
	return report.ReportFormat(o.Output)
}
