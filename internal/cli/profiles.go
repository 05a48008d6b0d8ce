package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/report"
)

type ProfilesOptions struct {
	GlobalOptions
}

func DefaultProfilesOptions() *ProfilesOptions {
	o := &ProfilesOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
	o.legalOutputTypes = []string{
		string(report.ReportFormatText),
		string(report.ReportFormatJSON),
		string(report.ReportFormatYAML),
	}
	return o
}

func NewCmdProfiles() *cobra.Command {
	o := DefaultProfilesOptions()
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Display the proving-system profile table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

func (o *ProfilesOptions) Run(args []string) error {
	profiles := estimation.Profiles()

	switch o.Format() {
	case report.ReportFormatJSON:
		out, err := json.MarshalIndent(profilesView(profiles), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case report.ReportFormatYAML:
		out, err := yaml.Marshal(profilesView(profiles))
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tFAMILY\tBASE MS\tBASE USD\t192-BIT\t256-BIT")
		for _, p := range profiles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.2f\tx%.2f\tx%.2f\n",
				p.Key, p.DisplayName, p.Family, p.BaseMsPerProof, p.BaseUsdPerProof,
				p.SecurityScaling[estimation.SecurityBits192],
				p.SecurityScaling[estimation.SecurityBits256])
		}
		return w.Flush()
	}
	return nil
}

type profileEntry struct {
	Key             string          `json:"key"`
	DisplayName     string          `json:"displayName"`
	Family          string          `json:"family"`
	Description     string          `json:"description"`
	BaseMsPerProof  float64         `json:"baseMsPerProof"`
	BaseUsdPerProof float64         `json:"baseUsdPerProof"`
	SecurityScaling map[int]float64 `json:"securityScaling"`
}

func profilesView(profiles []estimation.SystemProfile) []profileEntry {
	out := make([]profileEntry, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileEntry{
			Key:             p.Key,
			DisplayName:     p.DisplayName,
			Family:          p.Family,
			Description:     p.Description,
			BaseMsPerProof:  p.BaseMsPerProof,
			BaseUsdPerProof: p.BaseUsdPerProof,
			SecurityScaling: p.SecurityScaling,
		})
	}
	return out
}
