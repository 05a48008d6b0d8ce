package types

import (
	"fmt"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/gascost"
)

type ReportRenderer interface {
	Render(data *ReportData) (string, error)
	SupportedFormat() ReportFormat
}

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportData carries exactly one payload kind per report; renderers pick the
// section that is set.
type ReportData struct {
	Estimate   *estimation.Result
	Comparison *estimation.Comparison
	Gas        *gascost.Result
	Sweep      []estimation.Result
}

// Payload returns the single populated section as a marshalable value.
func (d *ReportData) Payload() (any, error) {
	switch {
	case d.Estimate != nil:
		return d.Estimate, nil
	case d.Comparison != nil:
		return d.Comparison, nil
	case d.Gas != nil:
		return d.Gas, nil
	case d.Sweep != nil:
		return d.Sweep, nil
	default:
		return nil, fmt.Errorf("report data has no payload")
	}
}
