// Package report selects and runs the renderer for a requested output format.
package report

import (
	"fmt"

	"github.com/zkcostlab/zkcost/internal/report/csv"
	"github.com/zkcostlab/zkcost/internal/report/json"
	"github.com/zkcostlab/zkcost/internal/report/text"
	"github.com/zkcostlab/zkcost/internal/report/types"
	"github.com/zkcostlab/zkcost/internal/report/xlsx"
	"github.com/zkcostlab/zkcost/internal/report/yaml"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportData = types.ReportData

const (
	ReportFormatText = types.ReportFormatText
	ReportFormatJSON = types.ReportFormatJSON
	ReportFormatYAML = types.ReportFormatYAML
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatXLSX = types.ReportFormatXLSX
)

type Service struct {
	renderers  map[types.ReportFormat]types.ReportRenderer
	xlsxWriter *xlsx.Writer
}

func NewService() *Service {
	service := &Service{
		renderers:  make(map[types.ReportFormat]types.ReportRenderer),
		xlsxWriter: xlsx.NewWriter(),
	}

	for _, renderer := range []types.ReportRenderer{
		text.NewRenderer(),
		json.NewRenderer(),
		yaml.NewRenderer(),
		csv.NewRenderer(),
	} {
		service.renderers[renderer.SupportedFormat()] = renderer
	}

	return service
}

// Render produces the report in the requested text-based format.
func (s *Service) Render(format types.ReportFormat, data *types.ReportData) (string, error) {
	renderer, exists := s.renderers[format]
	if !exists {
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
	return renderer.Render(data)
}

// WriteFile produces a binary report on disk. Only the xlsx format is
// file-based; text-based formats go through Render.
func (s *Service) WriteFile(format types.ReportFormat, data *types.ReportData, path string) error {
	if format != types.ReportFormatXLSX {
		return fmt.Errorf("format %s is not file-based", format)
	}
	return s.xlsxWriter.WriteFile(data, path)
}

// Formats returns the text-based formats the service can render.
func (s *Service) Formats() []string {
	return []string{
		string(ReportFormatText),
		string(ReportFormatJSON),
		string(ReportFormatYAML),
		string(ReportFormatCSV),
	}
}
