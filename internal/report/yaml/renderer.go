// Package yaml renders reports as YAML documents.
package yaml

import (
	"sigs.k8s.io/yaml"

	"github.com/zkcostlab/zkcost/internal/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatYAML
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	payload, err := data.Payload()
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
