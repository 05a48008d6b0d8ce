// Package json renders reports as indented JSON.
package json

import (
	"encoding/json"

	"github.com/zkcostlab/zkcost/internal/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatJSON
}

func (r *Renderer) Render(data *types.ReportData) (string, error) {
	payload, err := data.Payload()
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
