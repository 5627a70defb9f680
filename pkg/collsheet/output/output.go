// Package output renders collection jobs for the CLI.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/collsheet-go/pkg/collsheet/models"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ToJSON serializes jobs to JSON. A nil list encodes as an empty array.
func ToJSON(jobs []models.CollectionJob, pretty bool) ([]byte, error) {
	if jobs == nil {
		jobs = []models.CollectionJob{}
	}
	if pretty {
		return json.MarshalIndent(jobs, "", "  ")
	}
	return json.Marshal(jobs)
}

// ToYAML serializes jobs to YAML.
func ToYAML(jobs []models.CollectionJob) ([]byte, error) {
	if jobs == nil {
		jobs = []models.CollectionJob{}
	}
	return yaml.Marshal(jobs)
}

// Render serializes jobs in the given format.
func Render(jobs []models.CollectionJob, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(jobs, pretty)
	case FormatYAML:
		return ToYAML(jobs)
	default:
		return nil, fmt.Errorf("unknown output format: %s (must be json or yaml)", format)
	}
}
