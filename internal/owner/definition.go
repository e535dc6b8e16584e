package owner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-slide-form/models"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"
)

// Format is the encoding of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadDefinition reads and validates the definition file at path.
func LoadDefinition(path string) (models.FormDefinition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.FormDefinition{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FormDefinition{}, fmt.Errorf("read definition: %w", err)
	}

	return ParseDefinition(data, format)
}

// ParseDefinition decodes data and validates the result. Unknown keys are
// rejected so a typo never silently drops a question property.
func ParseDefinition(data []byte, format Format) (models.FormDefinition, error) {
	var def models.FormDefinition

	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, &def); err != nil {
			return def, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&def); err != nil {
			return def, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
	default:
		return def, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	normalize(&def)

	if err := validateDefinition(def); err != nil {
		return def, err
	}
	return def, nil
}

func normalize(def *models.FormDefinition) {
	def.ID = strings.TrimSpace(def.ID)
	def.Title = strings.TrimSpace(def.Title)
	for i := range def.Questions {
		q := &def.Questions[i]
		q.ID = strings.TrimSpace(q.ID)
		q.Type = models.QuestionType(strings.ToLower(strings.TrimSpace(string(q.Type))))
		q.Text = strings.TrimSpace(q.Text)
		if q.Type == "" {
			q.Type = models.QuestionText
		}
	}
}

// validateDefinition reports every problem at once.
func validateDefinition(def models.FormDefinition) error {
	var result *multierror.Error

	if def.Title == "" {
		result = multierror.Append(result, fmt.Errorf("title is required"))
	}
	if len(def.Questions) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one question is required"))
	}

	seen := make(map[string]int, len(def.Questions))
	for i, q := range def.Questions {
		n := i + 1

		if q.ID != "" {
			if first, dup := seen[q.ID]; dup {
				result = multierror.Append(result, fmt.Errorf("question %d/%d reuses id %q of question %d", n, len(def.Questions), q.ID, first))
			}
			seen[q.ID] = n
		}
		if !q.Type.IsValid() {
			result = multierror.Append(result, fmt.Errorf("question %d/%d has unknown type %q", n, len(def.Questions), q.Type))
		}
		if q.Text == "" {
			result = multierror.Append(result, fmt.Errorf("question %d/%d is missing text", n, len(def.Questions)))
		}
		switch {
		case q.Type.HasOptions() && len(q.Options) == 0:
			result = multierror.Append(result, fmt.Errorf("question %d/%d of type %s needs options", n, len(def.Questions), q.Type))
		case !q.Type.HasOptions() && len(q.Options) > 0:
			result = multierror.Append(result, fmt.Errorf("question %d/%d of type %s cannot have options", n, len(def.Questions), q.Type))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return nil
}
