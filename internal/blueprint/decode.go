package blueprint

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"solgen/internal/errors"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and decodes the blueprint at path. The source text is
// returned along with decode errors so they can be reported in context.
func LoadFile(path string) (*Blueprint, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	bp, err := Decode(data, FormatFromPath(path))
	return bp, string(data), err
}

// Decode parses a blueprint document. Malformed documents produce an E0101
// generation error positioned at the offending character where known.
func Decode(data []byte, format Format) (*Blueprint, error) {
	var bp Blueprint
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &bp); err != nil {
			return nil, errors.BlueprintSyntax(err.Error(), yamlPosition(err))
		}
	default:
		if err := json.Unmarshal(data, &bp); err != nil {
			return nil, errors.BlueprintSyntax(err.Error(), jsonPosition(string(data), err))
		}
	}
	return &bp, nil
}

func jsonPosition(source string, err error) errors.Position {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.PositionAt(source, int(syntaxErr.Offset)-1)
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.PositionAt(source, int(typeErr.Offset)-1)
	}
	return errors.Position{}
}

// yamlPosition extracts the line from messages like "yaml: line 3: ..."
func yamlPosition(err error) errors.Position {
	msg := err.Error()
	var typeErr *yaml.TypeError
	if stderrors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = strings.TrimPrefix(typeErr.Errors[0], "  ")
	}
	var line int
	if _, scanErr := fmt.Sscanf(strings.TrimPrefix(msg, "yaml: "), "line %d:", &line); scanErr != nil || line <= 0 {
		return errors.Position{}
	}
	return errors.Position{Line: line, Column: 1}
}
