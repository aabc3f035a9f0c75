// Package render turns view pages into JSON, YAML, HTML and PNG output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

var (
	// ErrUnsupportedFormat is returned for an unknown or disallowed format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrUnknownChart is returned when a page has no chart with the given id.
	ErrUnknownChart = errors.New("unknown chart")
)

// ParseFormat normalizes s and checks it against allowed. An empty s
// selects the first allowed format.
func ParseFormat(s string, allowed ...Format) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" && len(allowed) > 0 {
		return allowed[0], nil
	}
	for _, f := range allowed {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type of f.
func ContentType(f Format) string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
