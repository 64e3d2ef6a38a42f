package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a Record is rendered.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatEnv  Format = "env"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format, for flag help and completion.
var Formats = []Format{FormatJSON, FormatEnv, FormatYAML}

// ParseFormat parses a format name. Empty selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatEnv, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, env or yaml)", s)
	}
}

// ContentType returns the MIME type used when publishing a rendering.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension for a rendering, without the dot.
func (f Format) Extension() string {
	if f == "" {
		return string(FormatJSON)
	}
	return string(f)
}

// Render renders r in format f. Every rendering ends with a newline.
func Render(r *Record, f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render json: %w", err)
		}
		return append(data, '\n'), nil

	case FormatEnv:
		return renderEnv(r), nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("failed to render yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to render yaml: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported output format %q", f)
	}
}

// renderEnv writes sorted dotenv lines: KEY="value".
func renderEnv(r *Record) []byte {
	vars := r.Vars()
	sort.Slice(vars, func(i, j int) bool { return vars[i][0] < vars[j][0] })

	var buf bytes.Buffer
	for _, kv := range vars {
		fmt.Fprintf(&buf, "%s=%s\n", kv[0], strconv.Quote(kv[1]))
	}
	return buf.Bytes()
}
