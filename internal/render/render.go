// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render prints workflow results to the terminal.
//
// A result is serialised to JSON and printed one line per top-level field,
// "<name>: <value>", in serialisation order. String values are printed
// unquoted; every other value is printed as compact JSON.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one top-level field of a rendered result.
type Field struct {
	Name  string
	Value string
}

// String returns the printed form of the field.
func (f Field) String() string {
	return f.Name + ": " + f.Value
}

// Renderer writes step titles and results to an output stream.
type Renderer struct {
	out    io.Writer
	styles styles
}

// NewRenderer returns a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Title prints a step title on its own line.
func (r *Renderer) Title(title string) error {
	_, err := fmt.Fprintln(r.out, r.styles.title.Render(title))
	return err
}

// Break prints an empty line between steps.
func (r *Renderer) Break() error {
	_, err := fmt.Fprintln(r.out)
	return err
}

// Error prints a failure line.
func (r *Renderer) Error(err error) error {
	_, werr := fmt.Fprintln(r.out, r.styles.error.Render("Error: "+err.Error()))
	return werr
}

// Note prints a de-emphasised informational line.
func (r *Renderer) Note(format string, args ...any) error {
	_, err := fmt.Fprintln(r.out, r.styles.faint.Render(fmt.Sprintf(format, args...)))
	return err
}

// Result prints v one line per top-level field and returns the printed text.
func (r *Renderer) Result(v any) (string, error) {
	fields, err := Fields(v)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}

	text := sb.String()
	if _, err = io.WriteString(r.out, text); err != nil {
		return "", fmt.Errorf("error writing result: %w", err)
	}
	return text, nil
}

// Fields serialises v to JSON and splits the document into its top-level
// fields, keeping serialisation order. A value that does not serialise to a
// JSON object yields a single field named "value".
func Fields(v any) ([]Field, error) {
	data, err := marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error serializing result: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error reading result: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return []Field{{Name: "value", Value: formatValue(data)}}, nil
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error reading field name: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("error reading field %q: %w", key, err)
		}

		fields = append(fields, Field{Name: key, Value: formatValue(raw)})
	}

	return fields, nil
}

// marshal is json.Marshal without HTML escaping, so markup in activity
// content prints as written.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func formatValue(raw json.RawMessage) string {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
