package models

import (
	"sort"
	"strings"
)

// Filters is a set of key-value search constraints sent with list requests.
// An empty or nil Filters value means "all records". Blank values are sent as
// is; the API treats them as "no constraint" for that field.
type Filters map[string]string

// Clone returns an independent copy of f.
func (f Filters) Clone() Filters {
	if f == nil {
		return nil
	}
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Active returns only the filters with a non-blank value.
func (f Filters) Active() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// String renders filters as "k1=v1,k2=v2" with keys in lexical order.
func (f Filters) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(f[k])
	}
	return sb.String()
}

// ContentFormat selects how activity content is rendered by the API.
type ContentFormat string

const (
	// ContentFormatJSON asks for structured activity content.
	ContentFormatJSON ContentFormat = "json"

	// ContentFormatHTML asks for rendered HTML content. This is the API
	// default when no format is specified.
	ContentFormatHTML ContentFormat = "html"
)

// Valid reports whether f is one of the known content formats.
func (f ContentFormat) Valid() bool {
	return f == ContentFormatJSON || f == ContentFormatHTML
}

// OrDefault returns f, or [ContentFormatHTML] when f is empty.
func (f ContentFormat) OrDefault() ContentFormat {
	if f == "" {
		return ContentFormatHTML
	}
	return f
}
