/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package metrics

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Metric groups known to the renderers.
const (
	SectionPerformance = "performance"
	SectionSecurity    = "security"
	SectionUsability   = "usability"
	SectionScalability = "scalability"
	SectionBlockchain  = "blockchain"
	SectionAnalytical  = "analytical"
	SectionResearch    = "research"
)

//go:embed fallback.json
var fallbackJSON []byte

// Document is a decoded metrics payload. Numbers are kept as json.Number so
// the source text of each value is preserved for display.
type Document map[string]any

// Fallback returns a fresh copy of the built-in sample document.
func Fallback() Document {
	doc, err := Decode(bytes.NewReader(fallbackJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded fallback document: %v", err))
	}
	return doc
}

// Decode reads a JSON object into a Document.
func Decode(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errNotAnObject
	}

	return Document(obj), nil
}

// Section returns the named group, or nil when it is absent or not an object.
func (d Document) Section(name string) map[string]any {
	if d == nil {
		return nil
	}
	section, _ := d[name].(map[string]any)
	return section
}

// Value returns the raw value at section.key, or nil.
func (d Document) Value(section, key string) any {
	s := d.Section(section)
	if s == nil {
		return nil
	}
	return s[key]
}

// Number returns section.key as a float, or 0 when it is missing or not
// numeric. Numeric strings are accepted.
func (d Document) Number(section, key string) float64 {
	return Numeric(d.Value(section, key), 0)
}

// Categories returns the sorted names of all object-valued groups.
func (d Document) Categories() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		if d.Section(name) != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Numeric converts v to a finite float, returning def when it cannot.
// NaN and infinities count as non-numeric.
func Numeric(v any, def float64) float64 {
	f := numeric(v, def)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func numeric(v any, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return f
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// FormatValue renders a raw document value for tabular display. Nested
// objects are flattened to "key: value" pairs in key order.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case json.Number:
		return val.String()
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		keys := SortedKeys(val)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+FormatValue(val[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, FormatValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(val)
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
