// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFallbackIsFullyPopulated(t *testing.T) {
	t.Parallel()

	doc := Fallback()
	want := []string{
		SectionAnalytical, SectionBlockchain, SectionPerformance, SectionResearch,
		SectionScalability, SectionSecurity, SectionUsability,
	}

	got := doc.Categories()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected categories: %v", got)
	}

	if v := doc.Number(SectionPerformance, "cpuUtilization"); v != 18.6 {
		t.Fatalf("expected cpuUtilization 18.6, got %v", v)
	}
	if v := doc.Number(SectionSecurity, "accessControlEnforcementRate"); v != 99.5 {
		t.Fatalf("expected accessControlEnforcementRate 99.5, got %v", v)
	}
}

func TestFallbackReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Fallback()
	a.Section(SectionPerformance)["cpuUtilization"] = json.Number("1")

	b := Fallback()
	if v := b.Number(SectionPerformance, "cpuUtilization"); v != 18.6 {
		t.Fatalf("expected untouched fallback, got %v", v)
	}
}

func TestFallbackPreservesNumberText(t *testing.T) {
	t.Parallel()

	doc := Fallback()
	if got := FormatValue(doc.Value(SectionResearch, "formalVerificationCoverage")); got != "12.0" {
		t.Fatalf("expected 12.0, got %q", got)
	}
}

func TestNumberDefaults(t *testing.T) {
	t.Parallel()

	doc, err := Decode(strings.NewReader(`{
		"performance": {"throughput": "5.25", "cpuUtilization": null, "label": "n/a"},
		"security": 12
	}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	cases := []struct {
		section, key string
		want         float64
	}{
		{SectionPerformance, "throughput", 5.25},
		{SectionPerformance, "cpuUtilization", 0},
		{SectionPerformance, "label", 0},
		{SectionPerformance, "missing", 0},
		{SectionSecurity, "accessControlEnforcementRate", 0},
		{"absent", "anything", 0},
	}
	for _, tc := range cases {
		if got := doc.Number(tc.section, tc.key); got != tc.want {
			t.Fatalf("%s.%s: expected %v, got %v", tc.section, tc.key, tc.want, got)
		}
	}

	if got := doc.Categories(); len(got) != 1 || got[0] != SectionPerformance {
		t.Fatalf("expected only object sections, got %v", got)
	}
}

func TestNilDocumentLookups(t *testing.T) {
	t.Parallel()

	var doc Document
	if doc.Section(SectionPerformance) != nil {
		t.Fatal("expected nil section")
	}
	if doc.Number(SectionPerformance, "throughput") != 0 {
		t.Fatal("expected zero number")
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader(`[1,2,3]`)); !errors.Is(err, errNotAnObject) {
		t.Fatalf("expected not-an-object error, got %v", err)
	}
	if _, err := Decode(strings.NewReader(`{"broken":`)); err == nil {
		t.Fatal("expected decode error for malformed body")
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"performance":{"cpuUtilization":1}} <html>oops</html>`,
		`{"a":1}{"b":2}`,
	} {
		if _, err := Decode(strings.NewReader(body)); !errors.Is(err, errTrailingData) {
			t.Fatalf("%q: expected trailing data error, got %v", body, err)
		}
	}

	if _, err := Decode(strings.NewReader("{\"a\":1}\n  \n")); err != nil {
		t.Fatalf("expected trailing whitespace to be accepted, got %v", err)
	}
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	var zero float64

	cases := []struct {
		in   any
		want float64
	}{
		{json.Number("3.5"), 3.5},
		{json.Number("x"), -1},
		{2.5, 2.5},
		{float32(1.5), 1.5},
		{7, 7},
		{int64(8), 8},
		{true, 1},
		{false, 0},
		{" 4.5 ", 4.5},
		{"abc", -1},
		{"NaN", -1},
		{"Infinity", -1},
		{"-Inf", -1},
		{float64(0) / zero, -1},
		{nil, -1},
		{[]any{}, -1},
	}
	for _, tc := range cases {
		if got := Numeric(tc.in, -1); got != tc.want {
			t.Fatalf("Numeric(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	doc := Fallback()
	got := FormatValue(doc.Value(SectionAnalytical, "consentExpiryDistribution"))
	if got != "{0-30d: 40, 30-90d: 35, >90d: 25}" {
		t.Fatalf("unexpected nested formatting: %q", got)
	}

	if got := FormatValue([]any{json.Number("1"), "a", true, nil}); got != "[1, a, true, ]" {
		t.Fatalf("unexpected list formatting: %q", got)
	}
	if got := FormatValue(0.5); got != "0.5" {
		t.Fatalf("unexpected float formatting: %q", got)
	}
}
