/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/humaidq/ehrkit/metrics"
	"github.com/humaidq/ehrkit/static"
	"github.com/humaidq/ehrkit/templates"
)

const reportTitle = "EHR Metrics Report"

// Groups rendered as tables, in display order. Research metrics stay in the
// document but have no table.
var htmlSections = []struct {
	Title string
	Key   string
}{
	{"Performance", metrics.SectionPerformance},
	{"Security", metrics.SectionSecurity},
	{"Usability", metrics.SectionUsability},
	{"Scalability", metrics.SectionScalability},
	{"Blockchain", metrics.SectionBlockchain},
	{"Analytical", metrics.SectionAnalytical},
}

// Row is one key/value line of a section table.
type Row struct {
	Key   string
	Value string
}

// Section is one metric group table. No rows renders as N/A.
type Section struct {
	Name string
	Rows []Row
}

// Page is the data behind the metrics_report template.
type Page struct {
	Title      string
	Generated  string
	Source     string
	ReportID   string
	ImageName  string
	ChartsName string
	Style      htmltemplate.CSS
	Sections   []Section
}

var (
	reportTmplOnce sync.Once
	reportTmpl     *htmltemplate.Template
	reportTmplErr  error
)

func reportTemplate() (*htmltemplate.Template, error) {
	reportTmplOnce.Do(func() {
		reportTmpl, reportTmplErr = htmltemplate.ParseFS(templates.Templates, templates.MetricsReport+".html")
	})
	return reportTmpl, reportTmplErr
}

// Stylesheet returns the embedded report CSS.
func Stylesheet() (htmltemplate.CSS, error) {
	css, err := fs.ReadFile(static.Static, static.ReportStylesheet)
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return htmltemplate.CSS(css), nil
}

// Sections builds the sorted key/value tables for doc.
func Sections(doc metrics.Document) []Section {
	out := make([]Section, 0, len(htmlSections))
	for _, s := range htmlSections {
		values := doc.Section(s.Key)

		section := Section{Name: s.Title}
		for _, key := range metrics.SortedKeys(values) {
			section.Rows = append(section.Rows, Row{Key: key, Value: metrics.FormatValue(values[key])})
		}
		out = append(out, section)
	}
	return out
}

// NewPage assembles the template data for doc.
func NewPage(doc metrics.Document, meta Meta) (Page, error) {
	style, err := Stylesheet()
	if err != nil {
		return Page{}, err
	}

	return Page{
		Title:      reportTitle,
		Generated:  meta.Timestamp(),
		Source:     string(meta.Source),
		ReportID:   meta.ReportID,
		ImageName:  PNGName,
		ChartsName: ChartsName,
		Style:      style,
		Sections:   Sections(doc),
	}, nil
}

// WriteHTML renders the HTML report for doc.
func WriteHTML(w io.Writer, doc metrics.Document, meta Meta) error {
	tmpl, err := reportTemplate()
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	page, err := NewPage(doc, meta)
	if err != nil {
		return err
	}

	if err := tmpl.Execute(w, map[string]any{"Page": page}); err != nil {
		return fmt.Errorf("failed to render report template: %w", err)
	}

	return nil
}
