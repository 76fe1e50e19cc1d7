/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package report renders a metrics document into static files: a PNG chart
// grid, an HTML report that embeds it, an SVG summary, and an interactive
// chart page.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/ehrkit/logging"
	"github.com/humaidq/ehrkit/metrics"
)

// Output file names inside the output directory.
const (
	PNGName    = "metrics_report.png"
	HTMLName   = "metrics_report.html"
	SVGName    = "metrics_report.svg"
	ChartsName = "metrics_report_charts.html"

	DefaultOutputDir = "outputs"

	timestampLayout = "2006-01-02 15:04 UTC"
)

var logger = logging.Logger(logging.SourceReport)

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Options controls where and how a report is written.
type Options struct {
	OutputDir string
	Source    metrics.Source
	// ReportID is generated when empty.
	ReportID string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Result lists the files written by Generate.
type Result struct {
	ReportID   string
	PNGPath    string
	HTMLPath   string
	SVGPath    string
	ChartsPath string
}

// Meta is the per-run information shared by all renderers.
type Meta struct {
	ReportID    string
	GeneratedAt time.Time
	Source      metrics.Source
}

// Timestamp formats the generation time the way every output shows it.
func (m Meta) Timestamp() string {
	return m.GeneratedAt.UTC().Format(timestampLayout)
}

func (o Options) meta() Meta {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}

	id := o.ReportID
	if id == "" {
		id = uuid.NewString()
	}

	source := o.Source
	if source == "" {
		source = metrics.SourceLive
	}

	return Meta{ReportID: id, GeneratedAt: now().UTC(), Source: source}
}

// Generate writes every report file for doc. The output directory is
// created if it does not exist. The first failure aborts the run.
func Generate(doc metrics.Document, opts Options) (Result, error) {
	dir := opts.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	meta := opts.meta()
	res := Result{
		ReportID:   meta.ReportID,
		PNGPath:    filepath.Join(dir, PNGName),
		HTMLPath:   filepath.Join(dir, HTMLName),
		SVGPath:    filepath.Join(dir, SVGName),
		ChartsPath: filepath.Join(dir, ChartsName),
	}

	if err := saveImage(RenderPNG(doc, meta), res.PNGPath); err != nil {
		return res, fmt.Errorf("failed to save PNG report: %w", err)
	}
	logger.Info("saved PNG report", "path", res.PNGPath)

	if err := writeOutput(res.HTMLPath, func(w io.Writer) error {
		return WriteHTML(w, doc, meta)
	}); err != nil {
		return res, fmt.Errorf("failed to save HTML report: %w", err)
	}
	logger.Info("saved HTML report", "path", res.HTMLPath)

	if err := writeOutput(res.SVGPath, func(w io.Writer) error {
		return WriteSVG(w, doc, meta)
	}); err != nil {
		return res, fmt.Errorf("failed to save SVG summary: %w", err)
	}
	logger.Info("saved SVG summary", "path", res.SVGPath)

	if err := writeOutput(res.ChartsPath, func(w io.Writer) error {
		return WriteCharts(w, doc, meta)
	}); err != nil {
		return res, fmt.Errorf("failed to save interactive charts: %w", err)
	}
	logger.Info("saved interactive charts", "path", res.ChartsPath)

	return res, nil
}

func writeOutput(path string, render func(io.Writer) error) (err error) {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return render(f)
}
