/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/ehrkit/metrics"
	"github.com/humaidq/ehrkit/report"
)

var CmdReport = &cli.Command{
	Name:  "report",
	Usage: "Fetch metrics and write the PNG, HTML and SVG reports",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Value:   metrics.DefaultURL,
			Sources: cli.EnvVars("METRICS_URL"),
			Usage:   "metrics API endpoint",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Value:   metrics.DefaultTimeout,
			Sources: cli.EnvVars("METRICS_TIMEOUT"),
			Usage:   "timeout for each metrics request",
		},
		&cli.IntFlag{
			Name:    "retries",
			Value:   0,
			Sources: cli.EnvVars("METRICS_RETRIES"),
			Usage:   "extra attempts before falling back to the sample payload",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Value:   report.DefaultOutputDir,
			Sources: cli.EnvVars("REPORT_OUTPUT_DIR"),
			Usage:   "directory the report files are written to",
		},
	},
	Action: runReport,
}

type reportOptions struct {
	URL       string
	Timeout   time.Duration
	Retries   int
	OutputDir string
}

func runReport(ctx context.Context, cmd *cli.Command) error {
	_, err := generateReport(ctx, reportOptions{
		URL:       cmd.String("url"),
		Timeout:   cmd.Duration("timeout"),
		Retries:   cmd.Int("retries"),
		OutputDir: cmd.String("output-dir"),
	})

	return err
}

func generateReport(ctx context.Context, opts reportOptions) (report.Result, error) {
	if opts.URL == "" {
		return report.Result{}, errURLRequired
	}
	if opts.Timeout <= 0 {
		return report.Result{}, errNonPositiveTimeout
	}
	if opts.Retries < 0 {
		return report.Result{}, errNegativeRetries
	}

	fetcher := metrics.Fetcher{
		URL:     opts.URL,
		Timeout: opts.Timeout,
		Retries: opts.Retries,
	}
	doc, source := fetcher.Fetch(ctx)

	res, err := report.Generate(doc, report.Options{
		OutputDir: opts.OutputDir,
		Source:    source,
	})
	if err != nil {
		return res, fmt.Errorf("failed to generate report: %w", err)
	}

	reportLogger.Info("report complete",
		"report_id", res.ReportID,
		"source", source,
		"output_dir", opts.OutputDir,
	)

	return res, nil
}
