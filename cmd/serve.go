/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/ehrkit/metrics"
	"github.com/humaidq/ehrkit/report"
	"github.com/humaidq/ehrkit/routes"
	"github.com/humaidq/ehrkit/templates"
)

const shutdownTimeout = 5 * time.Second

var CmdServe = &cli.Command{
	Name:    "serve",
	Aliases: []string{"start"},
	Usage:   "Serve the sample metrics API and the report pages",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "3001",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Value:   report.DefaultOutputDir,
			Sources: cli.EnvVars("REPORT_OUTPUT_DIR"),
			Usage:   "directory whose report files are served",
		},
	},
	Action: runServe,
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	port := cmd.String("port")
	if port == "" {
		return errPortRequired
	}

	outputDir := cmd.String("output-dir")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := newServer(metrics.Fallback(), outputDir)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort("0.0.0.0", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     webStdLogger,
	}

	return listenAndServe(ctx, srv)
}

// newServer wires the metrics API, the live report view and the static
// output directory onto a flamego instance serving doc.
func newServer(doc metrics.Document, outputDir string) (*flamego.Flame, error) {
	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)
	f.Use(routes.NoCacheHeaders())
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		Directory: outputDir,
	}))
	f.Map(doc)

	f.Get("/", routes.ReportView)
	f.Get("/report", routes.ReportView)

	f.Get("/api/metrics", routes.MetricsAPI)
	f.Get("/api/metrics/categories", routes.MetricsCategories)
	f.Get("/api/metrics/{category}", routes.MetricsCategory)

	configureEmptyNotFoundHandler(f)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

// listenAndServe runs srv until ctx is cancelled, then shuts it down.
func listenAndServe(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)

	go func() {
		webLogger.Info("starting web server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	webLogger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}
