/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/humaidq/ehrkit/metrics"
	"github.com/humaidq/ehrkit/report"
	"github.com/humaidq/ehrkit/templates"
)

// ReportView renders the HTML metrics report for the served document.
func ReportView(c flamego.Context, t template.Template, data template.Data, doc metrics.Document) {
	page, err := report.NewPage(doc, report.Meta{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now(),
		Source:      metrics.SourceStub,
	})
	if err != nil {
		logger.Error("failed to build report page", "error", err)
		http.Error(c.ResponseWriter(), "failed to render report", http.StatusInternalServerError)
		return
	}

	data["Page"] = page
	t.HTML(http.StatusOK, templates.MetricsReport)
}
