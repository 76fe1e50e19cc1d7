/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/ehrkit/metrics"
)

// Groups answered by the category endpoint. The rest of the document is
// only served as part of the whole payload.
var categoryRoutes = []string{
	metrics.SectionPerformance,
	metrics.SectionSecurity,
	metrics.SectionUsability,
	metrics.SectionScalability,
}

func isCategoryRoute(name string) bool {
	for _, c := range categoryRoutes {
		if c == name {
			return true
		}
	}
	return false
}

func writeJSON(c flamego.Context, status int, v any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)
	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// MetricsAPI returns the whole metrics document.
func MetricsAPI(c flamego.Context, doc metrics.Document) {
	writeJSON(c, http.StatusOK, doc)
}

// MetricsCategory returns a single metric group.
func MetricsCategory(c flamego.Context, doc metrics.Document) {
	category := c.Param("category")

	section := doc.Section(category)
	if section == nil || !isCategoryRoute(category) {
		writeJSON(c, http.StatusNotFound, map[string]string{"error": errInvalidCategory.Error()})
		return
	}

	writeJSON(c, http.StatusOK, section)
}

// MetricsCategories lists the groups the category endpoint answers for.
func MetricsCategories(c flamego.Context, doc metrics.Document) {
	names := make([]string, 0, len(categoryRoutes))
	for _, name := range doc.Categories() {
		if isCategoryRoute(name) {
			names = append(names, name)
		}
	}
	writeJSON(c, http.StatusOK, map[string][]string{"categories": names})
}
