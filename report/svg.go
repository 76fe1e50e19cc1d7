/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/humaidq/ehrkit/metrics"
)

const (
	svgWidth  = 900
	svgHeight = 240
	svgTitle  = "EHR Metrics Summary"
)

type svgLine struct {
	Label string
	Value string
}

func svgLines(doc metrics.Document) []svgLine {
	return []svgLine{
		{"CPU Utilization", fmt.Sprintf("%.1f%%", doc.Number(metrics.SectionPerformance, "cpuUtilization"))},
		{"Memory Utilization", fmt.Sprintf("%.1f%%", doc.Number(metrics.SectionPerformance, "memoryUtilization"))},
		{"Throughput (TPS)", fmt.Sprintf("%.2f", doc.Number(metrics.SectionPerformance, "throughput"))},
		{"Access Control Rate", fmt.Sprintf("%.1f%%", doc.Number(metrics.SectionSecurity, "accessControlEnforcementRate"))},
		{"Transaction Success Rate", fmt.Sprintf("%.1f%%", doc.Number(metrics.SectionScalability, "transactionSuccessRate"))},
	}
}

// WriteSVG renders the compact text summary.
func WriteSVG(w io.Writer, doc metrics.Document, meta Meta) error {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", svgWidth, svgHeight))
	sb.WriteString(`  <style>
    .title { font: bold 18px sans-serif; fill: #222 }
    .label { font: 12px sans-serif; fill: #333 }
    .value { font: bold 14px sans-serif; fill: #0088FE }
  </style>
`)
	sb.WriteString(`  <rect width="100%" height="100%" fill="#fff" stroke="#ddd" />` + "\n")
	sb.WriteString(fmt.Sprintf(`  <text x="20" y="30" class="title">%s</text>`+"\n", svgTitle))

	y := 66
	for _, line := range svgLines(doc) {
		sb.WriteString(fmt.Sprintf(`  <text x="20" y="%d" class="label">%s</text>`+"\n", y, line.Label))
		sb.WriteString(fmt.Sprintf(`  <text x="300" y="%d" class="value">%s</text>`+"\n", y, line.Value))
		y += 30
	}

	sb.WriteString(fmt.Sprintf(`  <text x="620" y="216" class="label">Generated: %s</text>`+"\n", meta.Timestamp()))
	sb.WriteString("</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}
