/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/ehrkit/metrics"
)

func newBarChart(chartID, title, unit string, labels []string, values []float64) *charts.Bar {
	data := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		data = append(data, opts.BarData{Value: v})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "360px",
			ChartID: chartID,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: unit,
		}),
	)

	bar.SetXAxis(labels).
		AddSeries(title, data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	return bar
}

func newUtilizationPie(chartID, title, usedLabel, restLabel string, used float64) *charts.Pie {
	rest := math.Max(0, 100-used)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "320px",
			ChartID: chartID,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	pie.AddSeries(title, []opts.PieData{
		{Name: usedLabel, Value: used},
		{Name: restLabel, Value: rest},
	}).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}%",
		}),
	)

	return pie
}

// WriteCharts renders an interactive echarts page with the same panels as
// the PNG grid.
func WriteCharts(w io.Writer, doc metrics.Document, meta Meta) error {
	perf := func(key string) float64 { return doc.Number(metrics.SectionPerformance, key) }

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s - %s", reportTitle, meta.Timestamp())

	page.AddCharts(
		newBarChart("performance_latencies", "Performance Latencies (ms)", "ms",
			[]string{"Encryption", "Decryption", "Upload", "Download", "E2E", "Response"},
			[]float64{
				perf("averageEncryptionTime"),
				perf("averageDecryptionTime"),
				perf("averageUploadLatency"),
				perf("averageDownloadLatency"),
				perf("averageEndToEndLatency"),
				perf("averageResponseTime"),
			}),
		newBarChart("throughput", "Throughput (transactions/sec)", "tps",
			[]string{"TPS"},
			[]float64{perf("throughput")}),
		newUtilizationPie("cpu_utilization", "CPU Utilization", "CPU", "Idle", perf("cpuUtilization")),
		newUtilizationPie("memory_utilization", "Memory Utilization", "Mem", "Free", perf("memoryUtilization")),
		newBarChart("security_rates", "Security Metrics (%)", "%",
			[]string{"AccessCtrl%", "Unauthorized%"},
			[]float64{
				doc.Number(metrics.SectionSecurity, "accessControlEnforcementRate"),
				doc.Number(metrics.SectionSecurity, "unauthorizedAccessRate"),
			}),
		newBarChart("usability", "Usability", "",
			[]string{"TaskTime(s)", "Error%"},
			[]float64{
				doc.Number(metrics.SectionUsability, "averageTaskCompletionTime"),
				doc.Number(metrics.SectionUsability, "errorRate"),
			}),
		newBarChart("scalability", "Scalability", "",
			[]string{"Concurrent", "Success%"},
			[]float64{
				doc.Number(metrics.SectionScalability, "concurrentUsers"),
				doc.Number(metrics.SectionScalability, "transactionSuccessRate"),
			}),
		newBarChart("blockchain_snapshot", "Blockchain Snapshot", "",
			[]string{"GasUnits", "GasUSD", "OnchainTPS"},
			[]float64{
				doc.Number(metrics.SectionBlockchain, "averageGasUsage"),
				doc.Number(metrics.SectionBlockchain, "gasCostPerTransactionUSD"),
				doc.Number(metrics.SectionBlockchain, "onchainThroughput"),
			}),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}
