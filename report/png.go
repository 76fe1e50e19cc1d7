/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/humaidq/ehrkit/metrics"
)

// Canvas size of the chart grid, 14x10 inches at 150 dpi.
const (
	pngWidth  = 2100
	pngHeight = 1500

	gridMargin  = 40.0
	gridGap     = 36.0
	titleHeight = 90.0
)

// Row height ratios of the 3x3 grid.
var gridRowWeights = []float64{1, 1, 0.6}

var encodePNG = func(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

var (
	fontOnce  sync.Once
	fontValue *truetype.Font
	fontErr   error
)

func fontFace(size float64) font.Face {
	fontOnce.Do(func() {
		fontValue, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil
	}
	return truetype.NewFace(fontValue, &truetype.Options{Size: size})
}

func setFont(dc *gg.Context, size float64) {
	if face := fontFace(size); face != nil {
		dc.SetFontFace(face)
	}
}

type rect struct {
	X, Y, W, H float64
}

func (r rect) inset(left, top, right, bottom float64) rect {
	return rect{X: r.X + left, Y: r.Y + top, W: r.W - left - right, H: r.H - top - bottom}
}

type barPanel struct {
	Title  string
	YLabel string
	Labels []string
	Values []float64
	Colors []string
	// YMax fixes the axis top; zero scales to the data.
	YMax float64
	// Format is applied to the value drawn above each bar.
	Format string
}

type piePanel struct {
	Title  string
	Labels []string
	Values []float64
	Colors []string
}

// gridCells splits the area under the title into rows x cols cells.
func gridCells(width, height float64, rows, cols int, weights []float64) [][]rect {
	area := rect{X: gridMargin, Y: titleHeight, W: width - 2*gridMargin, H: height - titleHeight - gridMargin}

	var total float64
	for _, w := range weights {
		total += w
	}

	usableH := area.H - gridGap*float64(rows-1)
	cellW := (area.W - gridGap*float64(cols-1)) / float64(cols)

	cells := make([][]rect, rows)
	y := area.Y
	for r := 0; r < rows; r++ {
		h := usableH * weights[r] / total
		cells[r] = make([]rect, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = rect{X: area.X + float64(c)*(cellW+gridGap), Y: y, W: cellW, H: h}
		}
		y += h + gridGap
	}

	return cells
}

func span(a, b rect) rect {
	return rect{X: a.X, Y: a.Y, W: b.X + b.W - a.X, H: a.H}
}

// RenderPNG draws the multi-panel chart grid for doc.
func RenderPNG(doc metrics.Document, meta Meta) image.Image {
	dc := gg.NewContext(pngWidth, pngHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	setFont(dc, 30)
	dc.SetHexColor("#222222")
	dc.DrawStringAnchored("EHR System Metrics Report - "+meta.Timestamp(), pngWidth/2, titleHeight/2, 0.5, 0.5)

	cells := gridCells(pngWidth, pngHeight, 3, 3, gridRowWeights)

	perf := func(key string) float64 { return doc.Number(metrics.SectionPerformance, key) }

	drawBarPanel(dc, span(cells[0][0], cells[0][1]), barPanel{
		Title:  "Performance Latencies (ms)",
		YLabel: "ms",
		Labels: []string{"Encryption", "Decryption", "Upload", "Download", "E2E", "Response"},
		Values: []float64{
			perf("averageEncryptionTime"),
			perf("averageDecryptionTime"),
			perf("averageUploadLatency"),
			perf("averageDownloadLatency"),
			perf("averageEndToEndLatency"),
			perf("averageResponseTime"),
		},
		Colors: []string{"#4c72b0"},
		Format: "%.1f",
	})

	throughput := perf("throughput")
	drawBarPanel(dc, cells[0][2], barPanel{
		Title:  "Throughput (transactions/sec)",
		Labels: []string{"TPS"},
		Values: []float64{throughput},
		Colors: []string{"#dd8452"},
		YMax:   math.Max(throughput*1.5, 5),
		Format: "%.2f",
	})

	cpu := perf("cpuUtilization")
	idle := math.Max(0, 100-cpu)
	drawPiePanel(dc, cells[1][0], piePanel{
		Title:  "CPU Utilization",
		Labels: []string{fmt.Sprintf("CPU %.1f%%", cpu), fmt.Sprintf("Idle %.1f%%", idle)},
		Values: []float64{cpu, idle},
		Colors: []string{"#2ca02c", "#d62728"},
	})

	mem := perf("memoryUtilization")
	free := math.Max(0, 100-mem)
	drawPiePanel(dc, cells[1][1], piePanel{
		Title:  "Memory Utilization",
		Labels: []string{fmt.Sprintf("Mem %.1f%%", mem), fmt.Sprintf("Free %.1f%%", free)},
		Values: []float64{mem, free},
		Colors: []string{"#9467bd", "#8c564b"},
	})

	drawBarPanel(dc, cells[1][2], barPanel{
		Title:  "Security Metrics (%)",
		Labels: []string{"AccessCtrl%", "Unauthorized%"},
		Values: []float64{
			doc.Number(metrics.SectionSecurity, "accessControlEnforcementRate"),
			doc.Number(metrics.SectionSecurity, "unauthorizedAccessRate"),
		},
		Colors: []string{"#1f77b4", "#ff7f0e"},
		YMax:   100,
		Format: "%.1f%%",
	})

	drawBarPanel(dc, cells[2][0], barPanel{
		Title:  "Usability",
		Labels: []string{"TaskTime(s)", "Error%"},
		Values: []float64{
			doc.Number(metrics.SectionUsability, "averageTaskCompletionTime"),
			doc.Number(metrics.SectionUsability, "errorRate"),
		},
		Colors: []string{"#17becf", "#e377c2"},
		Format: "%.2f",
	})

	drawBarPanel(dc, cells[2][1], barPanel{
		Title:  "Scalability",
		Labels: []string{"Concurrent", "Success%"},
		Values: []float64{
			doc.Number(metrics.SectionScalability, "concurrentUsers"),
			doc.Number(metrics.SectionScalability, "transactionSuccessRate"),
		},
		Colors: []string{"#7f7f7f", "#bcbd22"},
		Format: "%.2f",
	})

	drawBarPanel(dc, cells[2][2], barPanel{
		Title:  "Blockchain Snapshot",
		Labels: []string{"GasUnits", "GasUSD", "OnchainTPS"},
		Values: []float64{
			doc.Number(metrics.SectionBlockchain, "averageGasUsage"),
			doc.Number(metrics.SectionBlockchain, "gasCostPerTransactionUSD"),
			doc.Number(metrics.SectionBlockchain, "onchainThroughput"),
		},
		Colors: []string{"#9edae5", "#98df8a", "#ff9896"},
		Format: "%.2f",
	})

	return dc.Image()
}

func drawPanelFrame(dc *gg.Context, r rect, title string) {
	dc.SetHexColor("#dddddd")
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Stroke()

	setFont(dc, 20)
	dc.SetHexColor("#222222")
	dc.DrawStringAnchored(title, r.X+r.W/2, r.Y+22, 0.5, 0.5)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func barAxisMax(p barPanel) float64 {
	if p.YMax > 0 && finite(p.YMax) {
		return p.YMax
	}

	var top float64
	for _, v := range p.Values {
		if finite(v) {
			top = math.Max(top, v)
		}
	}
	if top <= 0 || !finite(top*1.15) {
		return 1
	}
	return top * 1.15
}

func drawBarPanel(dc *gg.Context, r rect, p barPanel) {
	drawPanelFrame(dc, r, p.Title)

	plot := r.inset(70, 50, 20, 40)
	yMax := barAxisMax(p)

	// Horizontal grid lines with tick labels.
	setFont(dc, 13)
	const ticks = 4
	for i := 0; i <= ticks; i++ {
		v := yMax * float64(i) / ticks
		y := plot.Y + plot.H - plot.H*float64(i)/ticks

		dc.SetHexColor("#eeeeee")
		dc.SetLineWidth(1)
		dc.DrawLine(plot.X, y, plot.X+plot.W, y)
		dc.Stroke()

		dc.SetHexColor("#555555")
		dc.DrawStringAnchored(tickLabel(v), plot.X-8, y, 1, 0.35)
	}

	dc.SetHexColor("#333333")
	dc.SetLineWidth(1.5)
	dc.DrawLine(plot.X, plot.Y+plot.H, plot.X+plot.W, plot.Y+plot.H)
	dc.DrawLine(plot.X, plot.Y, plot.X, plot.Y+plot.H)
	dc.Stroke()

	if p.YLabel != "" {
		dc.DrawStringAnchored(p.YLabel, r.X+14, plot.Y-14, 0, 0.5)
	}

	n := len(p.Values)
	if n == 0 {
		return
	}

	slot := plot.W / float64(n)
	barW := slot * 0.6
	for i, v := range p.Values {
		h := 0.0
		if v > 0 && finite(v) {
			h = math.Min(v/yMax, 1) * plot.H
		}
		x := plot.X + slot*float64(i) + (slot-barW)/2
		y := plot.Y + plot.H - h

		dc.SetHexColor(p.Colors[i%len(p.Colors)])
		dc.DrawRectangle(x, y, barW, h)
		dc.Fill()

		setFont(dc, 14)
		dc.SetHexColor("#222222")
		dc.DrawStringAnchored(fmt.Sprintf(p.Format, v), x+barW/2, y-6, 0.5, 0)

		if i < len(p.Labels) {
			setFont(dc, 14)
			dc.SetHexColor("#333333")
			dc.DrawStringAnchored(p.Labels[i], x+barW/2, plot.Y+plot.H+8, 0.5, 1)
		}
	}
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func drawPiePanel(dc *gg.Context, r rect, p piePanel) {
	drawPanelFrame(dc, r, p.Title)

	plot := r.inset(20, 50, 20, 20)
	radius := math.Min(plot.W*0.5, plot.H) / 2.4
	cx := plot.X + plot.W*0.38
	cy := plot.Y + plot.H/2

	var total float64
	for _, v := range p.Values {
		if finite(v) && v > 0 {
			total += v
		}
	}

	if total <= 0 || !finite(total) {
		dc.SetHexColor("#cccccc")
		dc.SetLineWidth(2)
		dc.DrawCircle(cx, cy, radius)
		dc.Stroke()
	} else {
		angle := -math.Pi / 2
		for i, v := range p.Values {
			if v <= 0 || !finite(v) {
				continue
			}
			sweep := 2 * math.Pi * v / total

			dc.SetHexColor(p.Colors[i%len(p.Colors)])
			dc.MoveTo(cx, cy)
			dc.DrawArc(cx, cy, radius, angle, angle+sweep)
			dc.ClosePath()
			dc.Fill()

			mid := angle + sweep/2
			setFont(dc, 14)
			dc.SetHexColor("#ffffff")
			dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", 100*v/total),
				cx+math.Cos(mid)*radius*0.6, cy+math.Sin(mid)*radius*0.6, 0.5, 0.5)

			angle += sweep
		}
	}

	// Legend to the right of the pie.
	setFont(dc, 15)
	lx := cx + radius + 30
	for i, label := range p.Labels {
		ly := cy - 20 + float64(i)*32
		dc.SetHexColor(p.Colors[i%len(p.Colors)])
		dc.DrawRectangle(lx, ly-8, 16, 16)
		dc.Fill()

		dc.SetHexColor("#333333")
		dc.DrawStringAnchored(label, lx+24, ly, 0, 0.35)
	}
}

func saveImage(img image.Image, path string) (err error) {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if err := encodePNG(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	return nil
}
