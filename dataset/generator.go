/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/humaidq/ehrkit/pyrand"
)

// Defaults used when the dataset command runs without flags.
const (
	DefaultOutputPath = "datasets/synthetic_health_blockchain_dataset.csv"
	DefaultCount      = 5000
	DefaultSeed       = 42
)

// Value ranges, inclusive on both ends.
const (
	MinAge            = 0
	MaxAge            = 95
	MinAccessRequests = 0
	MaxAccessRequests = 20
	MinLatencyMS      = 50
	MaxLatencyMS      = 400
	MinTxCostETH      = 0.0005
	MaxTxCostETH      = 0.005
	TxCostDecimals    = 6
)

// Generator draws synthetic records from a single seeded stream.
type Generator struct {
	rng *pyrand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: pyrand.New(seed)}
}

// Next draws record i. Records must be requested in order 1..N for the
// output to be reproducible, since every field consumes the shared stream.
func (g *Generator) Next(i int) Record {
	r := g.rng

	var rec Record
	rec.PatientID = i

	first := firstNames[r.Choice(len(firstNames))]
	last := lastNames[r.Choice(len(lastNames))]
	rec.Name = first + " " + last

	rec.Age = r.Randint(MinAge, MaxAge)
	rec.Gender = genders[r.Weighted(genderWeights)]
	rec.Country = countries[r.Choice(len(countries))]
	rec.Diagnosis = diagnoses[r.Choice(len(diagnoses))]
	rec.ReportType = reportTypes[r.Choice(len(reportTypes))]
	rec.DoctorOpinion = doctorOpinions[r.Choice(len(doctorOpinions))]
	rec.Hospital = hospitals[r.Choice(len(hospitals))]

	rec.RecordID = recordID(i)
	rec.FileCID = fileCID(i)
	rec.FileHash = fileHash(i)

	rec.Uploader = g.uploader()
	rec.ConsentGiven = consentValues[r.Weighted(consentWeights)]
	rec.AccessRequests = r.Randint(MinAccessRequests, MaxAccessRequests)
	rec.LatencyMS = r.Randint(MinLatencyMS, MaxLatencyMS)
	rec.TxCostETH = roundTo(r.Uniform(MinTxCostETH, MaxTxCostETH), TxCostDecimals)

	return rec
}

func (g *Generator) uploader() string {
	var sb strings.Builder
	sb.Grow(len(uploaderHead) + uploaderBytes)
	sb.WriteString(uploaderHead)
	for j := 0; j < uploaderBytes; j++ {
		sb.WriteByte(hexDigits[g.rng.Choice(len(hexDigits))])
	}
	return sb.String()
}

// roundTo rounds v to the given number of decimals using the correctly
// rounded decimal form of v, not v*10^n.
func roundTo(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return out
}

// Write emits the header followed by count records for seed, using CRLF
// line endings.
func Write(w io.Writer, count int, seed int64) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", errNegativeCount, count)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	gen := NewGenerator(seed)
	for i := 1; i <= count; i++ {
		if err := cw.Write(gen.Next(i).Row()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	return nil
}

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// WriteFile writes the dataset to path, creating the parent directory.
func WriteFile(path string, count int, seed int64) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}

	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Write(f, count, seed)
}
