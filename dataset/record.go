/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import (
	"fmt"
	"strconv"
)

// Header is the fixed CSV header, one column per Record field.
var Header = []string{
	"PatientID",
	"Name",
	"Age",
	"Gender",
	"Country",
	"Diagnosis",
	"ReportType",
	"DoctorOpinion",
	"Hospital",
	"RecordID",
	"FileCID",
	"FileHash",
	"Uploader",
	"ConsentGiven",
	"AccessRequests",
	"Latency(ms)",
	"TxCost(ETH)",
}

// Record is one fabricated patient/blockchain row.
type Record struct {
	PatientID      int
	Name           string
	Age            int
	Gender         string
	Country        string
	Diagnosis      string
	ReportType     string
	DoctorOpinion  string
	Hospital       string
	RecordID       string
	FileCID        string
	FileHash       string
	Uploader       string
	ConsentGiven   bool
	AccessRequests int
	LatencyMS      int
	TxCostETH      float64
}

// Row returns the CSV cells in Header order.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.PatientID),
		r.Name,
		strconv.Itoa(r.Age),
		r.Gender,
		r.Country,
		r.Diagnosis,
		r.ReportType,
		r.DoctorOpinion,
		r.Hospital,
		r.RecordID,
		r.FileCID,
		r.FileHash,
		r.Uploader,
		strconv.FormatBool(r.ConsentGiven),
		strconv.Itoa(r.AccessRequests),
		strconv.Itoa(r.LatencyMS),
		strconv.FormatFloat(r.TxCostETH, 'f', -1, 64),
	}
}

func recordID(i int) string {
	return fmt.Sprintf("rec%05d", i)
}

func fileCID(i int) string {
	return fmt.Sprintf("cid%05d", i)
}

func fileHash(i int) string {
	return fmt.Sprintf("hash%08d", i)
}
