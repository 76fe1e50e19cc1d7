/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import "github.com/humaidq/ehrkit/pyrand"

// Value pools. Their order is part of the output: reordering an entry
// changes which value a given draw selects.
var (
	firstNames = []string{
		"John", "Jane", "Alex", "Emily", "Michael", "Sarah", "David", "Laura", "Chris", "Anna",
		"Robert", "Olivia", "James", "Linda", "Daniel", "Sophia", "Matthew", "Emma", "Andrew", "Grace",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Garcia", "Rodriguez", "Wilson",
		"Martinez", "Anderson", "Taylor", "Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson", "White",
	}
	countries = []string{
		"USA", "UK", "Canada", "Australia", "India", "Germany", "France", "Spain", "Italy", "Netherlands",
	}
	diagnoses = []string{
		"Diabetes", "Hypertension", "Asthma", "COPD", "Fracture", "Cancer", "Flu", "Pneumonia", "Hyponatremia", "Migraine",
	}
	reportTypes    = []string{"Lab", "Imaging", "Report", "Prescription", "Procedure"}
	doctorOpinions = []string{"Stable", "Improved", "Critical", "Needs follow-up"}
	hospitals      = []string{
		"General Hospital", "City Clinic", "St Mary's", "County Medical Center", "Central Hospital", "Northside Clinic",
	}

	genders       = []string{"M", "F", "O"}
	genderWeights = pyrand.Cumulative(45, 45, 10)

	consentValues  = []bool{true, false}
	consentWeights = pyrand.Cumulative(90, 10)
)

const (
	hexDigits     = "0123456789abcdef"
	uploaderBytes = 40
	uploaderHead  = "0x"
)
