package models

import "time"

// Dosage is a logged chemical application event as returned by
// GET /api/dosage. TotalCost is computed by the backend.
type Dosage struct {
	ID           string    `json:"id"`
	ChemicalType string    `json:"chemical_type"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	CostPerUnit  float64   `json:"cost_per_unit"`
	TotalCost    float64   `json:"total_cost"`
	Shift        Shift     `json:"shift"`
	Notes        string    `json:"notes,omitempty"`
	OperatorName string    `json:"operator_name"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewDosage is the body of POST /api/dosage.
type NewDosage struct {
	ChemicalType string  `json:"chemical_type"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Shift        Shift   `json:"shift"`
	Notes        string  `json:"notes,omitempty"`
}

// ChemicalTotals aggregates consumption for one chemical type.
type ChemicalTotals struct {
	TotalQuantity float64 `json:"total_quantity"`
	TotalCost     float64 `json:"total_cost"`
	Count         int     `json:"count"`
}

// DosageStats is the payload of GET /api/dosage/stats, keyed by
// chemical type.
type DosageStats map[string]ChemicalTotals

// DailyDosage is one entry of GET /api/dosage/daily.
type DailyDosage struct {
	Date          string  `json:"date"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalCost     float64 `json:"total_cost"`
}
