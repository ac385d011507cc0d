package models

import "time"

// Shift identifies one of the three 8-hour operating periods used to bucket
// readings and dosages.
type Shift string

const (
	ShiftA Shift = "A"
	ShiftB Shift = "B"
	ShiftC Shift = "C"
)

// Shifts lists the operating periods in order.
var Shifts = []Shift{ShiftA, ShiftB, ShiftC}

// ParameterReading is one juice-treatment parameter snapshot as returned by
// GET /api/parameters/latest.
type ParameterReading struct {
	ID           string    `json:"id"`
	Ph           float64   `json:"ph"`
	Brix         float64   `json:"brix"`
	Pol          float64   `json:"pol"`
	Turbidity    float64   `json:"turbidity"`
	Temperature  float64   `json:"temperature"`
	Flow         float64   `json:"flow"`
	Shift        Shift     `json:"shift"`
	Notes        string    `json:"notes,omitempty"`
	OperatorName string    `json:"operator_name"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewParameterReading is the body of POST /api/parameters.
type NewParameterReading struct {
	Ph          float64 `json:"ph"`
	Brix        float64 `json:"brix"`
	Pol         float64 `json:"pol"`
	Turbidity   float64 `json:"turbidity"`
	Temperature float64 `json:"temperature"`
	Flow        float64 `json:"flow"`
	Shift       Shift   `json:"shift"`
	Notes       string  `json:"notes,omitempty"`
}

// ParameterStats carries the rolling averages of GET /api/parameters/stats.
type ParameterStats struct {
	AvgPh          float64 `json:"avg_ph"`
	AvgBrix        float64 `json:"avg_brix"`
	AvgPol         float64 `json:"avg_pol"`
	AvgTurbidity   float64 `json:"avg_turbidity"`
	AvgTemperature float64 `json:"avg_temperature"`
	AvgFlow        float64 `json:"avg_flow"`
	Count          int     `json:"count"`
}

// ParameterStatus classifies a reading against its operating range.
type ParameterStatus string

const (
	ParameterOK       ParameterStatus = "ok"
	ParameterWarning  ParameterStatus = "warning"
	ParameterCritical ParameterStatus = "critical"
)

type parameterRange struct {
	min, max float64
}

var parameterRanges = map[string]parameterRange{
	"ph":          {6.8, 7.2},
	"brix":        {14, 18},
	"pol":         {12, 16},
	"turbidity":   {0, 500},
	"temperature": {103, 105},
	"flow":        {1, 1000},
}

// StatusFor classifies value for the named parameter. Values outside the
// operating range are a warning; turbidity above 800 NTU and pH outside
// 6.2-7.8 are critical. Unknown parameter names are reported OK.
func StatusFor(name string, value float64) ParameterStatus {
	r, ok := parameterRanges[name]
	if !ok {
		return ParameterOK
	}

	if value < r.min || value > r.max {
		if name == "turbidity" && value > 800 {
			return ParameterCritical
		}
		if name == "ph" && (value < 6.2 || value > 7.8) {
			return ParameterCritical
		}
		return ParameterWarning
	}
	return ParameterOK
}
