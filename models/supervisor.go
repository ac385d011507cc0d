package models

// FailureCount is one row of the top-failure ranking.
type FailureCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// SupervisorDashboard is the payload of GET /api/supervisor/dashboard.
type SupervisorDashboard struct {
	// Efficiency is the treatment efficiency KPI in percent.
	Efficiency float64 `json:"efficiency"`

	// CriticalOccurrences lists the open critical occurrences.
	CriticalOccurrences []Occurrence `json:"critical_occurrences"`

	// Shifts maps shift letter to the number of parameter deviations
	// recorded during that shift.
	Shifts map[string]int `json:"shifts"`

	// TopFailures ranks occurrence types by frequency.
	TopFailures []FailureCount `json:"top_failures"`
}

// WeeklyTrend is one day of GET /api/supervisor/weekly-trends.
type WeeklyTrend struct {
	Date         string  `json:"date"`
	AvgPh        float64 `json:"avg_ph"`
	AvgBrix      float64 `json:"avg_brix"`
	AvgTurbidity float64 `json:"avg_turbidity"`
	Occurrences  int     `json:"occurrences"`
}
