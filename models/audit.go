package models

import "time"

// Audit log entity types.
const (
	EntityOccurrence = "occurrence"
	EntityParameter  = "parameter"
	EntityDosage     = "dosage"
)

// AuditLog is one entry of GET /api/audit/logs. The populated fields depend
// on the entity type: occurrences carry protocol/urgency/status, parameter
// entries carry the measured values, dosage entries the chemical fields.
type AuditLog struct {
	ID           string    `json:"id"`
	EntityType   string    `json:"entity_type"`
	OperatorName string    `json:"operator_name"`
	Shift        Shift     `json:"shift,omitempty"`
	Timestamp    time.Time `json:"timestamp"`

	Protocol    string `json:"protocol,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
	Urgency     string `json:"urgency,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`

	Ph          *float64 `json:"ph,omitempty"`
	Brix        *float64 `json:"brix,omitempty"`
	Turbidity   *float64 `json:"turbidity,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`

	ChemicalType string   `json:"chemical_type,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	TotalCost    *float64 `json:"total_cost,omitempty"`
}

// AuditFilter narrows GET /api/audit/logs. Zero values mean "no filter";
// the text search over protocol/equipment/operator/chemical/description is
// applied client-side.
type AuditFilter struct {
	EntityType string
	StartDate  *time.Time
	EndDate    *time.Time
}
