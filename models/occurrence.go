package models

import "time"

// Urgency levels of an occurrence, lowest to highest.
const (
	UrgencyBaixa   = "baixa"
	UrgencyMedia   = "media"
	UrgencyAlta    = "alta"
	UrgencyCritica = "critica"
)

// Urgencies lists the urgency levels in escalation order.
var Urgencies = []string{UrgencyBaixa, UrgencyMedia, UrgencyAlta, UrgencyCritica}

// Lifecycle statuses of an occurrence.
const (
	StatusAberta    = "aberta"
	StatusAndamento = "andamento"
	StatusResolvida = "resolvida"
)

// Occurrence is a logged operational incident as returned by
// GET /api/occurrences. The protocol number is assigned by the backend.
type Occurrence struct {
	ID             string    `json:"id"`
	Protocol       string    `json:"protocol"`
	Equipment      string    `json:"equipment"`
	OccurrenceType string    `json:"occurrence_type"`
	Urgency        string    `json:"urgency"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	OperatorName   string    `json:"operator_name"`
	PhotoBase64    *string   `json:"photo_base64,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewOccurrence is the body of POST /api/occurrences.
type NewOccurrence struct {
	Equipment      string  `json:"equipment"`
	OccurrenceType string  `json:"occurrence_type"`
	Urgency        string  `json:"urgency"`
	Description    string  `json:"description"`
	PhotoBase64    *string `json:"photo_base64,omitempty"`
}
