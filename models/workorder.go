package models

import "time"

// Work order priorities.
const (
	PriorityBaixa   = "baixa"
	PriorityMedia   = "media"
	PriorityAlta    = "alta"
	PriorityUrgente = "urgente"
)

// Priorities lists the work order priorities in escalation order.
var Priorities = []string{PriorityBaixa, PriorityMedia, PriorityAlta, PriorityUrgente}

// Work order lifecycle statuses.
const (
	WorkOrderPending    = "pending"
	WorkOrderInProgress = "in_progress"
	WorkOrderCompleted  = "completed"
)

// WorkOrder is a maintenance task assignment as returned by
// GET /api/work-orders. The OS number is assigned by the backend.
type WorkOrder struct {
	ID              string     `json:"id"`
	OSNumber        string     `json:"os_number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Equipment       string     `json:"equipment"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	AssignedTo      string     `json:"assigned_to"`
	AssignedToName  string     `json:"assigned_to_name"`
	CreatedByName   string     `json:"created_by_name"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewWorkOrder is the body of POST /api/work-orders.
type NewWorkOrder struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Equipment   string `json:"equipment"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assigned_to"`
	DueDate     string `json:"due_date,omitempty"`
}

// WorkOrderStats is the payload of GET /api/work-orders/stats/summary.
type WorkOrderStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// OperatorRef is one entry of GET /api/operators/list, used to populate the
// assignee picker when creating a work order.
type OperatorRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Matricula string `json:"matricula"`
}
