package models

// ChatRequest is the body of POST /api/chat. SessionID is empty on the
// first message; the backend assigns one and the client echoes it back to
// keep conversation context.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the assistant's answer. RiskLevel is one of
// BAIXO/MÉDIO/ALTO/CRÍTICO; Escalate asks the operator to involve a
// supervisor.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	RiskLevel string `json:"risk_level"`
	Escalate  bool   `json:"escalate"`
}
