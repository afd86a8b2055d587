package models

// ChatRequest is a conversational tax question. CalculationID is
// optional; when set and still resolvable, the stored calculation is
// used as additional context for the answer.
type ChatRequest struct {
	Message       string `json:"message"`
	CalculationID string `json:"calculation_id,omitempty"`
}

// ChatResponse carries the assistant's answer. ContextUsed reports
// whether a stored calculation was injected into the prompt.
type ChatResponse struct {
	Response    string `json:"response"`
	ContextUsed bool   `json:"context_used"`
}
