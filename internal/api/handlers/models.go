package handlers

// AgentRequest is the request body for the process and chat endpoints.
type AgentRequest struct {
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// AgentResponse is the reply envelope for the process and chat
// endpoints.
type AgentResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
}
