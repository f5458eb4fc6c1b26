package models

// ChatMessage is one turn of a Mutawwif conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	ClientID string `json:"clientId"` // opaque per-browser identifier
	Text     string `json:"text"`
}

// ChatResponse is the assistant's reply to the frontend.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatContext is the recent transcript kept per client between requests.
type ChatContext struct {
	Messages []ChatMessage `json:"messages"`
}

// Trim drops the oldest messages so at most max remain.
func (c *ChatContext) Trim(max int) {
	if max > 0 && len(c.Messages) > max {
		c.Messages = c.Messages[len(c.Messages)-max:]
	}
}
