package chat

import "strings"

// DefaultReplyKeys is the field-priority order used to pull the agent's
// reply out of an untyped backend payload. The backend is unversioned
// and has shipped all four shapes.
var DefaultReplyKeys = []string{"agent_text", "message", "response", "text"}

// DefaultReplyFallback is used when none of the reply keys carry text.
const DefaultReplyFallback = "Response received."

// ReplyResolver selects the agent reply from an untyped response body.
type ReplyResolver struct {
	Keys     []string
	Fallback string
}

// NewReplyResolver returns a resolver with the default key order and
// fallback.
func NewReplyResolver() *ReplyResolver {
	return &ReplyResolver{Keys: DefaultReplyKeys, Fallback: DefaultReplyFallback}
}

// Resolve returns the first non-empty string among the configured keys,
// or the fallback when none is present.
func (r *ReplyResolver) Resolve(payload map[string]any) string {
	for _, key := range r.Keys {
		if value, ok := payload[key]; ok {
			if text, ok := value.(string); ok && strings.TrimSpace(text) != "" {
				return text
			}
		}
	}
	return r.Fallback
}
