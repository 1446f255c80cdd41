// Package chat implements the conversational session controller: it
// owns the server-assigned session id, the append-only transcript, and
// turn-taking between user input and agent replies.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/types"
	"github.com/rohan/voicecv-cli/internal/voiceio"
)

// sendErrorText is appended as an agent message when a send fails, so
// the user's turn stays visible in the transcript.
const sendErrorText = "Error: Unable to process message."

// Controller mediates one conversational CV-building session.
type Controller struct {
	client   *api.Client
	resolver *ReplyResolver

	mu        sync.Mutex
	speaker   voiceio.Speaker
	voiceOn   bool
	sessionID string
	messages  []types.Message
	pending   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeaker sets the text-to-speech engine and enables voice output.
func WithSpeaker(s voiceio.Speaker) Option {
	return func(c *Controller) {
		c.speaker = s
		c.voiceOn = true
	}
}

// WithResolver overrides the reply resolver.
func WithResolver(r *ReplyResolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// NewController creates a controller. The session does not exist until
// CreateSession succeeds.
func NewController(client *api.Client, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		resolver: NewReplyResolver(),
		speaker:  voiceio.NullSpeaker{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateSession requests a new session id from the backend. The id is
// held in memory only; a new controller means a new session. Failure is
// blocking: sends stay no-ops until a session exists.
func (c *Controller) CreateSession(ctx context.Context) error {
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.client.Post(ctx, "/session/create/", nil, &resp); err != nil {
		return &SessionError{Cause: err}
	}
	if resp.SessionID == "" {
		return &SessionError{Cause: fmt.Errorf("backend returned no session_id")}
	}

	c.mu.Lock()
	c.sessionID = resp.SessionID
	c.mu.Unlock()
	return nil
}

// SessionID returns the current session id, or "" before creation.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Busy reports whether a send is outstanding. Callers use it to gate
// the send control; overlapping sends are allowed and unordered.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Messages returns a copy of the transcript in order.
func (c *Controller) Messages() []types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// SendMessage posts one user turn and appends the agent's reply. Blank
// input and missing sessions are no-ops: nothing is appended and no
// request is made. The user message is appended before the request so a
// failed send keeps the turn visible, followed by an inline agent-sender
// error message.
func (c *Controller) SendMessage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		return "", ErrNoSession
	}
	sessionID := c.sessionID
	c.messages = append(c.messages, types.Message{Sender: types.SenderUser, Text: text})
	c.pending = true
	c.mu.Unlock()

	body := map[string]string{"session_id": sessionID, "text": text}
	var payload map[string]any
	err := c.client.Post(ctx, "/process-text/", body, &payload)

	c.mu.Lock()
	c.pending = false
	if err != nil {
		c.messages = append(c.messages, types.Message{Sender: types.SenderAgent, Text: sendErrorText})
		c.mu.Unlock()
		return "", fmt.Errorf("send failed: %w", err)
	}

	reply := c.resolver.Resolve(payload)
	c.messages = append(c.messages, types.Message{Sender: types.SenderAgent, Text: reply})
	speak := c.voiceOn
	speaker := c.speaker
	c.mu.Unlock()

	if speak {
		speaker.Speak(reply)
	}
	return reply, nil
}

// AppendAgentNote appends an agent-sender status message without a
// network round trip (resume generation progress, errors).
func (c *Controller) AppendAgentNote(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, types.Message{Sender: types.SenderAgent, Text: text})
}

// SetVoiceOutput toggles voice output. Turning it off cancels any
// in-flight utterance immediately; nothing queued survives.
func (c *Controller) SetVoiceOutput(enabled bool) {
	c.mu.Lock()
	c.voiceOn = enabled
	speaker := c.speaker
	c.mu.Unlock()

	if !enabled {
		speaker.Cancel()
	}
}

// VoiceOutput reports whether voice output is enabled.
func (c *Controller) VoiceOutput() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voiceOn
}

// Speaking reports whether the speaker is mid-utterance.
func (c *Controller) Speaking() bool {
	c.mu.Lock()
	speaker := c.speaker
	c.mu.Unlock()
	return speaker.Speaking()
}
