package types

// Sender identifies who produced a conversation message.
type Sender string

// Sender constants for conversation messages.
const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// Message is one turn in the conversational CV-building session. The
// transcript is append-only; messages are never mutated after creation.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// ResumeArtifact is the output of one resume generation: a base64 DOCX
// document plus an HTML preview. Either field may be absent when the
// corresponding backend renderer was unavailable; Note carries the
// backend's explanation in that case.
type ResumeArtifact struct {
	DocxBase64  string `json:"docx_base64,omitempty"`
	PDFBase64   string `json:"pdf_base64,omitempty"`
	HTMLContent string `json:"html_content,omitempty"`
	Note        string `json:"note,omitempty"`
}
