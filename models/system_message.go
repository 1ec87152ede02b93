package models

type MessageType string

const (
	MessageInfo    MessageType = "info"
	MessageWarning MessageType = "warning"
	MessageError   MessageType = "error"
	MessageSuccess MessageType = "success"
)

// SystemMessage is the single process-wide broadcast banner.
// At most one is active; replacing or clearing it is the only mutation.
type SystemMessage struct {
	ID     string      `json:"id" yaml:"id"`
	Text   string      `json:"text" yaml:"text"`
	Type   MessageType `json:"type" yaml:"type"`
	Active bool        `json:"active" yaml:"active"`
}
