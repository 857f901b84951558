// Package domain contains core concepts of the chat statistics pipeline.
// This file defines the chat export and its messages.
// Messages are immutable once the export has been loaded.
package domain

import "time"

// Header carries the fields every exported message has, whatever its content.
type Header struct {
	ID   int64
	From string
	Date time.Time
}

// Message is either a TextMessage or an OtherMessage.
type Message interface {
	Meta() Header
	isMessage()
}

// TextMessage is a message whose text field is a plain string.
type TextMessage struct {
	Header
	Text string
}

// OtherMessage is anything else: service messages, attachments, formatted
// entity arrays or a null text.
type OtherMessage struct {
	Header
	Kind string
}

func (m TextMessage) Meta() Header  { return m.Header }
func (m OtherMessage) Meta() Header { return m.Header }

func (TextMessage) isMessage()  {}
func (OtherMessage) isMessage() {}

// ChatExport is the ordered list of messages of one exported chat.
type ChatExport struct {
	Name     string
	Messages []Message
}

// Counts returns how many messages are text and how many are something else.
func (c ChatExport) Counts() (text, other int) {
	for _, m := range c.Messages {
		switch m.(type) {
		case TextMessage:
			text++
		case OtherMessage:
			other++
		}
	}
	return text, other
}
