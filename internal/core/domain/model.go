package domain

// Message is a decoded inbound chat event, or a stored message fetched back from the platform.
type Message struct {
	// Channel is the origin channel identifier, empty when the event carries none.
	Channel         string
	User            string
	Timestamp       string
	ThreadTimestamp string
	Text            string
	// SubType is empty for plain new messages. Edits, joins and bot posts carry one.
	SubType string
}

// IsPlain reports whether the message is a plain new message without a subtype.
func (m *Message) IsPlain() bool {
	return m.SubType == ""
}

// ThreadID returns the parent thread timestamp, or the message's own timestamp when it starts a new thread.
func (m *Message) ThreadID() string {
	if m.ThreadTimestamp != "" {
		return m.ThreadTimestamp
	}

	return m.Timestamp
}

// ReplyTarget returns the channel and thread a reply to this message should be posted to.
func (m *Message) ReplyTarget() (ReplyTarget, error) {
	if m.Channel == "" {
		return ReplyTarget{}, ErrMissingChannel
	}

	return ReplyTarget{Channel: m.Channel, Thread: m.ThreadID()}, nil
}

// ReplyTarget addresses an outbound reply.
type ReplyTarget struct {
	Channel string
	Thread  string
}

type BotIdentity struct {
	UserID string
	BotID  string
	Name   string
	TeamID string
}

// Marker returns the mention string users prefix commands with, e.g. "<@U123>".
func (b BotIdentity) Marker() (string, error) {
	if b.UserID == "" {
		return "", ErrMissingBotUser
	}

	return "<@" + b.UserID + ">", nil
}

// Issue is a ticket to be filed with an external tracker.
type Issue struct {
	Project     string
	Title       string
	Description string
	Link        string
}
