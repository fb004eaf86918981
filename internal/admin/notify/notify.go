// Package notify delivers transactional email. Sends are always best
// effort: a failed email is logged and never fails the operation that
// triggered it.
package notify

import "context"

// Message kinds, used for logging and metrics.
const (
	KindInvite  = "invite"
	KindWelcome = "welcome"
)

// Message is a rendered email ready to send.
type Message struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Notifier sends a single message synchronously.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher hands a message off for delivery without waiting for it.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message)
}
