package sms

import "context"

type PhoneNumber string

type MessageID string

// Sender delivers a text message to a phone number via an external
// transport. Implementations must honor ctx cancellation and deadlines.
type Sender interface {
	Send(ctx context.Context, to PhoneNumber, text string) (MessageID, error)
}
