package notify

import (
	"context"
	"log"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message. The transport is outside this codebase; the
// default implementation only logs.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	log.Printf("notify: to=%s subject=%q body_len=%d", msg.To, msg.Subject, len(msg.Body))
	return nil
}
