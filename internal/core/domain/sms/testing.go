package sms

import (
	"context"
	"errors"
	"sync"
)

type SentMessage struct {
	To   PhoneNumber
	Text string
}

type FakeSender struct {
	Sent        []SentMessage
	MessageID   MessageID
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender(messageID string) *FakeSender {
	return &FakeSender{MessageID: MessageID(messageID)}
}

func (s *FakeSender) Send(ctx context.Context, to PhoneNumber, text string) (MessageID, error) {
	if s.ReturnError {
		return "", errors.New("sms transport failure")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentMessage{To: to, Text: text})
	return s.MessageID, nil
}

func (s *FakeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeSender) LastSent() SentMessage {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.Sent) == 0 {
		panic("no messages sent")
	}
	return s.Sent[len(s.Sent)-1]
}
