package sendtestsms

import (
	"context"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

const testMessageText = "This is a test message from the appointment reminder service."

type Input struct {
	Admin       admin.Admin
	PhoneNumber sms.PhoneNumber
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct {
	MessageID sms.MessageID
}

type service struct {
	log         logging.Logger
	smsSender   sms.Sender
	sendTimeout time.Duration
}

// New creates a service that sends a fixed test message, used to verify
// the SMS transport configuration end to end.
func New(
	log logging.Logger,
	smsSender sms.Sender,
	sendTimeout time.Duration,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if smsSender == nil {
		panic(e.NewNilArgumentError("smsSender"))
	}
	return &service{
		log:         log,
		smsSender:   smsSender,
		sendTimeout: sendTimeout,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	messageID, err := s.smsSender.Send(sendCtx, input.PhoneNumber, testMessageText)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send test SMS.",
			logging.Entry("phoneNumber", input.PhoneNumber),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Test SMS sent.",
		logging.Entry("phoneNumber", input.PhoneNumber),
		logging.Entry("messageId", messageID),
		logging.Entry("adminId", input.Admin.ID),
	)
	return Result{MessageID: messageID}, nil
}
