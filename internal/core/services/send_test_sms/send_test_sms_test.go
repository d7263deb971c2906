package sendtestsms

import (
	"context"
	"testing"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"

	"github.com/stretchr/testify/require"
)

const PHONE_NUMBER = sms.PhoneNumber("+12025550101")

type suite struct {
	log       *logging.FakeLogger
	smsSender *sms.FakeSender
}

func setupSuite() *suite {
	return &suite{
		log:       logging.NewFakeLogger(),
		smsSender: sms.NewFakeSender("test-message-id"),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.smsSender, 5*time.Second)
}

func TestTestSmsSent(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{PhoneNumber: PHONE_NUMBER})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, sms.MessageID("test-message-id"), result.MessageID)
	require.Equal(t, 1, suite.smsSender.SentCount())
	require.Equal(t, PHONE_NUMBER, suite.smsSender.LastSent().To)
	require.NotEmpty(t, suite.smsSender.LastSent().Text)
}

func TestTransportFailurePropagates(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.smsSender.ReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{PhoneNumber: PHONE_NUMBER})

	// Verify ---
	require.Error(t, err)
	require.Equal(t, 0, suite.smsSender.SentCount())
}
