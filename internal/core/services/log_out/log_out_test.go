package logout

import (
	"context"
	"testing"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"

	"github.com/stretchr/testify/require"
)

const SESSION_TOKEN = "test-session-token"

type suite struct {
	log         *logging.FakeLogger
	sessionRepo *admin.FakeSessionRepository
}

func setupSuite() *suite {
	adminRepo := admin.NewFakeAdminRepository()
	adminRepo.Admins = []admin.Admin{{ID: 1, Username: "office-admin"}}
	sessionRepo := admin.NewFakeSessionRepository(adminRepo)
	sessionRepo.Create(context.Background(), admin.CreateSessionInput{
		Token:     SESSION_TOKEN,
		AdminID:   1,
		CreatedAt: time.Now().UTC(),
	})
	return &suite{
		log:         logging.NewFakeLogger(),
		sessionRepo: sessionRepo,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.sessionRepo)
}

func TestSessionDeleted(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	// Verify ---
	require.NoError(t, err)
	require.Empty(t, suite.sessionRepo.AdminIDByToken)
}

func TestUnknownSessionToken(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: "unknown-token"})

	// Verify ---
	require.ErrorIs(t, err, admin.ErrSessionDoesNotExist)
	require.Len(t, suite.sessionRepo.AdminIDByToken, 1)
}
