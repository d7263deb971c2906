package login

import (
	"context"
	"testing"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"

	"github.com/stretchr/testify/require"
)

const (
	USERNAME      = "office-admin"
	PASSWORD      = "secret-password"
	SESSION_TOKEN = "test-session-token"
)

var NOW = time.Date(2025, 2, 2, 15, 30, 0, 0, time.UTC)

type suite struct {
	log            *logging.FakeLogger
	adminRepo      *admin.FakeAdminRepository
	sessionRepo    *admin.FakeSessionRepository
	hasher         *admin.FakePasswordHasher
	tokenGenerator *admin.FakeSessionTokenGenerator
}

func setupSuite() *suite {
	adminRepo := admin.NewFakeAdminRepository()
	return &suite{
		log:            logging.NewFakeLogger(),
		adminRepo:      adminRepo,
		sessionRepo:    admin.NewFakeSessionRepository(adminRepo),
		hasher:         admin.NewFakePasswordHasher(),
		tokenGenerator: admin.NewFakeSessionTokenGenerator(SESSION_TOKEN),
	}
}

func (s *suite) createAdmin(username, password string) admin.Admin {
	hash, err := s.hasher.HashPassword(admin.RawPassword(password))
	if err != nil {
		panic(err)
	}
	a, err := s.adminRepo.Create(context.Background(), admin.CreateAdminInput{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	if err != nil {
		panic(err)
	}
	return a
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.adminRepo, s.sessionRepo, s.hasher, s.tokenGenerator, func() time.Time { return NOW })
}

func TestSuccessfulLogIn(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	a := suite.createAdmin(USERNAME, PASSWORD)
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{Username: USERNAME, Password: admin.RawPassword(PASSWORD)},
	)

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, admin.SessionToken(SESSION_TOKEN), result.Token)
	require.Equal(t, map[admin.SessionToken]admin.ID{SESSION_TOKEN: a.ID}, suite.sessionRepo.AdminIDByToken)
}

func TestUnknownUsername(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.createAdmin(USERNAME, PASSWORD)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Username: "other-admin", Password: admin.RawPassword(PASSWORD)},
	)

	// Verify ---
	require.ErrorIs(t, err, admin.ErrInvalidCredentials)
	require.Empty(t, suite.sessionRepo.AdminIDByToken)
}

func TestInvalidPassword(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.createAdmin(USERNAME, PASSWORD)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Username: USERNAME, Password: admin.RawPassword("invalid-password")},
	)

	// Verify ---
	require.ErrorIs(t, err, admin.ErrInvalidCredentials)
	require.Empty(t, suite.sessionRepo.AdminIDByToken)
}

func TestSessionCreationFails(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.createAdmin(USERNAME, PASSWORD)
	suite.sessionRepo.ReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Username: USERNAME, Password: admin.RawPassword(PASSWORD)},
	)

	// Verify ---
	require.Error(t, err)
	require.NotErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestRateLimitKeyIncludesUsername(t *testing.T) {
	input := Input{Username: USERNAME}
	require.Equal(t, "log-in::"+USERNAME, input.GetRateLimitKey())
}
