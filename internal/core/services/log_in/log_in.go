package login

import (
	"context"
	"errors"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
)

type Input struct {
	Username string
	Password admin.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in::" + i.Username
}

type Result struct {
	Token admin.SessionToken
}

type service struct {
	log                   logging.Logger
	adminRepository       admin.AdminRepository
	sessionRepository     admin.SessionRepository
	passwordHasher        admin.PasswordHasher
	sessionTokenGenerator admin.SessionTokenGenerator
	now                   func() time.Time
}

func New(
	log logging.Logger,
	adminRepository admin.AdminRepository,
	sessionRepository admin.SessionRepository,
	passwordHasher admin.PasswordHasher,
	sessionTokenGenerator admin.SessionTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if adminRepository == nil {
		panic(e.NewNilArgumentError("adminRepository"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		adminRepository:       adminRepository,
		sessionRepository:     sessionRepository,
		passwordHasher:        passwordHasher,
		sessionTokenGenerator: sessionTokenGenerator,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.adminRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, admin.ErrAdminDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, admin.ErrInvalidCredentials
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("username", input.Username))
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, a.PasswordHash) {
		return result, admin.ErrInvalidCredentials
	}

	sessionToken := s.sessionTokenGenerator.GenerateToken()
	err = s.sessionRepository.Create(ctx, admin.CreateSessionInput{
		Token:     sessionToken,
		AdminID:   a.ID,
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create session token for admin.",
			logging.Entry("adminId", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Admin successfully authenticated, session token created.",
		logging.Entry("adminId", a.ID),
	)
	return Result{Token: sessionToken}, nil
}
