package logout

import (
	"context"
	"errors"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
)

type Input struct {
	Token admin.SessionToken
}

type Result struct{}

type service struct {
	log               logging.Logger
	sessionRepository admin.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository admin.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	adminID, err := s.sessionRepository.Delete(ctx, input.Token)
	if errors.Is(err, admin.ErrSessionDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(ctx, "Admin logged out, session deleted.", logging.Entry("adminId", adminID))
	return result, nil
}
