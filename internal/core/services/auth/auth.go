package auth

import (
	"context"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedAdmin(a admin.Admin) Input
}

type service[T Input, S any] struct {
	sessionRepository admin.SessionRepository
	inner             services.Service[T, S]
}

// WithAuthentication resolves the session token from the request context
// to an admin and injects it into the inner service input. Requests
// without a valid session fail with admin.ErrSessionDoesNotExist.
func WithAuthentication[T Input, S any](
	sessionRepository admin.SessionRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		sessionRepository: sessionRepository,
		inner:             inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(admin.SessionToken)
	if !ok {
		return result, admin.ErrSessionDoesNotExist
	}
	a, err := s.sessionRepository.GetAdminByToken(ctx, authToken)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedAdmin(a).(T))
}
