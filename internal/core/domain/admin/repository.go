package admin

import "context"

type AdminRepository interface {
	Create(ctx context.Context, input CreateAdminInput) (Admin, error)
	GetByUsername(ctx context.Context, username string) (Admin, error)
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetAdminByToken(ctx context.Context, token SessionToken) (Admin, error)
	Delete(ctx context.Context, token SessionToken) (ID, error)
}
