package uow

import (
	"context"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Admins() admin.AdminRepository
	Sessions() admin.SessionRepository
	Patients() patient.Repository
	Reminders() reminder.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
