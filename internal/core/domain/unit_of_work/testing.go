package uow

import (
	"context"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
)

// FakeUnitOfWork hands out the same in-memory repositories for every
// transaction; Commit and Rollback only count invocations.
type FakeUnitOfWork struct {
	AdminRepository    *admin.FakeAdminRepository
	SessionRepository  *admin.FakeSessionRepository
	PatientRepository  *patient.FakeRepository
	ReminderRepository *reminder.FakeRepository

	Commits   int
	Rollbacks int
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	admins := admin.NewFakeAdminRepository()
	patients := patient.NewFakeRepository()
	return &FakeUnitOfWork{
		AdminRepository:    admins,
		SessionRepository:  admin.NewFakeSessionRepository(admins),
		PatientRepository:  patients,
		ReminderRepository: reminder.NewFakeRepository(patients),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u, nil
}

func (u *FakeUnitOfWork) Commit(ctx context.Context) error {
	u.Commits++
	return nil
}

func (u *FakeUnitOfWork) Rollback(ctx context.Context) error {
	u.Rollbacks++
	return nil
}

func (u *FakeUnitOfWork) Admins() admin.AdminRepository {
	return u.AdminRepository
}

func (u *FakeUnitOfWork) Sessions() admin.SessionRepository {
	return u.SessionRepository
}

func (u *FakeUnitOfWork) Patients() patient.Repository {
	return u.PatientRepository
}

func (u *FakeUnitOfWork) Reminders() reminder.Repository {
	return u.ReminderRepository
}
