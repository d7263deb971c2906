package uow

import (
	"context"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	uow "github.com/ezabolo/SMS-reminder-app/internal/core/domain/unit_of_work"
	dbadmin "github.com/ezabolo/SMS-reminder-app/internal/db/admin"
	dbpatient "github.com/ezabolo/SMS-reminder-app/internal/db/patient"
	dbreminder "github.com/ezabolo/SMS-reminder-app/internal/db/reminder"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Admins() admin.AdminRepository {
	return dbadmin.NewPgxAdminRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Sessions() admin.SessionRepository {
	return dbadmin.NewPgxSessionRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Patients() patient.Repository {
	return dbpatient.NewPgxPatientRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Reminders() reminder.Repository {
	return dbreminder.NewPgxReminderRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
