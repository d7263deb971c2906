package admin

import (
	"context"
	"errors"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.Querier
}

func NewPgxSessionRepository(db db.Querier) *PgxSessionRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxSessionRepository{db: db}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input admin.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO admin_session (token, admin_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.AdminID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetAdminByToken(
	ctx context.Context,
	token admin.SessionToken,
) (a admin.Admin, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT a.id, a.username, a.password_hash, a.created_at
		 FROM admin AS a
		 JOIN admin_session AS s ON s.admin_id = a.id
		 WHERE s.token = $1`,
		string(token),
	)
	a, err = scanAdmin(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, admin.ErrSessionDoesNotExist
	}
	return a, err
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token admin.SessionToken) (admin.ID, error) {
	row := r.db.QueryRow(
		ctx,
		`DELETE FROM admin_session WHERE token = $1 RETURNING admin_id`,
		string(token),
	)
	var adminID int64
	err := row.Scan(&adminID)
	if errors.Is(err, pgx.ErrNoRows) {
		return admin.ID(0), admin.ErrSessionDoesNotExist
	}
	return admin.ID(adminID), err
}
