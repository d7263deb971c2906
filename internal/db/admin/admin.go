package admin

import (
	"context"
	"errors"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const USERNAME_CONSTRAINT_NAME = "admin_username_idx"

type PgxAdminRepository struct {
	db db.Querier
}

func NewPgxAdminRepository(db db.Querier) *PgxAdminRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxAdminRepository{db: db}
}

func (r *PgxAdminRepository) Create(ctx context.Context, input admin.CreateAdminInput) (a admin.Admin, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO admin (username, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, username, password_hash, created_at`,
		input.Username,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	a, err = scanAdmin(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == USERNAME_CONSTRAINT_NAME {
			return a, admin.ErrAdminAlreadyExists
		}
	}
	return a, err
}

func (r *PgxAdminRepository) GetByUsername(ctx context.Context, username string) (a admin.Admin, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, created_at FROM admin WHERE username = $1`,
		username,
	)
	a, err = scanAdmin(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, admin.ErrAdminDoesNotExist
	}
	return a, err
}

func scanAdmin(row pgx.Row) (a admin.Admin, err error) {
	var id int64
	var passwordHash string
	err = row.Scan(&id, &a.Username, &passwordHash, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	a.ID = admin.ID(id)
	a.PasswordHash = admin.PasswordHash(passwordHash)
	return a, nil
}
