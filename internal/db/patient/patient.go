package patient

import (
	"context"
	"database/sql"
	"errors"

	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxPatientRepository struct {
	db db.Querier
}

func NewPgxPatientRepository(db db.Querier) *PgxPatientRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxPatientRepository{db: db}
}

func (r *PgxPatientRepository) Create(ctx context.Context, input patient.CreateInput) (p patient.Patient, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO patient (name, phone_number, email, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, phone_number, email, created_at`,
		input.Name,
		input.PhoneNumber,
		encodeEmail(input.Email),
		input.CreatedAt,
	)
	return scanPatient(row)
}

func (r *PgxPatientRepository) GetByID(ctx context.Context, id patient.ID) (p patient.Patient, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, phone_number, email, created_at FROM patient WHERE id = $1`,
		int64(id),
	)
	p, err = scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, patient.ErrPatientDoesNotExist
	}
	return p, err
}

func (r *PgxPatientRepository) List(ctx context.Context) ([]patient.Patient, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, phone_number, email, created_at FROM patient ORDER BY name, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]patient.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *PgxPatientRepository) Delete(ctx context.Context, id patient.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patient WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return patient.ErrPatientDoesNotExist
	}
	return nil
}

func encodeEmail(email c.Optional[string]) sql.NullString {
	return sql.NullString{String: email.Value, Valid: email.IsPresent}
}

func scanPatient(row pgx.Row) (p patient.Patient, err error) {
	var id int64
	var email sql.NullString
	err = row.Scan(&id, &p.Name, &p.PhoneNumber, &email, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	p.ID = patient.ID(id)
	p.Email = c.NewOptional(email.String, email.Valid)
	return p, nil
}
