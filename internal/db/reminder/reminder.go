package reminder

import (
	"context"
	"database/sql"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxReminderRepository struct {
	db db.Querier
}

func NewPgxReminderRepository(db db.Querier) *PgxReminderRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxReminderRepository{db: db}
}

func (r *PgxReminderRepository) Create(ctx context.Context, input reminder.CreateInput) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO reminder (patient_id, body, scheduled_at, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, patient_id, body, scheduled_at, status, created_at`,
		int64(input.PatientID),
		input.Body,
		input.At,
		input.Status.String(),
		input.CreatedAt,
	)
	return scanReminder(row)
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) ([]reminder.ReminderWithPatient, error) {
	day := sql.NullTime{Time: options.DayEquals.Value, Valid: options.DayEquals.IsPresent}
	rows, err := r.db.Query(
		ctx,
		`SELECT r.id, r.patient_id, r.body, r.scheduled_at, r.status, r.created_at,
		        p.name, p.phone_number
		 FROM reminder AS r
		 JOIN patient AS p ON p.id = r.patient_id
		 WHERE $1::timestamp IS NULL
		    OR (r.scheduled_at >= $1 AND r.scheduled_at < $1 + INTERVAL '24 hours')
		 ORDER BY r.scheduled_at, r.id`,
		day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]reminder.ReminderWithPatient, 0)
	for rows.Next() {
		var id, patientID int64
		var status string
		var rem reminder.Reminder
		var p reminder.PatientInfo
		err = rows.Scan(
			&id,
			&patientID,
			&rem.Body,
			&rem.At,
			&status,
			&rem.CreatedAt,
			&p.Name,
			&p.PhoneNumber,
		)
		if err != nil {
			return nil, err
		}
		rem.ID = reminder.ID(id)
		rem.PatientID = patient.ID(patientID)
		rem.Status, err = reminder.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		p.ID = rem.PatientID
		reminders = append(reminders, reminder.ReminderWithPatient{Reminder: rem, Patient: p})
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminder WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderDoesNotExist
	}
	return nil
}

func (r *PgxReminderRepository) DeleteByPatientID(ctx context.Context, patientID patient.ID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reminder WHERE patient_id = $1`, int64(patientID))
	return err
}

func scanReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var id, patientID int64
	var status string
	err = row.Scan(&id, &patientID, &rem.Body, &rem.At, &status, &rem.CreatedAt)
	if err != nil {
		return rem, err
	}
	rem.ID = reminder.ID(id)
	rem.PatientID = patient.ID(patientID)
	rem.Status, err = reminder.ParseStatus(status)
	return rem, err
}
