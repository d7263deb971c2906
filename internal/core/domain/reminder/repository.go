package reminder

import (
	"context"
	"time"

	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
)

type ReadOptions struct {
	// DayEquals restricts results to reminders scheduled within the UTC
	// day starting at the given instant.
	DayEquals c.Optional[time.Time]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	// Read returns reminders joined with their patient summary, ordered by
	// scheduled time ascending.
	Read(ctx context.Context, options ReadOptions) ([]ReminderWithPatient, error)
	Delete(ctx context.Context, id ID) error
	DeleteByPatientID(ctx context.Context, patientID patient.ID) error
}
