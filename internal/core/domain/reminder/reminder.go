package reminder

import (
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
)

type ID int64

// MaxBodyLength keeps a reminder within a single SMS segment.
const MaxBodyLength = 160

type Reminder struct {
	ID        ID
	PatientID patient.ID
	Body      string
	At        time.Time
	Status    Status
	CreatedAt time.Time
}

type CreateInput struct {
	PatientID patient.ID
	Body      string
	At        time.Time
	Status    Status
	CreatedAt time.Time
}

// PatientInfo is the patient summary joined to a reminder for presentation.
type PatientInfo struct {
	ID          patient.ID
	Name        string
	PhoneNumber string
}

type ReminderWithPatient struct {
	Reminder Reminder
	Patient  PatientInfo
}
