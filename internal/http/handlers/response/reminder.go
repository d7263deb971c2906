package response

import (
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
)

type ReminderPatient struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type Reminder struct {
	ID            int64           `json:"id"`
	PatientID     int64           `json:"patient_id"`
	Message       string          `json:"message"`
	ScheduledTime time.Time       `json:"scheduled_time"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	Patient       ReminderPatient `json:"patient"`
}

func (r *Reminder) FromDomainType(dr reminder.ReminderWithPatient) {
	r.ID = int64(dr.Reminder.ID)
	r.PatientID = int64(dr.Reminder.PatientID)
	r.Message = dr.Reminder.Body
	r.ScheduledTime = dr.Reminder.At
	r.Status = dr.Reminder.Status.String()
	r.CreatedAt = dr.Reminder.CreatedAt
	r.Patient = ReminderPatient{
		ID:          int64(dr.Patient.ID),
		Name:        dr.Patient.Name,
		PhoneNumber: dr.Patient.PhoneNumber,
	}
}
