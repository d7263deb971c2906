package deletepatient

import (
	"context"
	"testing"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	uow "github.com/ezabolo/SMS-reminder-app/internal/core/domain/unit_of_work"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"

	"github.com/stretchr/testify/require"
)

const PATIENT_ID = patient.ID(1)

type suite struct {
	log        *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
}

func setupSuite() *suite {
	unitOfWork := uow.NewFakeUnitOfWork()
	unitOfWork.PatientRepository.Patients = []patient.Patient{
		{ID: PATIENT_ID, Name: "John Smith", PhoneNumber: "+12025550101"},
		{ID: 2, Name: "Jane Doe", PhoneNumber: "+12025550102"},
	}
	at := time.Date(2025, 2, 2, 15, 30, 0, 0, time.UTC)
	unitOfWork.ReminderRepository.Reminders = []reminder.Reminder{
		{ID: 1, PatientID: PATIENT_ID, Body: "Cleaning", At: at, Status: reminder.StatusPending},
		{ID: 2, PatientID: PATIENT_ID, Body: "Checkup", At: at.Add(time.Hour), Status: reminder.StatusPending},
		{ID: 3, PatientID: 2, Body: "Filling", At: at, Status: reminder.StatusPending},
	}
	return &suite{
		log:        logging.NewFakeLogger(),
		unitOfWork: unitOfWork,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.unitOfWork)
}

func TestPatientAndRemindersDeleted(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{PatientID: PATIENT_ID})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, 1, suite.unitOfWork.Commits)
	require.Len(t, suite.unitOfWork.PatientRepository.Patients, 1)
	require.Len(t, suite.unitOfWork.ReminderRepository.Reminders, 1)
	require.Equal(t, patient.ID(2), suite.unitOfWork.ReminderRepository.Reminders[0].PatientID)
}

func TestPatientDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{PatientID: 100})

	// Verify ---
	require.ErrorIs(t, err, patient.ErrPatientDoesNotExist)
	require.Equal(t, 0, suite.unitOfWork.Commits)
	require.Len(t, suite.unitOfWork.PatientRepository.Patients, 2)
}
