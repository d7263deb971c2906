package createreminder

import (
	"context"
	"testing"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"

	"github.com/stretchr/testify/require"
)

const (
	PATIENT_ID   = patient.ID(1)
	SEND_TIMEOUT = 5 * time.Second
)

var NOW = time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC)

type suite struct {
	log          *logging.FakeLogger
	patientRepo  *patient.FakeRepository
	reminderRepo *reminder.FakeRepository
	smsSender    *sms.FakeSender
}

func setupSuite() *suite {
	patientRepo := patient.NewFakeRepository()
	patientRepo.Patients = []patient.Patient{
		{ID: PATIENT_ID, Name: "John Smith", PhoneNumber: "+12025550101"},
	}
	return &suite{
		log:          logging.NewFakeLogger(),
		patientRepo:  patientRepo,
		reminderRepo: reminder.NewFakeRepository(patientRepo),
		smsSender:    sms.NewFakeSender("test-message-id"),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.patientRepo,
		s.reminderRepo,
		s.smsSender,
		sms.NewMessageFormatter("Artistic Family Dentistry"),
		SEND_TIMEOUT,
		func() time.Time { return NOW },
	)
}

func TestReminderCreatedAndSmsSent(t *testing.T) {
	cases := []struct {
		id         string
		at         string
		expectedAt time.Time
	}{
		{
			id:         "utc suffix",
			at:         "2025-02-03T15:30:00Z",
			expectedAt: time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC),
		},
		{
			id:         "offset converted to utc",
			at:         "2025-02-03T10:30:00-05:00",
			expectedAt: time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC),
		},
		{
			id:         "bare local time treated as utc",
			at:         "2025-02-03T15:30:00",
			expectedAt: time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC),
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			result, err := service.Run(context.Background(), Input{
				PatientID: PATIENT_ID,
				Body:      "Dental cleaning",
				At:        testcase.at,
			})

			// Verify ---
			require.NoError(t, err)
			require.True(t, result.SmsSent)
			require.Equal(t, testcase.expectedAt, result.Reminder.Reminder.At)
			require.Equal(t, reminder.StatusPending, result.Reminder.Reminder.Status)
			require.Equal(t, "John Smith", result.Reminder.Patient.Name)
			require.Len(t, suite.reminderRepo.Reminders, 1)
			require.Equal(t, 1, suite.smsSender.SentCount())
			require.Equal(t, sms.PhoneNumber("+12025550101"), suite.smsSender.LastSent().To)
			require.Contains(t, suite.smsSender.LastSent().Text, "John Smith")
			require.Contains(t, suite.smsSender.LastSent().Text, "Dental cleaning")
		})
	}
}

func TestPatientDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		PatientID: 100,
		Body:      "Dental cleaning",
		At:        "2025-02-03T15:30:00Z",
	})

	// Verify ---
	require.ErrorIs(t, err, patient.ErrPatientDoesNotExist)
	require.Empty(t, suite.reminderRepo.Reminders)
	require.Equal(t, 0, suite.smsSender.SentCount())
}

func TestScheduledTimeMalformed(t *testing.T) {
	cases := []struct {
		id string
		at string
	}{
		{id: "not a time", at: "not-a-time"},
		{id: "date only", at: "2025-02-03"},
		{id: "empty", at: ""},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(context.Background(), Input{
				PatientID: PATIENT_ID,
				Body:      "Dental cleaning",
				At:        testcase.at,
			})

			// Verify ---
			require.ErrorIs(t, err, reminder.ErrScheduledTimeMalformed)
			require.Empty(t, suite.reminderRepo.Reminders)
		})
	}
}

func TestScheduledTimeNotInFuture(t *testing.T) {
	cases := []struct {
		id string
		at string
	}{
		{id: "in the past", at: "2025-02-01T12:00:00Z"},
		{id: "exactly now", at: "2025-02-02T12:00:00Z"},
		{id: "past after offset conversion", at: "2025-02-02T13:00:00+02:00"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(context.Background(), Input{
				PatientID: PATIENT_ID,
				Body:      "Dental cleaning",
				At:        testcase.at,
			})

			// Verify ---
			require.ErrorIs(t, err, reminder.ErrScheduledTimeInPast)
			require.Empty(t, suite.reminderRepo.Reminders)
			require.Equal(t, 0, suite.smsSender.SentCount())
		})
	}
}

func TestPatientCheckedBeforeScheduledTime(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		PatientID: 100,
		Body:      "Dental cleaning",
		At:        "not-a-time",
	})

	// Verify ---
	require.ErrorIs(t, err, patient.ErrPatientDoesNotExist)
}

func TestSmsFailureDoesNotFailRequest(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.smsSender.ReturnError = true
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		PatientID: PATIENT_ID,
		Body:      "Dental cleaning",
		At:        "2025-02-03T15:30:00Z",
	})

	// Verify ---
	require.NoError(t, err)
	require.False(t, result.SmsSent)
	require.Len(t, suite.reminderRepo.Reminders, 1)
	require.Equal(t, reminder.StatusPending, suite.reminderRepo.Reminders[0].Status)
}
