package reminder

import (
	"context"
	"testing"
	"time"

	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/db"
	dbpatient "github.com/ezabolo/SMS-reminder-app/internal/db/patient"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC)

type testReminderSuite struct {
	suite.Suite
	pool              *pgxpool.Pool
	patientRepository *dbpatient.PgxPatientRepository
	repository        *PgxReminderRepository
}

func (suite *testReminderSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	if suite.pool == nil {
		suite.T().Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.patientRepository = dbpatient.NewPgxPatientRepository(suite.pool)
	suite.repository = NewPgxReminderRepository(suite.pool)
}

func (suite *testReminderSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testReminderSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxReminderRepository(t *testing.T) {
	suite.Run(t, new(testReminderSuite))
}

func (s *testReminderSuite) createPatient(name string) patient.Patient {
	p, err := s.patientRepository.Create(context.Background(), patient.CreateInput{
		Name:        name,
		PhoneNumber: "+12025550101",
		CreatedAt:   NOW,
	})
	s.Require().Nil(err)
	return p
}

func (s *testReminderSuite) createReminder(p patient.Patient, body string, at time.Time) reminder.Reminder {
	rem, err := s.repository.Create(context.Background(), reminder.CreateInput{
		PatientID: p.ID,
		Body:      body,
		At:        at,
		Status:    reminder.StatusPending,
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
	return rem
}

func (s *testReminderSuite) TestCreate() {
	p := s.createPatient("John Smith")
	at := time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC)

	rem := s.createReminder(p, "Dental cleaning", at)

	s.True(rem.ID > 0)
	s.Equal(p.ID, rem.PatientID)
	s.Equal("Dental cleaning", rem.Body)
	s.Equal(at, rem.At)
	s.Equal(reminder.StatusPending, rem.Status)
	s.Equal(NOW, rem.CreatedAt)
}

func (s *testReminderSuite) TestReadAllOrderedByScheduledTime() {
	p := s.createPatient("John Smith")
	first := s.createReminder(p, "Cleaning", time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC))
	second := s.createReminder(p, "Checkup", time.Date(2025, 2, 2, 15, 30, 0, 0, time.UTC))
	third := s.createReminder(p, "Filling", time.Date(2025, 2, 3, 16, 0, 0, 0, time.UTC))

	reminders, err := s.repository.Read(context.Background(), reminder.ReadOptions{})
	s.Nil(err)
	s.Require().Len(reminders, 3)
	s.Equal(first.ID, reminders[0].Reminder.ID)
	s.Equal(second.ID, reminders[1].Reminder.ID)
	s.Equal(third.ID, reminders[2].Reminder.ID)
	s.Equal(p.ID, reminders[0].Patient.ID)
	s.Equal("John Smith", reminders[0].Patient.Name)
	s.Equal("+12025550101", reminders[0].Patient.PhoneNumber)
}

func (s *testReminderSuite) TestReadFilteredByDay() {
	p := s.createPatient("John Smith")
	s.createReminder(p, "Cleaning", time.Date(2025, 2, 1, 23, 59, 59, 0, time.UTC))
	inDay := s.createReminder(p, "Checkup", time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))
	alsoInDay := s.createReminder(p, "Filling", time.Date(2025, 2, 2, 23, 59, 59, 0, time.UTC))
	s.createReminder(p, "Extraction", time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))

	day := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	reminders, err := s.repository.Read(
		context.Background(),
		reminder.ReadOptions{DayEquals: c.NewOptional(day, true)},
	)
	s.Nil(err)
	s.Require().Len(reminders, 2)
	s.Equal(inDay.ID, reminders[0].Reminder.ID)
	s.Equal(alsoInDay.ID, reminders[1].Reminder.ID)
}

func (s *testReminderSuite) TestDelete() {
	p := s.createPatient("John Smith")
	rem := s.createReminder(p, "Cleaning", time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC))

	err := s.repository.Delete(context.Background(), rem.ID)
	s.Nil(err)

	reminders, err := s.repository.Read(context.Background(), reminder.ReadOptions{})
	s.Nil(err)
	s.Len(reminders, 0)
}

func (s *testReminderSuite) TestDeleteNotFound() {
	err := s.repository.Delete(context.Background(), 100)
	s.ErrorIs(err, reminder.ErrReminderDoesNotExist)
}

func (s *testReminderSuite) TestDeleteByPatientID() {
	p := s.createPatient("John Smith")
	other := s.createPatient("Jane Doe")
	s.createReminder(p, "Cleaning", time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC))
	s.createReminder(p, "Checkup", time.Date(2025, 2, 4, 15, 30, 0, 0, time.UTC))
	kept := s.createReminder(other, "Filling", time.Date(2025, 2, 5, 15, 30, 0, 0, time.UTC))

	err := s.repository.DeleteByPatientID(context.Background(), p.ID)
	s.Nil(err)

	reminders, err := s.repository.Read(context.Background(), reminder.ReadOptions{})
	s.Nil(err)
	s.Require().Len(reminders, 1)
	s.Equal(kept.ID, reminders[0].Reminder.ID)
}
