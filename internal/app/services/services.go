package services

import (
	"github.com/ezabolo/SMS-reminder-app/internal/app/deps"
	drl "github.com/ezabolo/SMS-reminder-app/internal/core/domain/rate_limiter"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
	createpatient "github.com/ezabolo/SMS-reminder-app/internal/core/services/create_patient"
	createreminder "github.com/ezabolo/SMS-reminder-app/internal/core/services/create_reminder"
	deletepatient "github.com/ezabolo/SMS-reminder-app/internal/core/services/delete_patient"
	deletereminder "github.com/ezabolo/SMS-reminder-app/internal/core/services/delete_reminder"
	listpatients "github.com/ezabolo/SMS-reminder-app/internal/core/services/list_patients"
	listreminders "github.com/ezabolo/SMS-reminder-app/internal/core/services/list_reminders"
	login "github.com/ezabolo/SMS-reminder-app/internal/core/services/log_in"
	logout "github.com/ezabolo/SMS-reminder-app/internal/core/services/log_out"
	ratelimiting "github.com/ezabolo/SMS-reminder-app/internal/core/services/rate_limiting"
	sendtestsms "github.com/ezabolo/SMS-reminder-app/internal/core/services/send_test_sms"
)

type Services struct {
	LogIn  services.Service[login.Input, login.Result]
	LogOut services.Service[logout.Input, logout.Result]

	CreatePatient services.Service[createpatient.Input, createpatient.Result]
	ListPatients  services.Service[listpatients.Input, listpatients.Result]
	DeletePatient services.Service[deletepatient.Input, deletepatient.Result]

	CreateReminder services.Service[createreminder.Input, createreminder.Result]
	ListReminders  services.Service[listreminders.Input, listreminders.Result]
	DeleteReminder services.Service[deletereminder.Input, deletereminder.Result]

	SendTestSms services.Service[sendtestsms.Input, sendtestsms.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.AdminRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)

	s.CreatePatient = auth.WithAuthentication(
		deps.SessionRepository,
		createpatient.New(
			deps.Logger,
			deps.PatientRepository,
			deps.Now,
		),
	)
	s.ListPatients = auth.WithAuthentication(
		deps.SessionRepository,
		listpatients.New(
			deps.Logger,
			deps.PatientRepository,
		),
	)
	s.DeletePatient = auth.WithAuthentication(
		deps.SessionRepository,
		deletepatient.New(
			deps.Logger,
			deps.UnitOfWork,
		),
	)

	s.CreateReminder = auth.WithAuthentication(
		deps.SessionRepository,
		createreminder.New(
			deps.Logger,
			deps.PatientRepository,
			deps.ReminderRepository,
			deps.SmsSender,
			deps.MessageFormatter,
			deps.Config.SmsSendTimeout,
			deps.Now,
		),
	)
	s.ListReminders = auth.WithAuthentication(
		deps.SessionRepository,
		listreminders.New(
			deps.Logger,
			deps.ReminderRepository,
		),
	)
	s.DeleteReminder = auth.WithAuthentication(
		deps.SessionRepository,
		deletereminder.New(
			deps.Logger,
			deps.ReminderRepository,
		),
	)

	s.SendTestSms = auth.WithAuthentication(
		deps.SessionRepository,
		sendtestsms.New(
			deps.Logger,
			deps.SmsSender,
			deps.Config.SmsSendTimeout,
		),
	)

	return s
}
