package createreminder

import (
	"context"
	"errors"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

type Input struct {
	Admin     admin.Admin
	PatientID patient.ID
	Body      string
	// At is the raw scheduled time as submitted by the client. It is
	// parsed only after the patient is known to exist.
	At string
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct {
	Reminder reminder.ReminderWithPatient
	// SmsSent reports whether the reminder text was handed to the SMS
	// transport. The reminder is persisted either way.
	SmsSent bool
}

type service struct {
	log                logging.Logger
	patientRepository  patient.Repository
	reminderRepository reminder.Repository
	smsSender          sms.Sender
	messageFormatter   sms.MessageFormatter
	sendTimeout        time.Duration
	now                func() time.Time
}

func New(
	log logging.Logger,
	patientRepository patient.Repository,
	reminderRepository reminder.Repository,
	smsSender sms.Sender,
	messageFormatter sms.MessageFormatter,
	sendTimeout time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if patientRepository == nil {
		panic(e.NewNilArgumentError("patientRepository"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if smsSender == nil {
		panic(e.NewNilArgumentError("smsSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		patientRepository:  patientRepository,
		reminderRepository: reminderRepository,
		smsSender:          smsSender,
		messageFormatter:   messageFormatter,
		sendTimeout:        sendTimeout,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.patientRepository.GetByID(ctx, input.PatientID)
	if errors.Is(err, patient.ErrPatientDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("patientId", input.PatientID))
		return result, err
	}

	at, err := reminder.ParseScheduledTime(input.At)
	if err != nil {
		return result, err
	}
	if !at.After(s.now()) {
		return result, reminder.ErrScheduledTimeInPast
	}

	createdReminder, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		PatientID: p.ID,
		Body:      input.Body,
		At:        at,
		Status:    reminder.StatusPending,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("patientId", input.PatientID))
		return result, err
	}

	result.Reminder = reminder.ReminderWithPatient{
		Reminder: createdReminder,
		Patient:  reminder.PatientInfo{ID: p.ID, Name: p.Name, PhoneNumber: p.PhoneNumber},
	}
	result.SmsSent = s.sendSms(ctx, p, createdReminder)
	return result, nil
}

// sendSms dispatches the reminder text right away. A transport failure
// is logged but never fails the request, the reminder is already saved.
func (s *service) sendSms(ctx context.Context, p patient.Patient, rem reminder.Reminder) bool {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	text := s.messageFormatter.FormatAppointment(p.Name, rem.At, rem.Body)
	messageID, err := s.smsSender.Send(sendCtx, sms.PhoneNumber(p.PhoneNumber), text)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not send reminder SMS.",
			logging.Entry("reminderId", rem.ID),
			logging.Entry("patientId", p.ID),
			logging.Entry("err", err),
		)
		return false
	}

	s.log.Info(
		ctx,
		"Reminder SMS sent.",
		logging.Entry("reminderId", rem.ID),
		logging.Entry("patientId", p.ID),
		logging.Entry("messageId", messageID),
	)
	return true
}
