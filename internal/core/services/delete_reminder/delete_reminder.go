package deletereminder

import (
	"context"
	"errors"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

type Input struct {
	Admin      admin.Admin
	ReminderID reminder.ID
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct{}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.reminderRepository.Delete(ctx, input.ReminderID)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderId", input.ReminderID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder deleted.",
		logging.Entry("reminderId", input.ReminderID),
		logging.Entry("adminId", input.Admin.ID),
	)
	return result, nil
}
