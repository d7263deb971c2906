package listreminders

import (
	"context"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

type Input struct {
	Admin admin.Admin
	// Day restricts the listing to reminders scheduled within the UTC day
	// starting at the given instant.
	Day c.Optional[time.Time]
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct {
	Reminders []reminder.ReminderWithPatient
}

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
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{DayEquals: input.Day})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Reminders: reminders}, nil
}
