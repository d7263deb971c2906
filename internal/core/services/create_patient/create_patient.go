package createpatient

import (
	"context"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

type Input struct {
	Admin       admin.Admin
	Name        string
	PhoneNumber string
	Email       c.Optional[string]
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct {
	Patient patient.Patient
}

type service struct {
	log               logging.Logger
	patientRepository patient.Repository
	now               func() time.Time
}

func New(
	log logging.Logger,
	patientRepository patient.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if patientRepository == nil {
		panic(e.NewNilArgumentError("patientRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		patientRepository: patientRepository,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdPatient, err := s.patientRepository.Create(ctx, patient.CreateInput{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("name", input.Name))
		return result, err
	}

	s.log.Info(
		ctx,
		"Patient successfully created.",
		logging.Entry("patientId", createdPatient.ID),
		logging.Entry("adminId", input.Admin.ID),
	)
	return Result{Patient: createdPatient}, nil
}
