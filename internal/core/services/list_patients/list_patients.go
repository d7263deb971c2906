package listpatients

import (
	"context"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

type Input struct {
	Admin admin.Admin
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct {
	Patients []patient.Patient
}

type service struct {
	log               logging.Logger
	patientRepository patient.Repository
}

func New(
	log logging.Logger,
	patientRepository patient.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if patientRepository == nil {
		panic(e.NewNilArgumentError("patientRepository"))
	}
	return &service{
		log:               log,
		patientRepository: patientRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	patients, err := s.patientRepository.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Patients: patients}, nil
}
