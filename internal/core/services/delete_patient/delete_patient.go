package deletepatient

import (
	"context"
	"errors"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/logging"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	uow "github.com/ezabolo/SMS-reminder-app/internal/core/domain/unit_of_work"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services/auth"
)

type Input struct {
	Admin     admin.Admin
	PatientID patient.ID
}

func (i Input) WithAuthenticatedAdmin(a admin.Admin) auth.Input {
	i.Admin = a
	return i
}

type Result struct{}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
	}
}

// Run deletes the patient together with all of their reminders in a
// single transaction.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("patientId", input.PatientID))
		return result, err
	}
	defer uow.Rollback(ctx)

	if err := uow.Reminders().DeleteByPatientID(ctx, input.PatientID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("patientId", input.PatientID))
		return result, err
	}
	err = uow.Patients().Delete(ctx, input.PatientID)
	if errors.Is(err, patient.ErrPatientDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("patientId", input.PatientID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("patientId", input.PatientID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Patient and their reminders deleted.",
		logging.Entry("patientId", input.PatientID),
		logging.Entry("adminId", input.Admin.ID),
	)
	return result, nil
}
