package createpatient

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	createpatient "github.com/ezabolo/SMS-reminder-app/internal/core/services/create_patient"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[createpatient.Input, createpatient.Result]
}

func New(
	service services.Service[createpatient.Input, createpatient.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type Result struct {
	Status  string           `json:"status"`
	Patient response.Patient `json:"patient"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, patient.MaxNameLength)),
		validation.Field(&i.PhoneNumber, validation.Required, validation.Length(0, patient.MaxPhoneNumberLength)),
		validation.Field(&i.Email, is.Email, validation.Length(0, patient.MaxEmailLength)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), createpatient.Input{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       c.NewOptional(input.Email, input.Email != ""),
	})
	if errors.Is(err, admin.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	var respPatient response.Patient
	respPatient.FromDomainType(result.Patient)
	response.Render(rw, Result{Status: response.StatusSuccess, Patient: respPatient}, http.StatusCreated)
}
