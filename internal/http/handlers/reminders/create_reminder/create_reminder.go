package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	createreminder "github.com/ezabolo/SMS-reminder-app/internal/core/services/create_reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	SMS_STATUS_SENT   = "sent"
	SMS_STATUS_FAILED = "failed"
)

type Handler struct {
	service services.Service[createreminder.Input, createreminder.Result]
}

func New(
	service services.Service[createreminder.Input, createreminder.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	PatientID     int64  `json:"patient_id"`
	Message       string `json:"message"`
	ScheduledTime string `json:"scheduled_time"`
}

type reminderWithSmsStatus struct {
	response.Reminder
	SmsStatus string `json:"sms_status"`
}

type Result struct {
	Status   string                `json:"status"`
	Reminder reminderWithSmsStatus `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PatientID, validation.Required),
		validation.Field(&i.Message, validation.Required, validation.Length(0, reminder.MaxBodyLength)),
		validation.Field(&i.ScheduledTime, validation.Required),
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

	result, err := h.service.Run(r.Context(), createreminder.Input{
		PatientID: patient.ID(input.PatientID),
		Body:      input.Message,
		At:        input.ScheduledTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, patient.ErrPatientDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, reminder.ErrScheduledTimeMalformed):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, reminder.ErrScheduledTimeInPast):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	respReminder := reminderWithSmsStatus{SmsStatus: SMS_STATUS_FAILED}
	if result.SmsSent {
		respReminder.SmsStatus = SMS_STATUS_SENT
	}
	respReminder.FromDomainType(result.Reminder)
	response.Render(rw, Result{Status: response.StatusSuccess, Reminder: respReminder}, http.StatusCreated)
}
