package sendtestsms

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	sendtestsms "github.com/ezabolo/SMS-reminder-app/internal/core/services/send_test_sms"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[sendtestsms.Input, sendtestsms.Result]
}

func New(
	service services.Service[sendtestsms.Input, sendtestsms.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	PhoneNumber string `json:"phone_number"`
}

type Result struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PhoneNumber, validation.Required, validation.Length(0, patient.MaxPhoneNumberLength)),
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

	result, err := h.service.Run(
		r.Context(),
		sendtestsms.Input{PhoneNumber: sms.PhoneNumber(input.PhoneNumber)},
	)
	if errors.Is(err, admin.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	response.Render(
		rw,
		Result{Status: response.StatusSuccess, MessageID: string(result.MessageID)},
		http.StatusOK,
	)
}
