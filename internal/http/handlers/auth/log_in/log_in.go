package login

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	ratelimiter "github.com/ezabolo/SMS-reminder-app/internal/core/domain/rate_limiter"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	login "github.com/ezabolo/SMS-reminder-app/internal/core/services/log_in"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[login.Input, login.Result]
}

func New(
	service services.Service[login.Input, login.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Result struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
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
		login.Input{Username: input.Username, Password: admin.RawPassword(input.Password)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, admin.ErrInvalidCredentials) {
		response.RenderError(rw, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Status: response.StatusSuccess, Token: string(result.Token)}, http.StatusOK)
}
