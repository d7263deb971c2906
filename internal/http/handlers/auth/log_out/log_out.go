package logout

import (
	"errors"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	logout "github.com/ezabolo/SMS-reminder-app/internal/core/services/log_out"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/auth"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Status string `json:"status"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	_, err := h.service.Run(
		r.Context(),
		logout.Input{Token: token},
	)
	if errors.Is(err, admin.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Status: response.StatusSuccess}, http.StatusOK)
}
