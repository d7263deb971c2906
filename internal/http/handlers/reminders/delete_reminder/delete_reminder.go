package deletereminder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	deletereminder "github.com/ezabolo/SMS-reminder-app/internal/core/services/delete_reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deletereminder.Input, deletereminder.Result]
}

func New(
	service services.Service[deletereminder.Input, deletereminder.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Status string `json:"status"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawReminderID := chi.URLParam(r, "reminderID")
	reminderID, err := strconv.ParseInt(rawReminderID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deletereminder.Input{ReminderID: reminder.ID(reminderID)})
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Status: response.StatusSuccess}, http.StatusOK)
}
