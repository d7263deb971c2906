package listreminders

import (
	"errors"
	"net/http"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	listreminders "github.com/ezabolo/SMS-reminder-app/internal/core/services/list_reminders"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listreminders.Input, listreminders.Result]
}

func New(
	service services.Service[listreminders.Input, listreminders.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Status    string              `json:"status"`
	Count     int                 `json:"count"`
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	day, err := parseDate(rawDate)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), listreminders.Input{Day: day})
	if errors.Is(err, admin.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respReminders := make([]response.Reminder, 0, len(result.Reminders))
	for _, rem := range result.Reminders {
		var respReminder response.Reminder
		respReminder.FromDomainType(rem)
		respReminders = append(respReminders, respReminder)
	}
	response.Render(
		rw,
		Result{Status: response.StatusSuccess, Count: len(respReminders), Reminders: respReminders},
		http.StatusOK,
	)
}

func parseDate(raw string) (day c.Optional[time.Time], err error) {
	if raw == "" {
		return day, nil
	}
	startOfDay, err := reminder.ParseDayFilter(raw)
	if err != nil {
		return day, err
	}
	return c.NewOptional(startOfDay, true), nil
}
