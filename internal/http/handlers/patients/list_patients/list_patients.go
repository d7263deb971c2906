package listpatients

import (
	"errors"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	listpatients "github.com/ezabolo/SMS-reminder-app/internal/core/services/list_patients"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listpatients.Input, listpatients.Result]
}

func New(
	service services.Service[listpatients.Input, listpatients.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Status   string             `json:"status"`
	Patients []response.Patient `json:"patients"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listpatients.Input{})
	if errors.Is(err, admin.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respPatients := make([]response.Patient, 0, len(result.Patients))
	for _, p := range result.Patients {
		var respPatient response.Patient
		respPatient.FromDomainType(p)
		respPatients = append(respPatients, respPatient)
	}
	response.Render(rw, Result{Status: response.StatusSuccess, Patients: respPatients}, http.StatusOK)
}
