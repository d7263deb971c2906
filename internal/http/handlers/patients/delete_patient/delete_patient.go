package deletepatient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"
	e "github.com/ezabolo/SMS-reminder-app/internal/core/domain/errors"
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
	"github.com/ezabolo/SMS-reminder-app/internal/core/services"
	deletepatient "github.com/ezabolo/SMS-reminder-app/internal/core/services/delete_patient"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deletepatient.Input, deletepatient.Result]
}

func New(
	service services.Service[deletepatient.Input, deletepatient.Result],
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
	rawPatientID := chi.URLParam(r, "patientID")
	patientID, err := strconv.ParseInt(rawPatientID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid patient ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deletepatient.Input{PatientID: patient.ID(patientID)})
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, patient.ErrPatientDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Status: response.StatusSuccess}, http.StatusOK)
}
