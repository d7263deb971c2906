package app

import (
	"fmt"
	"net/http"

	"github.com/ezabolo/SMS-reminder-app/internal/app/deps"
	"github.com/ezabolo/SMS-reminder-app/internal/app/services"
	"github.com/ezabolo/SMS-reminder-app/internal/http/handlers/auth"
	login "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/auth/log_in"
	logout "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/auth/log_out"
	createpatient "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/patients/create_patient"
	deletepatient "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/patients/delete_patient"
	listpatients "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/patients/list_patients"
	createreminder "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/reminders/create_reminder"
	deletereminder "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/reminders/delete_reminder"
	listreminders "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/reminders/list_reminders"
	sendtestsms "github.com/ezabolo/SMS-reminder-app/internal/http/handlers/sms/send_test_sms"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))

	patientsRouter := chi.NewRouter()
	patientsRouter.Use(auth.SetAuthTokenToContext)
	patientsRouter.Method(http.MethodGet, "/", listpatients.New(s.ListPatients))
	patientsRouter.Method(http.MethodPost, "/", createpatient.New(s.CreatePatient))
	patientsRouter.Method(http.MethodDelete, "/{patientID:[0-9]+}", deletepatient.New(s.DeletePatient))

	remindersRouter := chi.NewRouter()
	remindersRouter.Use(auth.SetAuthTokenToContext)
	remindersRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	remindersRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	remindersRouter.Method(http.MethodDelete, "/{reminderID:[0-9]+}", deletereminder.New(s.DeleteReminder))

	smsRouter := chi.NewRouter()
	smsRouter.Use(auth.SetAuthTokenToContext)
	smsRouter.Method(http.MethodPost, "/", sendtestsms.New(s.SendTestSms))

	apiRouter := chi.NewRouter()
	apiRouter.Mount("/auth", authRouter)
	apiRouter.Mount("/patients", patientsRouter)
	apiRouter.Mount("/reminders", remindersRouter)
	apiRouter.Mount("/test-sms", smsRouter)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api", apiRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
