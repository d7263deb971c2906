package deletereminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/reminder"
	deletereminder "github.com/ezabolo/SMS-reminder-app/internal/core/services/delete_reminder"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *deletereminder.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input deletereminder.Input,
) (result deletereminder.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

func TestDeleteReminderHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		serviceError   error
		expectedStatus int
	}{
		{
			id:             "success",
			url:            "/reminders/1",
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid reminder id",
			url:            "/reminders/abc",
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "reminder does not exist",
			url:            "/reminders/100",
			serviceError:   reminder.ErrReminderDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := &stubService{err: testcase.serviceError}
			router := chi.NewRouter()
			router.Method(http.MethodDelete, "/reminders/{reminderID:[0-9]+}", New(service))

			request := httptest.NewRequest(http.MethodDelete, testcase.url, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			require.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedStatus == http.StatusOK {
				require.Equal(t, reminder.ID(1), service.input.ReminderID)
			}
		})
	}
}
