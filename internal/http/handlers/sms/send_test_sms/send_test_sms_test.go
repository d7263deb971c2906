package sendtestsms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"
	sendtestsms "github.com/ezabolo/SMS-reminder-app/internal/core/services/send_test_sms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *sendtestsms.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input sendtestsms.Input,
) (result sendtestsms.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.MessageID = "test-message-id"
	return result, nil
}

func TestSendTestSmsHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"phone_number": "+12025550101"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid json",
			body:           `{"phone_number": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing phone number",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "sms transport failure",
			body:           `{"phone_number": "+12025550101"}`,
			serviceError:   errors.New("sns: publish failed"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := &stubService{err: testcase.serviceError}
			handler := New(service)

			request := httptest.NewRequest(http.MethodPost, "/test-sms", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			require.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedStatus == http.StatusOK {
				assert.Equal(t, sms.PhoneNumber("+12025550101"), service.input.PhoneNumber)
				assert.Contains(t, recorder.Body.String(), `"message_id":"test-message-id"`)
			}
			if testcase.expectedStatus == http.StatusInternalServerError {
				assert.Contains(t, recorder.Body.String(), "sns: publish failed")
			}
		})
	}
}
