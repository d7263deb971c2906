package sms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAppointment(t *testing.T) {
	formatter := NewMessageFormatter("Artistic Family Dentistry")

	message := formatter.FormatAppointment(
		"John Doe",
		time.Date(2025, 2, 2, 15, 30, 0, 0, time.UTC),
		"Regular checkup",
	)

	assert.Equal(
		t,
		"Hello John Doe,\n\n"+
			"This is a reminder for your appointment on February 02, 2025 at 03:30 PM.\n\n"+
			"Details: Regular checkup\n\n"+
			"Best regards,\nArtistic Family Dentistry",
		message,
	)
}

func TestFormatAppointmentConvertsToUTC(t *testing.T) {
	formatter := NewMessageFormatter("Clinic")

	message := formatter.FormatAppointment(
		"Jane",
		time.Date(2025, 2, 2, 10, 30, 0, 0, time.FixedZone("EST", -5*3600)),
		"Cleaning",
	)

	assert.Contains(t, message, "February 02, 2025 at 03:30 PM")
}
