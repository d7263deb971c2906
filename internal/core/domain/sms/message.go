package sms

import (
	"fmt"
	"time"

	"github.com/golang-module/carbon/v2"
)

// MessageFormatter composes the fixed appointment reminder template,
// signed with the configured operator name.
type MessageFormatter struct {
	signature string
}

func NewMessageFormatter(signature string) MessageFormatter {
	return MessageFormatter{signature: signature}
}

// FormatAppointment renders the scheduled time in a human-readable long
// form, e.g. "February 02, 2025 at 03:30 PM".
func (f MessageFormatter) FormatAppointment(patientName string, at time.Time, details string) string {
	formattedTime := carbon.Time2Carbon(at.UTC()).Format("F d, Y \\a\\t h:i A")
	return fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder for your appointment on %s.\n\nDetails: %s\n\nBest regards,\n%s",
		patientName,
		formattedTime,
		details,
		f.signature,
	)
}
