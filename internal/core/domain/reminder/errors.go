package reminder

import "errors"

var (
	ErrReminderDoesNotExist   = errors.New("reminder does not exist")
	ErrScheduledTimeMalformed = errors.New("invalid scheduled time, expected format YYYY-MM-DDTHH:MM:SS")
	ErrScheduledTimeInPast    = errors.New("scheduled time must be in the future")
	ErrDayFilterMalformed     = errors.New("invalid date format, use YYYY-MM-DD")
)
