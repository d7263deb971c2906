package patient

import (
	c "github.com/ezabolo/SMS-reminder-app/internal/core/domain/common"
	"time"
)

type ID int64

const (
	MaxNameLength        = 100
	MaxPhoneNumberLength = 20
	MaxEmailLength       = 120
)

type Patient struct {
	ID          ID
	Name        string
	PhoneNumber string
	Email       c.Optional[string]
	CreatedAt   time.Time
}

type CreateInput struct {
	Name        string
	PhoneNumber string
	Email       c.Optional[string]
	CreatedAt   time.Time
}
