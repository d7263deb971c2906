package response

import (
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
)

type Patient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Patient) FromDomainType(dp patient.Patient) {
	p.ID = int64(dp.ID)
	p.Name = dp.Name
	p.PhoneNumber = dp.PhoneNumber
	if dp.Email.IsPresent {
		email := dp.Email.Value
		p.Email = &email
	}
	p.CreatedAt = dp.CreatedAt
}
