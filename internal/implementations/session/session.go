package session

import (
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateToken() admin.SessionToken {
	return admin.SessionToken(uuid.New().String())
}
