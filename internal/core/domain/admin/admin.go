package admin

import (
	"time"
)

type ID int64

type RawPassword string

type PasswordHash string

type SessionToken string

type Admin struct {
	ID           ID
	Username     string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type CreateAdminInput struct {
	Username     string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type CreateSessionInput struct {
	Token     SessionToken
	AdminID   ID
	CreatedAt time.Time
}
