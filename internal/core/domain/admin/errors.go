package admin

import "errors"

var (
	ErrAdminAlreadyExists  = errors.New("admin already exists")
	ErrAdminDoesNotExist   = errors.New("admin does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionDoesNotExist = errors.New("session does not exist")
)
