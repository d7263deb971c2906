package admin

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type SessionTokenGenerator interface {
	GenerateToken() SessionToken
}
