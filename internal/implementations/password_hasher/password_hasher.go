package passwordhasher

import (
	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/admin"

	"golang.org/x/crypto/bcrypt"
)

type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password admin.RawPassword) (hash admin.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte(string(password)+h.secret), h.cost)
	if err != nil {
		return hash, err
	}
	return admin.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password admin.RawPassword, hash admin.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(string(password)+h.secret))
	return err == nil
}
