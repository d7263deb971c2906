package admin

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakeAdminRepository struct {
	Admins      []Admin
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeAdminRepository() *FakeAdminRepository {
	return &FakeAdminRepository{Admins: make([]Admin, 0, 1)}
}

func (r *FakeAdminRepository) Create(ctx context.Context, input CreateAdminInput) (a Admin, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create admin %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Admins {
		if a.Username == input.Username {
			return a, ErrAdminAlreadyExists
		}
		maxID = a.ID
	}
	a = Admin{
		ID:           maxID + 1,
		Username:     input.Username,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Admins = append(r.Admins, a)
	return a, nil
}

func (r *FakeAdminRepository) GetByUsername(ctx context.Context, username string) (a Admin, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Admins {
		if a.Username == username {
			return a, nil
		}
	}
	return a, ErrAdminDoesNotExist
}

func (r *FakeAdminRepository) getByID(id ID) (a Admin, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Admins {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrAdminDoesNotExist
}

type FakeSessionRepository struct {
	AdminIDByToken  map[SessionToken]ID
	AdminRepository *FakeAdminRepository
	ReturnError     bool
	lock            sync.Mutex
}

func NewFakeSessionRepository(adminRepository *FakeAdminRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		AdminIDByToken:  make(map[SessionToken]ID),
		AdminRepository: adminRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.AdminIDByToken[input.Token] = input.AdminID
	return nil
}

func (r *FakeSessionRepository) GetAdminByToken(ctx context.Context, token SessionToken) (a Admin, err error) {
	r.lock.Lock()
	adminID, ok := r.AdminIDByToken[token]
	r.lock.Unlock()
	if !ok {
		return a, ErrSessionDoesNotExist
	}
	a, err = r.AdminRepository.getByID(adminID)
	if err != nil {
		return a, ErrSessionDoesNotExist
	}
	return a, nil
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	adminID, ok := r.AdminIDByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.AdminIDByToken, token)
	return adminID, nil
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateToken() SessionToken {
	return SessionToken(g.Token)
}
