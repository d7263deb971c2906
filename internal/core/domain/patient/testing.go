package patient

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Patients    []Patient
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Patients: make([]Patient, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Patient, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create patient %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, p := range r.Patients {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	p = Patient{
		ID:          maxID + 1,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		CreatedAt:   input.CreatedAt,
	}
	r.Patients = append(r.Patients, p)
	return p, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Patient, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Patients {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrPatientDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context) ([]Patient, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list patients")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	patients := make([]Patient, len(r.Patients))
	copy(patients, r.Patients)
	sort.Slice(patients, func(i, j int) bool {
		if patients[i].Name != patients[j].Name {
			return patients[i].Name < patients[j].Name
		}
		return patients[i].ID < patients[j].ID
	})
	return patients, nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Patients {
		if p.ID == id {
			r.Patients = append(r.Patients[:ix], r.Patients[ix+1:]...)
			return nil
		}
	}
	return ErrPatientDoesNotExist
}
