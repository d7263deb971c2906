package reminder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/patient"
)

type FakeRepository struct {
	PatientRepository *patient.FakeRepository
	Reminders         []Reminder
	ReturnError       bool
	lock              sync.Mutex
}

func NewFakeRepository(patientRepository *patient.FakeRepository) *FakeRepository {
	return &FakeRepository{
		PatientRepository: patientRepository,
		Reminders:         make([]Reminder, 0, 10),
	}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.ReturnError {
		return rem, fmt.Errorf("could not create reminder %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, rem := range r.Reminders {
		if rem.ID > maxID {
			maxID = rem.ID
		}
	}
	rem = Reminder{
		ID:        maxID + 1,
		PatientID: input.PatientID,
		Body:      input.Body,
		At:        input.At,
		Status:    input.Status,
		CreatedAt: input.CreatedAt,
	}
	r.Reminders = append(r.Reminders, rem)
	return rem, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]ReminderWithPatient, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read reminders")
	}
	r.lock.Lock()
	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if options.DayEquals.IsPresent {
			start := options.DayEquals.Value
			end := start.Add(24 * time.Hour)
			if rem.At.Before(start) || !rem.At.Before(end) {
				continue
			}
		}
		reminders = append(reminders, rem)
	}
	r.lock.Unlock()

	sort.Slice(reminders, func(i, j int) bool {
		if !reminders[i].At.Equal(reminders[j].At) {
			return reminders[i].At.Before(reminders[j].At)
		}
		return reminders[i].ID < reminders[j].ID
	})

	result := make([]ReminderWithPatient, 0, len(reminders))
	for _, rem := range reminders {
		p, err := r.PatientRepository.GetByID(ctx, rem.PatientID)
		if err != nil {
			return nil, err
		}
		result = append(result, ReminderWithPatient{
			Reminder: rem,
			Patient:  PatientInfo{ID: p.ID, Name: p.Name, PhoneNumber: p.PhoneNumber},
		})
	}
	return result, nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, rem := range r.Reminders {
		if rem.ID == id {
			r.Reminders = append(r.Reminders[:ix], r.Reminders[ix+1:]...)
			return nil
		}
	}
	return ErrReminderDoesNotExist
}

func (r *FakeRepository) DeleteByPatientID(ctx context.Context, patientID patient.ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Reminders[:0]
	for _, rem := range r.Reminders {
		if rem.PatientID != patientID {
			kept = append(kept, rem)
		}
	}
	r.Reminders = kept
	return nil
}
