package patient

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Patient, error)
	GetByID(ctx context.Context, id ID) (Patient, error)
	// List returns all patients ordered by name.
	List(ctx context.Context) ([]Patient, error)
	Delete(ctx context.Context, id ID) error
}
