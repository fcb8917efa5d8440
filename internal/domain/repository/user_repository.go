package repository

import (
	"context"

	"buildandbeyond/internal/domain/entity"
)

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Worker, error)
	List(ctx context.Context, isArchitect *bool) ([]*entity.Worker, error)
	UpdateAvailability(ctx context.Context, id, availability string) error
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
}
