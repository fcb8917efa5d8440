package repository

import (
	"context"

	"buildandbeyond/internal/domain/entity"
)

// ApplicationRepository stores worker-to-company job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.WorkerApplication) error
	GetByID(ctx context.Context, id string) (*entity.WorkerApplication, error)
	Save(ctx context.Context, app *entity.WorkerApplication) error
	Delete(ctx context.Context, id string) error

	ListByWorker(ctx context.Context, workerID string) ([]*entity.WorkerApplication, error)
	ListByCompany(ctx context.Context, companyID string, status string) ([]*entity.WorkerApplication, error)
}

// HireRequestRepository extends the company-hire engagement repository with
// the pair lookup used to block duplicate pending offers.
type HireRequestRepository interface {
	EngagementRepository

	// FindPending returns the pending hire request for the (company, worker)
	// pair, or NotFound.
	FindPending(ctx context.Context, companyID, workerID string) (*entity.CompanyHireRequest, error)
}
