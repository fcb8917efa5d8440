package usecase

import (
	"context"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
)

// AdminOverview is the aggregate payload behind the admin dashboard.
type AdminOverview struct {
	Customers []*entity.Customer   `json:"customers"`
	Workers   []*entity.Worker     `json:"workers"`
	Companies []*entity.Company    `json:"companies"`
	Projects  []entity.Engagement  `json:"projects"`
	Listings  []*entity.BidListing `json:"listings"`

	CustomerCount int `json:"customer_count"`
	WorkerCount   int `json:"worker_count"`
	CompanyCount  int `json:"company_count"`
	ProjectCount  int `json:"project_count"`
	ListingCount  int `json:"listing_count"`
}

type AdminUseCase struct {
	customerRepo repository.CustomerRepository
	workerRepo   repository.WorkerRepository
	companyRepo  repository.CompanyRepository
	bidRepo      repository.BidRepository
	registry     *repository.EngagementRegistry
}

func NewAdminUseCase(
	customerRepo repository.CustomerRepository,
	workerRepo repository.WorkerRepository,
	companyRepo repository.CompanyRepository,
	bidRepo repository.BidRepository,
	registry *repository.EngagementRegistry,
) *AdminUseCase {
	return &AdminUseCase{
		customerRepo: customerRepo,
		workerRepo:   workerRepo,
		companyRepo:  companyRepo,
		bidRepo:      bidRepo,
		registry:     registry,
	}
}

// Overview gathers every population the dashboard shows. Construction
// projects stand in for the project list, matching the dashboard's scope.
func (uc *AdminUseCase) Overview(ctx context.Context) (*AdminOverview, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := uc.workerRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	listings, err := uc.bidRepo.ListByStatus(ctx, "")
	if err != nil {
		return nil, err
	}

	projectRepo, err := uc.registry.ForVariant(entity.VariantConstruction)
	if err != nil {
		return nil, err
	}
	projects, err := projectRepo.ListByInitiator(ctx, "")
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		Customers:     customers,
		Workers:       workers,
		Companies:     companies,
		Projects:      projects,
		Listings:      listings,
		CustomerCount: len(customers),
		WorkerCount:   len(workers),
		CompanyCount:  len(companies),
		ProjectCount:  len(projects),
		ListingCount:  len(listings),
	}, nil
}

// PurgeEngagement hard-deletes an engagement of any variant. This is the
// only delete path for engagements; everything else resolves by status.
func (uc *AdminUseCase) PurgeEngagement(ctx context.Context, variant entity.EngagementVariant, id string) error {
	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return err
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}

	return repo.Delete(ctx, id)
}
