package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

// BidUseCase manages open bid listings and their resolution into awarded
// construction projects.
type BidUseCase struct {
	bidRepo     repository.BidRepository
	companyRepo repository.CompanyRepository
	registry    *repository.EngagementRegistry
	limiter     ActionLimiter
}

func NewBidUseCase(
	bidRepo repository.BidRepository,
	companyRepo repository.CompanyRepository,
	registry *repository.EngagementRegistry,
	limiter ActionLimiter,
) *BidUseCase {
	return &BidUseCase{
		bidRepo:     bidRepo,
		companyRepo: companyRepo,
		registry:    registry,
		limiter:     limiter,
	}
}

// CreateListing opens a new call for company bids.
func (uc *BidUseCase) CreateListing(ctx context.Context, listing *entity.BidListing) (*entity.BidListing, error) {
	if listing.CustomerID == "" {
		return nil, errors.BadRequest("Customer is required", nil)
	}

	now := time.Now()
	listing.ID = uuid.New().String()
	listing.Status = entity.BidStatusOpen
	listing.CompanyBids = []entity.CompanyBid{}
	listing.WinningBidID = ""
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := uc.bidRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *BidUseCase) GetByID(ctx context.Context, id string) (*entity.BidListing, error) {
	return uc.bidRepo.GetByID(ctx, id)
}

// SubmitCompanyBid appends a company's price entry to an open listing.
// Entries keep arrival order and a company may bid more than once; the append
// is a whole-document save, so concurrent bids race on last-writer-wins.
func (uc *BidUseCase) SubmitCompanyBid(ctx context.Context, listingID, companyID string, price float64) (*entity.CompanyBid, error) {
	if price <= 0 {
		return nil, errors.BadRequest("Bid price must be positive", nil)
	}

	if uc.limiter != nil {
		if ok, wait := uc.limiter.Allow(companyID, "submit_bid"); !ok {
			return nil, errors.TooManyRequests(fmt.Sprintf("Too many bids, retry in %s", wait.Round(time.Second)))
		}
	}

	listing, err := uc.bidRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status != entity.BidStatusOpen {
		return nil, errors.InvalidState("This listing is no longer taking bids", nil)
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	bid := entity.CompanyBid{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CompanyName: company.CompanyName,
		BidPrice:    price,
		BidDate:     time.Now(),
	}

	listing.CompanyBids = append(listing.CompanyBids, bid)
	listing.UpdatedAt = bid.BidDate

	if err := uc.bidRepo.Save(ctx, listing); err != nil {
		return nil, err
	}

	return &bid, nil
}

// ResolveBid settles a listing. Accepting awards it to the acting company and
// materializes a construction project from the listing's fields; rejecting
// closes it. Only an open listing can be resolved, so a listing is awarded at
// most once and produces at most one project.
func (uc *BidUseCase) ResolveBid(ctx context.Context, listingID, actingCompanyID, decision string) (*entity.BidListing, error) {
	listing, err := uc.bidRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.Status != entity.BidStatusOpen {
		return nil, errors.InvalidState("This listing has already been resolved", nil)
	}

	switch decision {
	case "accept":
		won := listing.BidOfCompany(actingCompanyID)
		if won == nil {
			return nil, errors.NotFound("Bid for this company", nil)
		}

		project := uc.projectFromListing(listing, actingCompanyID)
		repo, err := uc.registry.ForVariant(entity.VariantConstruction)
		if err != nil {
			return nil, err
		}
		if err := repo.Create(ctx, project); err != nil {
			return nil, err
		}

		listing.Status = entity.BidStatusAwarded
		listing.WinningBidID = won.ID

	case "reject":
		listing.Status = entity.BidStatusClosed

	default:
		return nil, errors.BadRequest("Decision must be accept or reject", nil)
	}

	listing.UpdatedAt = time.Now()

	if err := uc.bidRepo.Save(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *BidUseCase) projectFromListing(listing *entity.BidListing, companyID string) *entity.ConstructionProject {
	project := &entity.ConstructionProject{
		CustomerID:      listing.CustomerID,
		CompanyID:       companyID,
		ProjectName:     listing.ProjectName,
		ProjectAddress:  listing.ProjectAddress,
		TotalArea:       listing.TotalArea,
		BuildingType:    listing.BuildingType,
		EstimatedBudget: listing.EstimatedBudget,
		ProjectTimeline: listing.ProjectTimeline,
		TotalFloors:     listing.TotalFloors,
		Floors:          listing.Floors,
	}
	project.SetStatus(entity.StatusAccepted)
	return project
}

// ListOpenListings returns every listing still taking bids.
func (uc *BidUseCase) ListOpenListings(ctx context.Context) ([]*entity.BidListing, error) {
	return uc.bidRepo.ListByStatus(ctx, entity.BidStatusOpen)
}

// ListListingsByCustomer returns a customer's listings in every state.
func (uc *BidUseCase) ListListingsByCustomer(ctx context.Context, customerID string) ([]*entity.BidListing, error) {
	return uc.bidRepo.ListByCustomer(ctx, customerID)
}

// ListCompanyBids returns the listings a company has bid on.
func (uc *BidUseCase) ListCompanyBids(ctx context.Context, companyID string) ([]*entity.BidListing, error) {
	return uc.bidRepo.ListWithCompanyBid(ctx, companyID)
}
