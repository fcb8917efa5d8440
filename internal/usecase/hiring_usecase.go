package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/logger"
)

// HiringUseCase covers both directions of employment matching: company hire
// offers to workers and worker applications to companies. An accepted match
// from either direction provisions the shared hiring chat.
type HiringUseCase struct {
	hireRepo   repository.HireRequestRepository
	appRepo    repository.ApplicationRepository
	workerRepo repository.WorkerRepository
	chat       ChatProvisioner
	limiter    ActionLimiter
}

func NewHiringUseCase(
	hireRepo repository.HireRequestRepository,
	appRepo repository.ApplicationRepository,
	workerRepo repository.WorkerRepository,
	chat ChatProvisioner,
	limiter ActionLimiter,
) *HiringUseCase {
	return &HiringUseCase{
		hireRepo:   hireRepo,
		appRepo:    appRepo,
		workerRepo: workerRepo,
		chat:       chat,
		limiter:    limiter,
	}
}

// CreateHireRequest opens a company's offer to a worker. A pending offer for
// the same pair blocks a second one.
func (uc *HiringUseCase) CreateHireRequest(ctx context.Context, req *entity.CompanyHireRequest) (*entity.CompanyHireRequest, error) {
	if req.Company == "" || req.Worker == "" {
		return nil, errors.BadRequest("Company and worker are required", nil)
	}

	if uc.limiter != nil {
		if ok, wait := uc.limiter.Allow(req.Company, "hire_request"); !ok {
			return nil, errors.TooManyRequests(fmt.Sprintf("Too many hire requests, retry in %s", wait.Round(time.Second)))
		}
	}

	if _, err := uc.hireRepo.FindPending(ctx, req.Company, req.Worker); err == nil {
		return nil, errors.Conflict("A pending hire request for this worker already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	req.SetStatus(entity.StatusPending)

	if err := uc.hireRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// RespondHireRequest records the worker's accept/reject decision, supplied as
// the variant's own status literal. Acceptance provisions the hiring chat.
func (uc *HiringUseCase) RespondHireRequest(ctx context.Context, requestID, workerID, statusLiteral string) (*entity.CompanyHireRequest, error) {
	target, ok := entity.ParseStatusLiteral(entity.VariantCompanyHire, statusLiteral)
	if !ok || (target != entity.StatusAccepted && target != entity.StatusRejected) {
		return nil, errors.BadRequest("Invalid status provided", nil)
	}

	e, err := uc.hireRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	req, ok := e.(*entity.CompanyHireRequest)
	if !ok {
		return nil, errors.Internal("Unexpected engagement type in hire request store", nil)
	}

	if req.Worker != workerID {
		return nil, errors.Forbidden("This hire request is not addressed to you", nil)
	}

	current, ok := req.CurrentStatus()
	if !ok || !entity.CanTransition(current, target) {
		return nil, errors.InvalidState("This hire request has already been resolved", nil)
	}

	req.SetStatus(target)

	if err := uc.hireRepo.Save(ctx, req); err != nil {
		return nil, err
	}

	if target == entity.StatusAccepted {
		uc.provisionHiringChat(ctx, req.Worker, req.Company)
	}

	return req, nil
}

// WithdrawHireRequest deletes a company's own offer.
func (uc *HiringUseCase) WithdrawHireRequest(ctx context.Context, requestID, companyID string) error {
	e, err := uc.hireRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}

	if e.InitiatorID() != companyID {
		return errors.Forbidden("You can only withdraw your own hire requests", nil)
	}

	return uc.hireRepo.Delete(ctx, requestID)
}

// ListHireRequestsForWorker returns the offers addressed to a worker,
// optionally filtered to one canonical status.
func (uc *HiringUseCase) ListHireRequestsForWorker(ctx context.Context, workerID string, status *entity.EngagementStatus) ([]entity.Engagement, error) {
	return uc.hireRepo.ListByAssignee(ctx, workerID, status)
}

// ListHireRequestsForCompany returns the offers a company has made.
func (uc *HiringUseCase) ListHireRequestsForCompany(ctx context.Context, companyID string) ([]entity.Engagement, error) {
	return uc.hireRepo.ListByInitiator(ctx, companyID)
}

// CreateWorkerApplication files a worker's application to a company.
func (uc *HiringUseCase) CreateWorkerApplication(ctx context.Context, app *entity.WorkerApplication) (*entity.WorkerApplication, error) {
	if app.WorkerID == "" || app.CompanyID == "" {
		return nil, errors.BadRequest("Worker and company are required", nil)
	}

	now := time.Now()
	app.ID = uuid.New().String()
	app.Status = entity.ApplicationPending
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// HandleWorkerApplication records the company's accept/reject decision on an
// application addressed to it. Acceptance provisions the hiring chat.
func (uc *HiringUseCase) HandleWorkerApplication(ctx context.Context, applicationID, companyID, status string) (*entity.WorkerApplication, error) {
	if status != entity.ApplicationAccepted && status != entity.ApplicationRejected {
		return nil, errors.BadRequest("Invalid status provided", nil)
	}

	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.CompanyID != companyID {
		return nil, errors.Forbidden("This application was not sent to your company", nil)
	}

	if app.Status != entity.ApplicationPending {
		return nil, errors.InvalidState("This application has already been resolved", nil)
	}

	app.Status = status
	app.UpdatedAt = time.Now()

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return nil, err
	}

	if status == entity.ApplicationAccepted {
		uc.provisionHiringChat(ctx, app.WorkerID, app.CompanyID)
	}

	return app, nil
}

// CancelWorkerApplication lets a worker withdraw a still-pending application.
func (uc *HiringUseCase) CancelWorkerApplication(ctx context.Context, applicationID, workerID string) error {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if app.WorkerID != workerID {
		return errors.Forbidden("You can only cancel your own applications", nil)
	}

	if app.Status != entity.ApplicationPending {
		return errors.InvalidState("Only a pending application can be cancelled", nil)
	}

	return uc.appRepo.Delete(ctx, applicationID)
}

// ListApplicationsForWorker returns a worker's filed applications.
func (uc *HiringUseCase) ListApplicationsForWorker(ctx context.Context, workerID string) ([]*entity.WorkerApplication, error) {
	return uc.appRepo.ListByWorker(ctx, workerID)
}

// ListApplicationsForCompany returns the applications sent to a company,
// optionally filtered by status literal.
func (uc *HiringUseCase) ListApplicationsForCompany(ctx context.Context, companyID, status string) ([]*entity.WorkerApplication, error) {
	return uc.appRepo.ListByCompany(ctx, companyID, status)
}

// SetWorkerAvailability patches a worker's availability flag.
func (uc *HiringUseCase) SetWorkerAvailability(ctx context.Context, workerID, availability string) error {
	if !entity.ValidAvailability(availability) {
		return errors.BadRequest("Availability must be available, busy or unavailable", nil)
	}
	return uc.workerRepo.UpdateAvailability(ctx, workerID, availability)
}

func (uc *HiringUseCase) provisionHiringChat(ctx context.Context, workerID, companyID string) {
	if uc.chat == nil {
		return
	}
	if _, err := uc.chat.ProvisionHiringRoom(ctx, workerID, companyID); err != nil {
		logger.Error("Failed to provision hiring chat for worker %s and company %s: %v", workerID, companyID, err)
	}
}
