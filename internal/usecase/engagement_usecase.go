package usecase

import (
	"context"
	"time"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/logger"
)

// ChatProvisioner creates the messaging channel once two parties are
// matched. Provisioning runs post-commit and is best-effort: a failure is
// logged and never fails the status transition that triggered it.
type ChatProvisioner interface {
	ProvisionEngagementRoom(ctx context.Context, engagementID string, projectType entity.EngagementVariant) (*entity.ChatRoom, error)
	ProvisionHiringRoom(ctx context.Context, workerID, companyID string) (*entity.ChatRoom, error)
}

// EngagementUseCase is the lifecycle engine for the four engagement
// variants. All variant dispatch happens through the repository registry;
// authorization is re-checked on every mutation against the stored assignee.
type EngagementUseCase struct {
	registry   *repository.EngagementRegistry
	workerRepo repository.WorkerRepository
	chat       ChatProvisioner
}

func NewEngagementUseCase(
	registry *repository.EngagementRegistry,
	workerRepo repository.WorkerRepository,
	chat ChatProvisioner,
) *EngagementUseCase {
	return &EngagementUseCase{
		registry:   registry,
		workerRepo: workerRepo,
		chat:       chat,
	}
}

// Create stores a new engagement in its variant's pending state.
func (uc *EngagementUseCase) Create(ctx context.Context, e entity.Engagement) (entity.Engagement, error) {
	repo, err := uc.registry.ForVariant(e.Variant())
	if err != nil {
		return nil, err
	}

	e.SetStatus(entity.StatusPending)

	if err := repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (uc *EngagementUseCase) GetByID(ctx context.Context, variant entity.EngagementVariant, id string) (entity.Engagement, error) {
	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, id)
}

// SubmitProposal attaches a priced offer and moves the engagement to its
// proposal-sent state. Only variants whose status domain includes that state
// take proposals; only the assigned company may submit one.
func (uc *EngagementUseCase) SubmitProposal(ctx context.Context, variant entity.EngagementVariant, id, actorID string, price float64, description string) (entity.Engagement, error) {
	if !entity.VariantSupports(variant, entity.StatusProposalSent) {
		return nil, errors.InvalidState("This engagement type does not take proposals", nil)
	}

	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}

	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.AssigneeID() != actorID {
		return nil, errors.Forbidden("You are not assigned to this engagement", nil)
	}

	current, ok := e.CurrentStatus()
	if !ok {
		return nil, errors.Internal("Engagement has an unrecognized status", nil)
	}

	if !entity.CanTransition(current, entity.StatusProposalSent) {
		return nil, errors.InvalidState("Cannot submit a proposal in the current status", nil)
	}

	e.AttachProposal(entity.Proposal{
		Price:       price,
		Description: description,
		SentAt:      time.Now(),
	})
	e.SetStatus(entity.StatusProposalSent)

	if err := repo.Save(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// UpdateStatus applies an accept/reject decision supplied as the variant's
// own status literal. On acceptance the chat channel is provisioned as a
// post-commit side effect.
func (uc *EngagementUseCase) UpdateStatus(ctx context.Context, variant entity.EngagementVariant, id, actorID, statusLiteral string) (entity.Engagement, error) {
	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}

	target, ok := entity.ParseStatusLiteral(variant, statusLiteral)
	if !ok {
		return nil, errors.BadRequest("Invalid status provided", nil)
	}

	if target != entity.StatusAccepted && target != entity.StatusRejected {
		return nil, errors.BadRequest("Status must be the accepted or rejected literal", nil)
	}

	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.AssigneeID() != actorID {
		return nil, errors.Forbidden("You are not assigned to this engagement", nil)
	}

	current, ok := e.CurrentStatus()
	if !ok {
		return nil, errors.Internal("Engagement has an unrecognized status", nil)
	}

	if !entity.CanTransition(current, target) {
		return nil, errors.InvalidState("Transition not legal from the current status", nil)
	}

	e.SetStatus(target)

	if err := repo.Save(ctx, e); err != nil {
		return nil, err
	}

	if target == entity.StatusAccepted {
		uc.provisionChat(ctx, e)
	}

	return e, nil
}

// PostProjectUpdate prepends a progress entry so the most recent update is
// always first. Only the assignee of an accepted engagement may post.
func (uc *EngagementUseCase) PostProjectUpdate(ctx context.Context, variant entity.EngagementVariant, id, actorID, text, image string) (entity.Engagement, error) {
	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}

	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.AssigneeID() != actorID {
		return nil, errors.Forbidden("You are not assigned to this engagement", nil)
	}

	current, ok := e.CurrentStatus()
	if !ok {
		return nil, errors.Internal("Engagement has an unrecognized status", nil)
	}

	if current != entity.StatusAccepted {
		return nil, errors.InvalidState("Updates can only be posted on an accepted engagement", nil)
	}

	e.PrependUpdate(entity.ProjectUpdate{
		Text:      text,
		Image:     image,
		CreatedAt: time.Now(),
	})

	if err := repo.Save(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// MarkCompleted closes out an accepted engagement.
func (uc *EngagementUseCase) MarkCompleted(ctx context.Context, variant entity.EngagementVariant, id, actorID string) (entity.Engagement, error) {
	if !entity.VariantSupports(variant, entity.StatusCompleted) {
		return nil, errors.InvalidState("This engagement type has no completed state", nil)
	}

	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}

	e, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.AssigneeID() != actorID {
		return nil, errors.Forbidden("You are not assigned to this engagement", nil)
	}

	current, ok := e.CurrentStatus()
	if !ok {
		return nil, errors.Internal("Engagement has an unrecognized status", nil)
	}

	if current != entity.StatusAccepted {
		return nil, errors.InvalidState("Only an accepted engagement can be completed", nil)
	}

	e.SetStatus(entity.StatusCompleted)

	if err := repo.Save(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// ListForInitiator returns the engagements a customer or company created.
func (uc *EngagementUseCase) ListForInitiator(ctx context.Context, variant entity.EngagementVariant, initiatorID string) ([]entity.Engagement, error) {
	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}
	return repo.ListByInitiator(ctx, initiatorID)
}

// ListForAssignee returns the engagements assigned to a worker or company,
// optionally filtered to one canonical status.
func (uc *EngagementUseCase) ListForAssignee(ctx context.Context, variant entity.EngagementVariant, assigneeID string, status *entity.EngagementStatus) ([]entity.Engagement, error) {
	repo, err := uc.registry.ForVariant(variant)
	if err != nil {
		return nil, err
	}
	return repo.ListByAssignee(ctx, assigneeID, status)
}

// ListJobsForWorker returns the pending job offers for a worker, selecting
// the architect or interior collection by the worker's capability flag.
func (uc *EngagementUseCase) ListJobsForWorker(ctx context.Context, workerID string) ([]entity.Engagement, error) {
	worker, err := uc.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	variant := entity.VariantInterior
	if worker.IsArchitect {
		variant = entity.VariantArchitect
	}

	pending := entity.StatusPending
	return uc.ListForAssignee(ctx, variant, workerID, &pending)
}

func (uc *EngagementUseCase) provisionChat(ctx context.Context, e entity.Engagement) {
	if uc.chat == nil {
		return
	}

	var err error
	switch e.Variant() {
	case entity.VariantArchitect, entity.VariantInterior:
		_, err = uc.chat.ProvisionEngagementRoom(ctx, e.EngagementID(), e.Variant())
	case entity.VariantCompanyHire:
		_, err = uc.chat.ProvisionHiringRoom(ctx, e.AssigneeID(), e.InitiatorID())
	default:
		return
	}

	if err != nil {
		logger.Error("Failed to provision chat room for %s %s: %v", e.Variant(), e.EngagementID(), err)
	}
}
