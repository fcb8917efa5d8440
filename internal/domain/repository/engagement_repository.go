package repository

import (
	"context"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/pkg/errors"
)

// EngagementRepository is the per-variant capability set the lifecycle engine
// works through. One implementation per engagement variant; the engine never
// branches on variant strings itself.
type EngagementRepository interface {
	Variant() entity.EngagementVariant

	Create(ctx context.Context, e entity.Engagement) error
	FindByID(ctx context.Context, id string) (entity.Engagement, error)
	Save(ctx context.Context, e entity.Engagement) error
	Delete(ctx context.Context, id string) error

	// ListByInitiator returns the engagements created by a customer or
	// company (empty id lists everything); ListByAssignee those assigned
	// to a worker or company, optionally filtered to one canonical status
	// (pass nil for all).
	ListByInitiator(ctx context.Context, initiatorID string) ([]entity.Engagement, error)
	ListByAssignee(ctx context.Context, assigneeID string, status *entity.EngagementStatus) ([]entity.Engagement, error)
}

// EngagementRegistry resolves the repository for a variant. Selection happens
// once at the API boundary; everything below works against the interface.
type EngagementRegistry struct {
	repos map[entity.EngagementVariant]EngagementRepository
}

func NewEngagementRegistry(repos ...EngagementRepository) *EngagementRegistry {
	m := make(map[entity.EngagementVariant]EngagementRepository, len(repos))
	for _, r := range repos {
		m[r.Variant()] = r
	}
	return &EngagementRegistry{repos: m}
}

func (r *EngagementRegistry) ForVariant(v entity.EngagementVariant) (EngagementRepository, error) {
	repo, ok := r.repos[v]
	if !ok {
		return nil, errors.BadRequest("Unknown engagement type", nil)
	}
	return repo, nil
}
