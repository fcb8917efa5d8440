package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

// firestoreEngagementRepository is one variant's collection. The four
// variants differ only in collection name, document shape and the fields
// holding the two parties, so a factory plus two field names covers them all.
type firestoreEngagementRepository struct {
	client         *firestore.Client
	collection     string
	variant        entity.EngagementVariant
	factory        func() entity.Engagement
	initiatorField string
	assigneeField  string
}

func NewFirestoreArchitectHiringRepository(client *firestore.Client) repository.EngagementRepository {
	return &firestoreEngagementRepository{
		client:         client,
		collection:     "architectHirings",
		variant:        entity.VariantArchitect,
		factory:        func() entity.Engagement { return &entity.ArchitectHiring{} },
		initiatorField: "customer",
		assigneeField:  "worker",
	}
}

func NewFirestoreDesignRequestRepository(client *firestore.Client) repository.EngagementRepository {
	return &firestoreEngagementRepository{
		client:         client,
		collection:     "designRequests",
		variant:        entity.VariantInterior,
		factory:        func() entity.Engagement { return &entity.DesignRequest{} },
		initiatorField: "customerId",
		assigneeField:  "workerId",
	}
}

func NewFirestoreConstructionProjectRepository(client *firestore.Client) repository.EngagementRepository {
	return &firestoreEngagementRepository{
		client:         client,
		collection:     "constructionProjects",
		variant:        entity.VariantConstruction,
		factory:        func() entity.Engagement { return &entity.ConstructionProject{} },
		initiatorField: "customerId",
		assigneeField:  "companyId",
	}
}

func (r *firestoreEngagementRepository) Variant() entity.EngagementVariant {
	return r.variant
}

func (r *firestoreEngagementRepository) Create(ctx context.Context, e entity.Engagement) error {
	if e.EngagementID() == "" {
		e.SetEngagementID(uuid.New().String())
	}
	e.Touch(time.Now())

	_, err := r.client.Collection(r.collection).Doc(e.EngagementID()).Set(ctx, e)
	if err != nil {
		return errors.Internal("Failed to create engagement", err)
	}
	return nil
}

func (r *firestoreEngagementRepository) FindByID(ctx context.Context, id string) (entity.Engagement, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Engagement", err)
		}
		return nil, errors.Internal("Failed to get engagement", err)
	}

	e := r.factory()
	if err := doc.DataTo(e); err != nil {
		return nil, errors.Internal("Failed to parse engagement data", err)
	}
	e.SetEngagementID(doc.Ref.ID)
	return e, nil
}

func (r *firestoreEngagementRepository) Save(ctx context.Context, e entity.Engagement) error {
	if e.EngagementID() == "" {
		return errors.BadRequest("Engagement id is required", nil)
	}
	e.Touch(time.Now())

	_, err := r.client.Collection(r.collection).Doc(e.EngagementID()).Set(ctx, e)
	if err != nil {
		return errors.Internal("Failed to save engagement", err)
	}
	return nil
}

func (r *firestoreEngagementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(r.collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete engagement", err)
	}
	return nil
}

func (r *firestoreEngagementRepository) ListByInitiator(ctx context.Context, initiatorID string) ([]entity.Engagement, error) {
	q := r.client.Collection(r.collection).Query
	if initiatorID != "" {
		q = q.Where(r.initiatorField, "==", initiatorID)
	}
	return r.runQuery(ctx, q)
}

func (r *firestoreEngagementRepository) ListByAssignee(ctx context.Context, assigneeID string, st *entity.EngagementStatus) ([]entity.Engagement, error) {
	q := r.client.Collection(r.collection).Query.Where(r.assigneeField, "==", assigneeID)
	if st != nil {
		lit, ok := entity.StatusLiteral(r.variant, *st)
		if !ok {
			return []entity.Engagement{}, nil
		}
		q = q.Where("status", "==", lit)
	}
	return r.runQuery(ctx, q)
}

func (r *firestoreEngagementRepository) runQuery(ctx context.Context, q firestore.Query) ([]entity.Engagement, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var results []entity.Engagement
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list engagements", err)
		}

		e := r.factory()
		if err := doc.DataTo(e); err != nil {
			return nil, errors.Internal("Failed to parse engagement data", err)
		}
		e.SetEngagementID(doc.Ref.ID)
		results = append(results, e)
	}
	return results, nil
}

// firestoreHireRequestRepository adds the pending-pair lookup on top of the
// generic engagement store.
type firestoreHireRequestRepository struct {
	firestoreEngagementRepository
}

func NewFirestoreHireRequestRepository(client *firestore.Client) repository.HireRequestRepository {
	return &firestoreHireRequestRepository{
		firestoreEngagementRepository: firestoreEngagementRepository{
			client:         client,
			collection:     "hireRequests",
			variant:        entity.VariantCompanyHire,
			factory:        func() entity.Engagement { return &entity.CompanyHireRequest{} },
			initiatorField: "company",
			assigneeField:  "worker",
		},
	}
}

func (r *firestoreHireRequestRepository) FindPending(ctx context.Context, companyID, workerID string) (*entity.CompanyHireRequest, error) {
	pendingLit, _ := entity.StatusLiteral(entity.VariantCompanyHire, entity.StatusPending)

	iter := r.client.Collection(r.collection).
		Where("company", "==", companyID).
		Where("worker", "==", workerID).
		Where("status", "==", pendingLit).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Pending hire request", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to look up hire request", err)
	}

	var req entity.CompanyHireRequest
	if err := doc.DataTo(&req); err != nil {
		return nil, errors.Internal("Failed to parse hire request data", err)
	}
	req.ID = doc.Ref.ID
	return &req, nil
}
