package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

type firestoreApplicationRepository struct {
	client *firestore.Client
}

func NewFirestoreApplicationRepository(client *firestore.Client) repository.ApplicationRepository {
	return &firestoreApplicationRepository{client: client}
}

func (r *firestoreApplicationRepository) Create(ctx context.Context, app *entity.WorkerApplication) error {
	_, err := r.client.Collection("workerApplications").Doc(app.ID).Set(ctx, app)
	if err != nil {
		return errors.Internal("Failed to create application", err)
	}
	return nil
}

func (r *firestoreApplicationRepository) GetByID(ctx context.Context, id string) (*entity.WorkerApplication, error) {
	doc, err := r.client.Collection("workerApplications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Application", err)
		}
		return nil, errors.Internal("Failed to get application", err)
	}

	var app entity.WorkerApplication
	if err := doc.DataTo(&app); err != nil {
		return nil, errors.Internal("Failed to parse application data", err)
	}
	app.ID = doc.Ref.ID
	return &app, nil
}

func (r *firestoreApplicationRepository) Save(ctx context.Context, app *entity.WorkerApplication) error {
	app.UpdatedAt = time.Now()

	_, err := r.client.Collection("workerApplications").Doc(app.ID).Set(ctx, app)
	if err != nil {
		return errors.Internal("Failed to save application", err)
	}
	return nil
}

func (r *firestoreApplicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("workerApplications").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete application", err)
	}
	return nil
}

func (r *firestoreApplicationRepository) ListByWorker(ctx context.Context, workerID string) ([]*entity.WorkerApplication, error) {
	q := r.client.Collection("workerApplications").Query.Where("workerId", "==", workerID)
	return r.runQuery(ctx, q)
}

func (r *firestoreApplicationRepository) ListByCompany(ctx context.Context, companyID string, appStatus string) ([]*entity.WorkerApplication, error) {
	q := r.client.Collection("workerApplications").Query.Where("companyId", "==", companyID)
	if appStatus != "" {
		q = q.Where("status", "==", appStatus)
	}
	return r.runQuery(ctx, q)
}

func (r *firestoreApplicationRepository) runQuery(ctx context.Context, q firestore.Query) ([]*entity.WorkerApplication, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var apps []*entity.WorkerApplication
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list applications", err)
		}

		var app entity.WorkerApplication
		if err := doc.DataTo(&app); err != nil {
			return nil, errors.Internal("Failed to parse application data", err)
		}
		app.ID = doc.Ref.ID
		apps = append(apps, &app)
	}
	return apps, nil
}
