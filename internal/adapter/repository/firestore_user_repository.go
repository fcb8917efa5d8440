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

type firestoreCustomerRepository struct {
	client *firestore.Client
}

func NewFirestoreCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &firestoreCustomerRepository{client: client}
}

func (r *firestoreCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	doc, err := r.client.Collection("customers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Customer", err)
		}
		return nil, errors.Internal("Failed to get customer", err)
	}

	var customer entity.Customer
	if err := doc.DataTo(&customer); err != nil {
		return nil, errors.Internal("Failed to parse customer data", err)
	}
	customer.ID = doc.Ref.ID
	return &customer, nil
}

func (r *firestoreCustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	iter := r.client.Collection("customers").Documents(ctx)
	defer iter.Stop()

	var customers []*entity.Customer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list customers", err)
		}

		var customer entity.Customer
		if err := doc.DataTo(&customer); err != nil {
			return nil, errors.Internal("Failed to parse customer data", err)
		}
		customer.ID = doc.Ref.ID
		customers = append(customers, &customer)
	}
	return customers, nil
}

type firestoreWorkerRepository struct {
	client *firestore.Client
}

func NewFirestoreWorkerRepository(client *firestore.Client) repository.WorkerRepository {
	return &firestoreWorkerRepository{client: client}
}

func (r *firestoreWorkerRepository) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	doc, err := r.client.Collection("workers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Worker", err)
		}
		return nil, errors.Internal("Failed to get worker", err)
	}

	var worker entity.Worker
	if err := doc.DataTo(&worker); err != nil {
		return nil, errors.Internal("Failed to parse worker data", err)
	}
	worker.ID = doc.Ref.ID
	return &worker, nil
}

func (r *firestoreWorkerRepository) List(ctx context.Context, isArchitect *bool) ([]*entity.Worker, error) {
	q := r.client.Collection("workers").Query
	if isArchitect != nil {
		q = q.Where("isArchitect", "==", *isArchitect)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var workers []*entity.Worker
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list workers", err)
		}

		var worker entity.Worker
		if err := doc.DataTo(&worker); err != nil {
			return nil, errors.Internal("Failed to parse worker data", err)
		}
		worker.ID = doc.Ref.ID
		workers = append(workers, &worker)
	}
	return workers, nil
}

func (r *firestoreWorkerRepository) UpdateAvailability(ctx context.Context, id, availability string) error {
	_, err := r.client.Collection("workers").Doc(id).Update(ctx, []firestore.Update{
		{Path: "availability", Value: availability},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Worker", err)
		}
		return errors.Internal("Failed to update worker availability", err)
	}
	return nil
}

type firestoreCompanyRepository struct {
	client *firestore.Client
}

func NewFirestoreCompanyRepository(client *firestore.Client) repository.CompanyRepository {
	return &firestoreCompanyRepository{client: client}
}

func (r *firestoreCompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	doc, err := r.client.Collection("companies").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Company", err)
		}
		return nil, errors.Internal("Failed to get company", err)
	}

	var company entity.Company
	if err := doc.DataTo(&company); err != nil {
		return nil, errors.Internal("Failed to parse company data", err)
	}
	company.ID = doc.Ref.ID
	return &company, nil
}

func (r *firestoreCompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	iter := r.client.Collection("companies").Documents(ctx)
	defer iter.Stop()

	var companies []*entity.Company
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list companies", err)
		}

		var company entity.Company
		if err := doc.DataTo(&company); err != nil {
			return nil, errors.Internal("Failed to parse company data", err)
		}
		company.ID = doc.Ref.ID
		companies = append(companies, &company)
	}
	return companies, nil
}
