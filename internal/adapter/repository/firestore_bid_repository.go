package repository

import (
	"context"

	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/firestore"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

type firestoreBidRepository struct {
	client *firestore.Client
}

func NewFirestoreBidRepository(client *firestore.Client) repository.BidRepository {
	return &firestoreBidRepository{client: client}
}

func (r *firestoreBidRepository) Create(ctx context.Context, listing *entity.BidListing) error {
	_, err := r.client.Collection("bidListings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create bid listing", err)
	}
	return nil
}

func (r *firestoreBidRepository) GetByID(ctx context.Context, id string) (*entity.BidListing, error) {
	doc, err := r.client.Collection("bidListings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Bid listing", err)
		}
		return nil, errors.Internal("Failed to get bid listing", err)
	}

	var listing entity.BidListing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse bid listing data", err)
	}
	listing.ID = doc.Ref.ID
	return &listing, nil
}

// Save rewrites the whole listing document, embedded bids included. Two
// concurrent saves race on last-writer-wins of the full array.
func (r *firestoreBidRepository) Save(ctx context.Context, listing *entity.BidListing) error {
	_, err := r.client.Collection("bidListings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to save bid listing", err)
	}
	return nil
}

func (r *firestoreBidRepository) ListByStatus(ctx context.Context, bidStatus string) ([]*entity.BidListing, error) {
	q := r.client.Collection("bidListings").Query
	if bidStatus != "" {
		q = q.Where("status", "==", bidStatus)
	}
	return r.runQuery(ctx, q)
}

func (r *firestoreBidRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.BidListing, error) {
	q := r.client.Collection("bidListings").Query.Where("customerId", "==", customerID)
	return r.runQuery(ctx, q)
}

// ListWithCompanyBid scans every listing and matches the embedded bids in
// memory; Firestore cannot filter on a subfield of array elements.
func (r *firestoreBidRepository) ListWithCompanyBid(ctx context.Context, companyID string) ([]*entity.BidListing, error) {
	all, err := r.runQuery(ctx, r.client.Collection("bidListings").Query)
	if err != nil {
		return nil, err
	}

	var matched []*entity.BidListing
	for _, listing := range all {
		if listing.BidOfCompany(companyID) != nil {
			matched = append(matched, listing)
		}
	}
	return matched, nil
}

func (r *firestoreBidRepository) runQuery(ctx context.Context, q firestore.Query) ([]*entity.BidListing, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var listings []*entity.BidListing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list bid listings", err)
		}

		var listing entity.BidListing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse bid listing data", err)
		}
		listing.ID = doc.Ref.ID
		listings = append(listings, &listing)
	}
	return listings, nil
}
