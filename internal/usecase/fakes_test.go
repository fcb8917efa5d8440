package usecase

import (
	"context"
	"fmt"
	"time"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

type fakeEngagementRepo struct {
	variant entity.EngagementVariant
	items   map[string]entity.Engagement
	nextID  int
	saveErr error
}

func newFakeEngagementRepo(variant entity.EngagementVariant) *fakeEngagementRepo {
	return &fakeEngagementRepo{
		variant: variant,
		items:   make(map[string]entity.Engagement),
	}
}

func (r *fakeEngagementRepo) Variant() entity.EngagementVariant { return r.variant }

func (r *fakeEngagementRepo) Create(ctx context.Context, e entity.Engagement) error {
	if e.EngagementID() == "" {
		r.nextID++
		e.SetEngagementID(fmt.Sprintf("%s-%d", r.variant, r.nextID))
	}
	r.items[e.EngagementID()] = e
	return nil
}

func (r *fakeEngagementRepo) FindByID(ctx context.Context, id string) (entity.Engagement, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Engagement", nil)
	}
	return e, nil
}

func (r *fakeEngagementRepo) Save(ctx context.Context, e entity.Engagement) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items[e.EngagementID()] = e
	return nil
}

func (r *fakeEngagementRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Engagement", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEngagementRepo) ListByInitiator(ctx context.Context, initiatorID string) ([]entity.Engagement, error) {
	var results []entity.Engagement
	for _, e := range r.items {
		if initiatorID == "" || e.InitiatorID() == initiatorID {
			results = append(results, e)
		}
	}
	return results, nil
}

func (r *fakeEngagementRepo) ListByAssignee(ctx context.Context, assigneeID string, st *entity.EngagementStatus) ([]entity.Engagement, error) {
	var results []entity.Engagement
	for _, e := range r.items {
		if e.AssigneeID() != assigneeID {
			continue
		}
		if st != nil {
			current, ok := e.CurrentStatus()
			if !ok || current != *st {
				continue
			}
		}
		results = append(results, e)
	}
	return results, nil
}

type fakeHireRequestRepo struct {
	fakeEngagementRepo
}

func newFakeHireRequestRepo() *fakeHireRequestRepo {
	return &fakeHireRequestRepo{
		fakeEngagementRepo: *newFakeEngagementRepo(entity.VariantCompanyHire),
	}
}

func (r *fakeHireRequestRepo) FindPending(ctx context.Context, companyID, workerID string) (*entity.CompanyHireRequest, error) {
	for _, e := range r.items {
		req, ok := e.(*entity.CompanyHireRequest)
		if !ok {
			continue
		}
		current, ok := req.CurrentStatus()
		if ok && current == entity.StatusPending && req.Company == companyID && req.Worker == workerID {
			return req, nil
		}
	}
	return nil, errors.NotFound("Pending hire request", nil)
}

type fakeChatRepo struct {
	rooms map[string]*entity.ChatRoom

	// conflictNext makes the next Create fail as if another provisioner won
	// the race, inserting the given room as the winner.
	conflictNext *entity.ChatRoom
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{rooms: make(map[string]*entity.ChatRoom)}
}

func (r *fakeChatRepo) Create(ctx context.Context, room *entity.ChatRoom) error {
	if r.conflictNext != nil {
		winner := r.conflictNext
		r.conflictNext = nil
		r.rooms[winner.RoomID] = winner
		return errors.Conflict("Chat room already exists")
	}
	if _, ok := r.rooms[room.RoomID]; ok {
		return errors.Conflict("Chat room already exists")
	}
	r.rooms[room.RoomID] = room
	return nil
}

func (r *fakeChatRepo) GetByRoomID(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, errors.NotFound("Chat room", nil)
	}
	return room, nil
}

func (r *fakeChatRepo) AppendMessage(ctx context.Context, roomID string, message entity.Message) error {
	room, ok := r.rooms[roomID]
	if !ok {
		return errors.NotFound("Chat room", nil)
	}
	room.Messages = append(room.Messages, message)
	return nil
}

func (r *fakeChatRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.ChatRoom, error) {
	var results []*entity.ChatRoom
	for _, room := range r.rooms {
		for _, p := range room.Participants {
			if p == userID {
				results = append(results, room)
				break
			}
		}
	}
	return results, nil
}

type fakeBidRepo struct {
	listings map[string]*entity.BidListing
	saveErr  error
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{listings: make(map[string]*entity.BidListing)}
}

func copyListing(l *entity.BidListing) *entity.BidListing {
	c := *l
	c.CompanyBids = append([]entity.CompanyBid(nil), l.CompanyBids...)
	return &c
}

func (r *fakeBidRepo) Create(ctx context.Context, listing *entity.BidListing) error {
	r.listings[listing.ID] = copyListing(listing)
	return nil
}

func (r *fakeBidRepo) GetByID(ctx context.Context, id string) (*entity.BidListing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Bid listing", nil)
	}
	return copyListing(l), nil
}

func (r *fakeBidRepo) Save(ctx context.Context, listing *entity.BidListing) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.listings[listing.ID] = copyListing(listing)
	return nil
}

func (r *fakeBidRepo) ListByStatus(ctx context.Context, status string) ([]*entity.BidListing, error) {
	var results []*entity.BidListing
	for _, l := range r.listings {
		if status == "" || l.Status == status {
			results = append(results, copyListing(l))
		}
	}
	return results, nil
}

func (r *fakeBidRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.BidListing, error) {
	var results []*entity.BidListing
	for _, l := range r.listings {
		if l.CustomerID == customerID {
			results = append(results, copyListing(l))
		}
	}
	return results, nil
}

func (r *fakeBidRepo) ListWithCompanyBid(ctx context.Context, companyID string) ([]*entity.BidListing, error) {
	var results []*entity.BidListing
	for _, l := range r.listings {
		if l.BidOfCompany(companyID) != nil {
			results = append(results, copyListing(l))
		}
	}
	return results, nil
}

type fakeFavoriteRepo struct {
	docs map[string]*entity.FavoriteDesign
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{docs: make(map[string]*entity.FavoriteDesign)}
}

func (r *fakeFavoriteRepo) GetByCustomer(ctx context.Context, customerID string) (*entity.FavoriteDesign, error) {
	doc, ok := r.docs[customerID]
	if !ok {
		return &entity.FavoriteDesign{CustomerID: customerID, Designs: []entity.DesignRef{}}, nil
	}
	return doc, nil
}

func (r *fakeFavoriteRepo) AddDesign(ctx context.Context, customerID string, design entity.DesignRef) (bool, error) {
	doc, _ := r.GetByCustomer(ctx, customerID)
	if doc.HasDesign(design.DesignID) {
		return false, nil
	}
	doc.Designs = append(doc.Designs, design)
	r.docs[customerID] = doc
	return true, nil
}

func (r *fakeFavoriteRepo) RemoveDesign(ctx context.Context, customerID, designID string) error {
	doc, ok := r.docs[customerID]
	if !ok || !doc.HasDesign(designID) {
		return errors.NotFound("Design in favorites", nil)
	}
	kept := doc.Designs[:0]
	for _, d := range doc.Designs {
		if d.DesignID != designID {
			kept = append(kept, d)
		}
	}
	doc.Designs = kept
	return nil
}

type fakeWorkerRepo struct {
	workers map[string]*entity.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]*entity.Worker)}
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, errors.NotFound("Worker", nil)
	}
	return w, nil
}

func (r *fakeWorkerRepo) List(ctx context.Context, isArchitect *bool) ([]*entity.Worker, error) {
	var results []*entity.Worker
	for _, w := range r.workers {
		if isArchitect == nil || w.IsArchitect == *isArchitect {
			results = append(results, w)
		}
	}
	return results, nil
}

func (r *fakeWorkerRepo) UpdateAvailability(ctx context.Context, id, availability string) error {
	w, ok := r.workers[id]
	if !ok {
		return errors.NotFound("Worker", nil)
	}
	w.Availability = availability
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, errors.NotFound("Company", nil)
	}
	return c, nil
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	var results []*entity.Company
	for _, c := range r.companies {
		results = append(results, c)
	}
	return results, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.NotFound("Customer", nil)
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	var results []*entity.Customer
	for _, c := range r.customers {
		results = append(results, c)
	}
	return results, nil
}

type fakeApplicationRepo struct {
	apps map[string]*entity.WorkerApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*entity.WorkerApplication)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *entity.WorkerApplication) error {
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*entity.WorkerApplication, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, errors.NotFound("Application", nil)
	}
	return app, nil
}

func (r *fakeApplicationRepo) Save(ctx context.Context, app *entity.WorkerApplication) error {
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return errors.NotFound("Application", nil)
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) ListByWorker(ctx context.Context, workerID string) ([]*entity.WorkerApplication, error) {
	var results []*entity.WorkerApplication
	for _, app := range r.apps {
		if app.WorkerID == workerID {
			results = append(results, app)
		}
	}
	return results, nil
}

func (r *fakeApplicationRepo) ListByCompany(ctx context.Context, companyID string, status string) ([]*entity.WorkerApplication, error) {
	var results []*entity.WorkerApplication
	for _, app := range r.apps {
		if app.CompanyID == companyID && (status == "" || app.Status == status) {
			results = append(results, app)
		}
	}
	return results, nil
}

// recordingProvisioner captures chat provisioning calls from the lifecycle
// engine without touching a chat store.
type recordingProvisioner struct {
	engagementRooms []string
	hiringPairs     [][2]string
	err             error
}

func (p *recordingProvisioner) ProvisionEngagementRoom(ctx context.Context, engagementID string, projectType entity.EngagementVariant) (*entity.ChatRoom, error) {
	if p.err != nil {
		return nil, p.err
	}
	roomID := entity.ProjectRoomID(engagementID, projectType)
	p.engagementRooms = append(p.engagementRooms, roomID)
	return &entity.ChatRoom{RoomID: roomID}, nil
}

func (p *recordingProvisioner) ProvisionHiringRoom(ctx context.Context, workerID, companyID string) (*entity.ChatRoom, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.hiringPairs = append(p.hiringPairs, [2]string{workerID, companyID})
	return &entity.ChatRoom{RoomID: entity.HiringRoomID(workerID, companyID)}, nil
}

type recordingBroadcaster struct {
	payloads map[string][][]byte
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{payloads: make(map[string][][]byte)}
}

func (b *recordingBroadcaster) BroadcastToRoom(roomID string, payload []byte) {
	b.payloads[roomID] = append(b.payloads[roomID], payload)
}

// stubLimiter grants a fixed number of calls and then refuses.
type stubLimiter struct {
	budget int
}

func (l *stubLimiter) Allow(userID, action string) (bool, time.Duration) {
	if l.budget <= 0 {
		return false, 5 * time.Second
	}
	l.budget--
	return true, 0
}

func newTestRegistry(repos ...repository.EngagementRepository) *repository.EngagementRegistry {
	return repository.NewEngagementRegistry(repos...)
}
