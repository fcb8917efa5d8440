package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/pkg/errors"
)

func newEngagementFixture() (*EngagementUseCase, *fakeEngagementRepo, *fakeEngagementRepo, *fakeEngagementRepo, *fakeHireRequestRepo, *fakeWorkerRepo, *recordingProvisioner) {
	architectRepo := newFakeEngagementRepo(entity.VariantArchitect)
	interiorRepo := newFakeEngagementRepo(entity.VariantInterior)
	constructionRepo := newFakeEngagementRepo(entity.VariantConstruction)
	hireRepo := newFakeHireRequestRepo()
	workerRepo := newFakeWorkerRepo()
	provisioner := &recordingProvisioner{}

	registry := newTestRegistry(architectRepo, interiorRepo, constructionRepo, hireRepo)
	uc := NewEngagementUseCase(registry, workerRepo, provisioner)

	return uc, architectRepo, interiorRepo, constructionRepo, hireRepo, workerRepo, provisioner
}

func TestCreateSetsPendingLiteral(t *testing.T) {
	uc, architectRepo, _, constructionRepo, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	hiring, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", hiring.(*entity.ArchitectHiring).Status)
	assert.Len(t, architectRepo.items, 1)

	project, err := uc.Create(ctx, &entity.ConstructionProject{CustomerID: "cust-1", CompanyID: "comp-1"})
	require.NoError(t, err)
	assert.Equal(t, "pending", project.(*entity.ConstructionProject).Status)
	assert.Len(t, constructionRepo.items, 1)
}

func TestSubmitProposalOnlyForConstruction(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	_, err := uc.SubmitProposal(ctx, entity.VariantArchitect, "any", "arch-1", 1000, "plans")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestSubmitProposalFlow(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ConstructionProject{CustomerID: "cust-1", CompanyID: "comp-1"})
	require.NoError(t, err)
	id := created.EngagementID()

	_, err = uc.SubmitProposal(ctx, entity.VariantConstruction, id, "comp-other", 5000, "offer")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	result, err := uc.SubmitProposal(ctx, entity.VariantConstruction, id, "comp-1", 5000, "offer")
	require.NoError(t, err)

	project := result.(*entity.ConstructionProject)
	assert.Equal(t, "proposal_sent", project.Status)
	require.NotNil(t, project.Proposal)
	assert.Equal(t, 5000.0, project.Proposal.Price)
	assert.Equal(t, "offer", project.Proposal.Description)
	assert.False(t, project.Proposal.SentAt.IsZero())

	// proposal_sent has no second proposal_sent transition
	_, err = uc.SubmitProposal(ctx, entity.VariantConstruction, id, "comp-1", 6000, "again")
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestUpdateStatusLiteralIsExact(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)

	// lower-case literal belongs to other variants, not this one
	_, err = uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-1", "accepted")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	result, err := uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-1", "Accepted")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", result.(*entity.ArchitectHiring).Status)
}

func TestUpdateStatusRejectsWrongActor(t *testing.T) {
	uc, _, _, _, _, _, provisioner := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-2", "Accepted")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, provisioner.engagementRooms)
}

func TestUpdateStatusResolvedIsTerminal(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-1", "Rejected")
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-1", "Accepted")
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestAcceptProvisionsChatRoom(t *testing.T) {
	uc, _, _, _, _, _, provisioner := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-1", "Accepted")
	require.NoError(t, err)

	require.Len(t, provisioner.engagementRooms, 1)
	assert.Equal(t, entity.ProjectRoomID(created.EngagementID(), entity.VariantArchitect), provisioner.engagementRooms[0])
}

func TestRejectDoesNotProvisionChat(t *testing.T) {
	uc, _, _, _, _, _, provisioner := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.DesignRequest{CustomerID: "cust-1", WorkerID: "des-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, entity.VariantInterior, created.EngagementID(), "des-1", "rejected")
	require.NoError(t, err)
	assert.Empty(t, provisioner.engagementRooms)
}

func TestProvisionFailureDoesNotFailAcceptance(t *testing.T) {
	uc, _, _, _, _, _, provisioner := newEngagementFixture()
	provisioner.err = errors.Internal("store down", nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)

	result, err := uc.UpdateStatus(ctx, entity.VariantArchitect, created.EngagementID(), "arch-1", "Accepted")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", result.(*entity.ArchitectHiring).Status)
}

func TestCompanyHireAcceptProvisionsHiringRoom(t *testing.T) {
	uc, _, _, _, _, _, provisioner := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.CompanyHireRequest{Company: "comp-1", Worker: "work-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, entity.VariantCompanyHire, created.EngagementID(), "work-1", "Accepted")
	require.NoError(t, err)

	require.Len(t, provisioner.hiringPairs, 1)
	assert.Equal(t, [2]string{"work-1", "comp-1"}, provisioner.hiringPairs[0])
}

func TestProjectUpdatesPrependNewestFirst(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ConstructionProject{CustomerID: "cust-1", CompanyID: "comp-1"})
	require.NoError(t, err)
	id := created.EngagementID()

	_, err = uc.PostProjectUpdate(ctx, entity.VariantConstruction, id, "comp-1", "foundation", "")
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	_, err = uc.UpdateStatus(ctx, entity.VariantConstruction, id, "comp-1", "accepted")
	require.NoError(t, err)

	_, err = uc.PostProjectUpdate(ctx, entity.VariantConstruction, id, "comp-1", "foundation", "")
	require.NoError(t, err)
	result, err := uc.PostProjectUpdate(ctx, entity.VariantConstruction, id, "comp-1", "framing", "frame.jpg")
	require.NoError(t, err)

	updates := result.UpdateEntries()
	require.Len(t, updates, 2)
	assert.Equal(t, "framing", updates[0].Text)
	assert.Equal(t, "foundation", updates[1].Text)
}

func TestArchitectHiringUpdatesPrependNewestFirst(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)
	id := created.EngagementID()

	_, err = uc.UpdateStatus(ctx, entity.VariantArchitect, id, "arch-1", "Accepted")
	require.NoError(t, err)

	_, err = uc.PostProjectUpdate(ctx, entity.VariantArchitect, id, "arch-1", "site survey done", "")
	require.NoError(t, err)
	result, err := uc.PostProjectUpdate(ctx, entity.VariantArchitect, id, "arch-1", "first drafts ready", "draft.jpg")
	require.NoError(t, err)

	updates := result.UpdateEntries()
	require.Len(t, updates, 2)
	assert.Equal(t, "first drafts ready", updates[0].Text)
	assert.Equal(t, "site survey done", updates[1].Text)

	_, err = uc.PostProjectUpdate(ctx, entity.VariantArchitect, id, "cust-1", "looks great", "")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkCompleted(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, &entity.ConstructionProject{CustomerID: "cust-1", CompanyID: "comp-1"})
	require.NoError(t, err)
	id := created.EngagementID()

	_, err = uc.MarkCompleted(ctx, entity.VariantConstruction, id, "comp-1")
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	_, err = uc.UpdateStatus(ctx, entity.VariantConstruction, id, "comp-1", "accepted")
	require.NoError(t, err)

	result, err := uc.MarkCompleted(ctx, entity.VariantConstruction, id, "comp-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", result.(*entity.ConstructionProject).Status)
}

func TestMarkCompletedUnsupportedForHireRequests(t *testing.T) {
	uc, _, _, _, _, _, _ := newEngagementFixture()
	ctx := context.Background()

	_, err := uc.MarkCompleted(ctx, entity.VariantCompanyHire, "any", "work-1")
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestListJobsForWorkerPicksDiscipline(t *testing.T) {
	uc, _, _, _, _, workerRepo, _ := newEngagementFixture()
	ctx := context.Background()

	workerRepo.workers["arch-1"] = &entity.Worker{ID: "arch-1", IsArchitect: true}
	workerRepo.workers["des-1"] = &entity.Worker{ID: "des-1", IsArchitect: false}

	_, err := uc.Create(ctx, &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &entity.DesignRequest{CustomerID: "cust-1", WorkerID: "des-1"})
	require.NoError(t, err)

	archJobs, err := uc.ListJobsForWorker(ctx, "arch-1")
	require.NoError(t, err)
	require.Len(t, archJobs, 1)
	assert.Equal(t, entity.VariantArchitect, archJobs[0].Variant())

	interiorJobs, err := uc.ListJobsForWorker(ctx, "des-1")
	require.NoError(t, err)
	require.Len(t, interiorJobs, 1)
	assert.Equal(t, entity.VariantInterior, interiorJobs[0].Variant())
}
