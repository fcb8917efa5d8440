package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLiteralSpellingPerVariant(t *testing.T) {
	cases := []struct {
		variant EngagementVariant
		status  EngagementStatus
		literal string
	}{
		{VariantArchitect, StatusPending, "Pending"},
		{VariantArchitect, StatusAccepted, "Accepted"},
		{VariantInterior, StatusPending, "pending"},
		{VariantInterior, StatusRejected, "rejected"},
		{VariantConstruction, StatusProposalSent, "proposal_sent"},
		{VariantConstruction, StatusCompleted, "completed"},
		{VariantCompanyHire, StatusAccepted, "Accepted"},
	}

	for _, tc := range cases {
		lit, ok := StatusLiteral(tc.variant, tc.status)
		assert.True(t, ok, "%s/%s", tc.variant, tc.status)
		assert.Equal(t, tc.literal, lit)
	}
}

func TestStatusDomainGaps(t *testing.T) {
	// only construction projects carry a proposal state
	assert.False(t, VariantSupports(VariantArchitect, StatusProposalSent))
	assert.False(t, VariantSupports(VariantInterior, StatusProposalSent))
	assert.False(t, VariantSupports(VariantCompanyHire, StatusProposalSent))
	assert.True(t, VariantSupports(VariantConstruction, StatusProposalSent))

	// hire requests resolve at accept/reject, they are never completed
	assert.False(t, VariantSupports(VariantCompanyHire, StatusCompleted))
}

func TestParseStatusLiteralIsCaseExact(t *testing.T) {
	_, ok := ParseStatusLiteral(VariantArchitect, "accepted")
	assert.False(t, ok)

	s, ok := ParseStatusLiteral(VariantArchitect, "Accepted")
	assert.True(t, ok)
	assert.Equal(t, StatusAccepted, s)

	_, ok = ParseStatusLiteral(VariantInterior, "Accepted")
	assert.False(t, ok)

	s, ok = ParseStatusLiteral(VariantInterior, "accepted")
	assert.True(t, ok)
	assert.Equal(t, StatusAccepted, s)
}

func TestTransitions(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusProposalSent))
	assert.True(t, CanTransition(StatusPending, StatusAccepted))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusProposalSent, StatusAccepted))
	assert.True(t, CanTransition(StatusProposalSent, StatusRejected))
	assert.True(t, CanTransition(StatusAccepted, StatusCompleted))

	// terminal states
	assert.False(t, CanTransition(StatusRejected, StatusAccepted))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
	assert.False(t, CanTransition(StatusAccepted, StatusPending))
	assert.False(t, CanTransition(StatusAccepted, StatusProposalSent))
}

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"architect", "interior", "construction", "company-hire"} {
		v, ok := ParseVariant(s)
		assert.True(t, ok)
		assert.Equal(t, EngagementVariant(s), v)
	}

	_, ok := ParseVariant("plumbing")
	assert.False(t, ok)
}
