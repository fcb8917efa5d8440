package entity

// EngagementVariant discriminates the four kinds of work engagement. The
// variant names double as the projectType segment in chat room ids.
type EngagementVariant string

const (
	VariantArchitect    EngagementVariant = "architect"
	VariantInterior     EngagementVariant = "interior"
	VariantConstruction EngagementVariant = "construction"
	VariantCompanyHire  EngagementVariant = "company-hire"
)

func ParseVariant(s string) (EngagementVariant, bool) {
	switch EngagementVariant(s) {
	case VariantArchitect, VariantInterior, VariantConstruction, VariantCompanyHire:
		return EngagementVariant(s), true
	}
	return "", false
}

// EngagementStatus is the canonical status used for all lifecycle logic.
// Each variant persists its own literal spelling (mixed casing inherited from
// the existing data); conversion happens only through the tables below.
type EngagementStatus int

const (
	StatusPending EngagementStatus = iota
	StatusProposalSent
	StatusAccepted
	StatusRejected
	StatusCompleted
)

func (s EngagementStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProposalSent:
		return "proposal_sent"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

var statusLiterals = map[EngagementVariant]map[EngagementStatus]string{
	VariantArchitect: {
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusRejected:  "Rejected",
		StatusCompleted: "Completed",
	},
	VariantInterior: {
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusRejected:  "rejected",
		StatusCompleted: "completed",
	},
	VariantConstruction: {
		StatusPending:      "pending",
		StatusProposalSent: "proposal_sent",
		StatusAccepted:     "accepted",
		StatusRejected:     "rejected",
		StatusCompleted:    "completed",
	},
	VariantCompanyHire: {
		StatusPending:  "Pending",
		StatusAccepted: "Accepted",
		StatusRejected: "Rejected",
	},
}

// StatusLiteral returns the stored spelling of a canonical status for the
// given variant. ok is false when the variant has no such state at all
// (e.g. proposal_sent outside construction projects).
func StatusLiteral(v EngagementVariant, s EngagementStatus) (string, bool) {
	lit, ok := statusLiterals[v][s]
	return lit, ok
}

// ParseStatusLiteral maps a stored or request-supplied literal back to the
// canonical status. Matching is exact: casing is part of the variant's
// contract.
func ParseStatusLiteral(v EngagementVariant, literal string) (EngagementStatus, bool) {
	for s, lit := range statusLiterals[v] {
		if lit == literal {
			return s, true
		}
	}
	return 0, false
}

// VariantSupports reports whether the variant's status domain contains s.
func VariantSupports(v EngagementVariant, s EngagementStatus) bool {
	_, ok := statusLiterals[v][s]
	return ok
}

var statusTransitions = map[EngagementStatus][]EngagementStatus{
	StatusPending:      {StatusProposalSent, StatusAccepted, StatusRejected},
	StatusProposalSent: {StatusAccepted, StatusRejected},
	StatusAccepted:     {StatusCompleted},
}

// CanTransition reports whether from -> to is a legal lifecycle move.
// Rejected and Completed are terminal.
func CanTransition(from, to EngagementStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
