package domain

// Permission is a fixed capability tag gating one action on one resource
// kind. The set is closed: adding a new gated resource means adding tags
// here first.
type Permission string

const (
	PermPostCreate Permission = "post:create"
	PermPostRead   Permission = "post:read"
	PermPostDelete Permission = "post:delete"

	PermAwardCreate Permission = "award:create"
	PermAwardRead   Permission = "award:read"
	PermAwardDelete Permission = "award:delete"

	PermBudgetCreate Permission = "budget:create"
	PermBudgetRead   Permission = "budget:read"
	PermBudgetDelete Permission = "budget:delete"

	PermCalendarCreate Permission = "calendar:create"
	PermCalendarRead   Permission = "calendar:read"
	PermCalendarDelete Permission = "calendar:delete"

	PermApplicantAccept Permission = "applicant:accept"
	PermApplicantRead   Permission = "applicant:read"
	PermApplicantDelete Permission = "applicant:delete"
)

// AllPermissions lists every known capability tag.
var AllPermissions = []Permission{
	PermPostCreate, PermPostRead, PermPostDelete,
	PermAwardCreate, PermAwardRead, PermAwardDelete,
	PermBudgetCreate, PermBudgetRead, PermBudgetDelete,
	PermCalendarCreate, PermCalendarRead, PermCalendarDelete,
	PermApplicantAccept, PermApplicantRead, PermApplicantDelete,
}

// Valid reports whether p is one of the known capability tags.
func (p Permission) Valid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// Rank is a named, club-scoped bundle of capabilities. IsAdmin implies
// every capability regardless of the Capabilities set.
type Rank struct {
	ID           int32        `json:"id"`
	Name         string       `json:"name"`
	IsAdmin      bool         `json:"is_admin"`
	Capabilities []Permission `json:"capabilities"`
}

// Has reports whether the rank carries the given capability.
func (r *Rank) Has(p Permission) bool {
	if r.IsAdmin {
		return true
	}
	for _, c := range r.Capabilities {
		if c == p {
			return true
		}
	}
	return false
}

// Well-known rank ids seeded at club creation.
const (
	RankAdmin   int32 = 0
	RankDefault int32 = 1
)

// DefaultRanks returns the rank set every new club starts with: an admin
// rank and a default member rank limited to reading plus post authoring.
func DefaultRanks() []Rank {
	return []Rank{
		{ID: RankAdmin, Name: "admin", IsAdmin: true},
		{ID: RankDefault, Name: "default", Capabilities: []Permission{
			PermPostCreate, PermPostRead, PermPostDelete,
			PermAwardRead, PermBudgetRead, PermCalendarRead,
		}},
	}
}
