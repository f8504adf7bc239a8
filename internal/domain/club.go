package domain

import "time"

// Member is the (user, rank) pair recorded in a club's member set.
type Member struct {
	UserID   string    `json:"user_id"`
	RankID   int32     `json:"rank_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// Club is an organization with exactly one owner, ranked members and
// owned sub-resources (posts, awards, budgets, calendar entries).
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImgPath     string    `json:"img_path"`
	OwnerID     string    `json:"owner_id"`
	Ranks       []Rank    `json:"ranks"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// Member returns the membership row for userID, or nil when the user is
// not a member of the club.
func (c *Club) Member(userID string) *Member {
	for i := range c.Members {
		if c.Members[i].UserID == userID {
			return &c.Members[i]
		}
	}
	return nil
}

// Rank resolves a rank by its club-scoped id, or nil when absent.
func (c *Club) Rank(id int32) *Rank {
	for i := range c.Ranks {
		if c.Ranks[i].ID == id {
			return &c.Ranks[i]
		}
	}
	return nil
}

// HasCapability answers whether userID may perform the given capability
// on this club. Non-members are always denied, the owner included:
// ownership alone carries no capability without a membership row. A
// member whose rank id does not resolve in the club's rank set is data
// corruption and surfaces as an InvalidState error rather than a deny.
func (c *Club) HasCapability(userID string, p Permission) (bool, error) {
	m := c.Member(userID)
	if m == nil {
		return false, nil
	}
	r := c.Rank(m.RankID)
	if r == nil {
		return false, InvalidState("member %s holds unresolved rank %d in club %s", userID, m.RankID, c.ID)
	}
	return r.Has(p), nil
}

// IsAdmin reports whether userID is a member holding an admin rank.
func (c *Club) IsAdmin(userID string) bool {
	m := c.Member(userID)
	if m == nil {
		return false
	}
	r := c.Rank(m.RankID)
	return r != nil && r.IsAdmin
}

// IsOwner reports whether userID owns the club. Ownership is independent
// of membership and gates only irrevocable actions such as closure.
func (c *Club) IsOwner(userID string) bool {
	return c.OwnerID == userID
}

// ClubUpdate is the explicit allowlist of mutable club profile fields.
// Identity, ownership, ranks and membership are never patched this way.
type ClubUpdate struct {
	Description *string `json:"description"`
	ImgPath     *string `json:"img_path"`
}

// Apply copies the set fields onto the club.
func (u ClubUpdate) Apply(c *Club) {
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.ImgPath != nil {
		c.ImgPath = *u.ImgPath
	}
}
