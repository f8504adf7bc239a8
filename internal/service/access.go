package service

import (
	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/logger"
)

// requireCapability gates a sub-resource mutation: membership first
// (distinct message, matching the original flow of "not in the club"
// before "no permission inside the club"), then the capability through
// the member's rank. Membership is always taken from the club as
// resolved for this request, never from a cached copy.
func requireCapability(actor *domain.User, club *domain.Club, p domain.Permission) error {
	if club.Member(actor.ID) == nil {
		return domain.Forbidden("not a member of club %s", club.Name)
	}
	ok, err := club.HasCapability(actor.ID, p)
	if err != nil {
		logger.Error("rank resolution failed", "club_id", club.ID, "user_id", actor.ID, "error", err)
		return err
	}
	if !ok {
		return domain.Forbidden("missing %s capability in club %s", p, club.Name)
	}
	return nil
}

// requireAuthorOrAdmin guards moderation of another member's resource:
// the author may always touch their own, anyone else needs an admin
// rank on top of the capability already checked.
func requireAuthorOrAdmin(actor *domain.User, club *domain.Club, ownerID string) error {
	if actor.ID == ownerID || club.IsAdmin(actor.ID) {
		return nil
	}
	return domain.Forbidden("admin rank required to moderate another member's resource")
}
