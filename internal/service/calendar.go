package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
)

type calendarService struct {
	calendar repository.CalendarRepository
}

func NewCalendarService(calendar repository.CalendarRepository) CalendarService {
	return &calendarService{calendar: calendar}
}

func (s *calendarService) Write(ctx context.Context, actor *domain.User, club *domain.Club, entry *domain.CalendarEntry) (*domain.CalendarEntry, error) {
	if err := requireCapability(actor, club, domain.PermCalendarCreate); err != nil {
		return nil, err
	}
	entry.ClubID = club.ID
	if err := s.calendar.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *calendarService) List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.CalendarEntry, error) {
	if err := requireCapability(actor, club, domain.PermCalendarRead); err != nil {
		return nil, err
	}
	return s.calendar.ListByClub(ctx, club.ID)
}

// ListPublic returns the club's calendar with no membership or
// capability check.
func (s *calendarService) ListPublic(ctx context.Context, club *domain.Club) ([]domain.CalendarEntry, error) {
	return s.calendar.ListByClub(ctx, club.ID)
}

func (s *calendarService) Delete(ctx context.Context, actor *domain.User, club *domain.Club, entryID string) error {
	if err := requireCapability(actor, club, domain.PermCalendarDelete); err != nil {
		return err
	}
	entry, err := s.calendar.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.ClubID != club.ID {
		return domain.NotFound("calendar entry not found")
	}
	return s.calendar.Delete(ctx, entry.ID)
}
