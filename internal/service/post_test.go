package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circlesapp/server/internal/domain"
)

func TestPostWrite_SetsClubAndOwner(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Post")).Return(nil)

	post, err := svc.Write(context.Background(), &domain.User{ID: "member-1"}, memberClub(), &domain.Post{Title: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "club-1", post.ClubID)
	assert.Equal(t, "member-1", post.OwnerID)
}

func TestPostWrite_NonMemberForbidden(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	_, err := svc.Write(context.Background(), &domain.User{ID: "stranger"}, memberClub(), &domain.Post{Title: "hello"})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// The club owner without a membership row is denied like any outsider.
func TestPostWrite_OwnerWithoutMembershipForbidden(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)
	club := memberClub()
	club.Members = []domain.Member{{UserID: "member-1", RankID: domain.RankDefault}}

	_, err := svc.Write(context.Background(), &domain.User{ID: "owner-1"}, club, &domain.Post{Title: "hello"})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestPostListPublic_NoGate(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("ListPublicByClub", mock.Anything, "club-1").Return([]domain.Post{{ID: "p1", IsPublic: true}}, nil)

	list, err := svc.ListPublic(context.Background(), memberClub())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestPostDelete_WrongClubIsNotFound(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "other-club"}, nil)

	err := svc.Delete(context.Background(), &domain.User{ID: "member-1"}, memberClub(), "p1")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostDelete_AuthorDeletesOwn(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "club-1", OwnerID: "member-1"}, nil)
	posts.On("Delete", mock.Anything, "p1").Return(nil)

	err := svc.Delete(context.Background(), &domain.User{ID: "member-1"}, memberClub(), "p1")
	require.NoError(t, err)
}

// A default-rank member holds post:delete for their own posts only;
// another member's post stays out of reach without an admin rank.
func TestPostDelete_DefaultMemberCannotModerate(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)
	club := memberClub()
	club.Members = append(club.Members, domain.Member{UserID: "member-2", RankID: domain.RankDefault})

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "club-1", OwnerID: "member-1"}, nil)

	err := svc.Delete(context.Background(), &domain.User{ID: "member-2"}, club, "p1")
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostDelete_AdminModeratesOthersPost(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "club-1", OwnerID: "member-1"}, nil)
	posts.On("Delete", mock.Anything, "p1").Return(nil)

	err := svc.Delete(context.Background(), &domain.User{ID: "owner-1"}, memberClub(), "p1")
	require.NoError(t, err)
}

func TestPostModify_AuthorAppliesAllowlist(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "club-1", OwnerID: "member-1", Title: "old", Content: "body"}, nil)
	posts.On("Update", mock.Anything, mock.AnythingOfType("*domain.Post")).Return(nil)

	title := "new"
	public := true
	post, err := svc.Modify(context.Background(), &domain.User{ID: "member-1"}, memberClub(), "p1", domain.PostUpdate{Title: &title, IsPublic: &public})
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "body", post.Content)
	assert.True(t, post.IsPublic)
}

func TestPostModify_DefaultMemberCannotModerate(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)
	club := memberClub()
	club.Members = append(club.Members, domain.Member{UserID: "member-2", RankID: domain.RankDefault})

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "club-1", OwnerID: "member-1"}, nil)

	title := "defaced"
	_, err := svc.Modify(context.Background(), &domain.User{ID: "member-2"}, club, "p1", domain.PostUpdate{Title: &title})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPostModify_WrongClubIsNotFound(t *testing.T) {
	posts := new(MockPostRepo)
	svc := NewPostService(posts)

	posts.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", ClubID: "other-club", OwnerID: "member-1"}, nil)

	_, err := svc.Modify(context.Background(), &domain.User{ID: "member-1"}, memberClub(), "p1", domain.PostUpdate{})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestAwardListPublic_NoGate(t *testing.T) {
	awards := new(MockAwardRepo)
	svc := NewAwardService(awards)

	awards.On("ListByClub", mock.Anything, "club-1").Return([]domain.Award{{ID: "a1"}}, nil)

	list, err := svc.ListPublic(context.Background(), memberClub())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestBudgetListPublic_NoGate(t *testing.T) {
	budgets := new(MockBudgetRepo)
	svc := NewBudgetService(budgets)

	budgets.On("ListByClub", mock.Anything, "club-1").Return([]domain.Budget{{ID: "b1"}}, nil)

	list, err := svc.ListPublic(context.Background(), memberClub())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCalendarListPublic_NoGate(t *testing.T) {
	calendar := new(MockCalendarRepo)
	svc := NewCalendarService(calendar)

	calendar.On("ListByClub", mock.Anything, "club-1").Return([]domain.CalendarEntry{{ID: "c1"}}, nil)

	list, err := svc.ListPublic(context.Background(), memberClub())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestBudgetWrite_DefaultRankDenied(t *testing.T) {
	budgets := new(MockBudgetRepo)
	svc := NewBudgetService(budgets)

	_, err := svc.Write(context.Background(), &domain.User{ID: "member-1"}, memberClub(), &domain.Budget{Item: "motors"})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	budgets.On("Create", mock.Anything, mock.AnythingOfType("*domain.Budget")).Return(nil)
	budget, err := svc.Write(context.Background(), &domain.User{ID: "owner-1"}, memberClub(), &domain.Budget{Item: "motors"})
	require.NoError(t, err)
	assert.Equal(t, "club-1", budget.ClubID)
}

func TestCalendarList_DefaultRankAllowed(t *testing.T) {
	calendar := new(MockCalendarRepo)
	svc := NewCalendarService(calendar)

	calendar.On("ListByClub", mock.Anything, "club-1").Return([]domain.CalendarEntry{}, nil)

	_, err := svc.List(context.Background(), &domain.User{ID: "member-1"}, memberClub())
	require.NoError(t, err)
}
