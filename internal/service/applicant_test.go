package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circlesapp/server/internal/domain"
)

type applicantFixture struct {
	applicants *MockApplicantRepo
	clubs      *MockClubRepo
	users      *MockUserRepo
	notifier   *recordingNotifier
	svc        ApplicantService
}

func newApplicantFixture() *applicantFixture {
	f := &applicantFixture{
		applicants: new(MockApplicantRepo),
		clubs:      new(MockClubRepo),
		users:      new(MockUserRepo),
		notifier:   new(recordingNotifier),
	}
	f.svc = NewApplicantService(f.applicants, f.clubs, f.users, f.notifier, nopEmail{})
	return f
}

func TestApply_Success(t *testing.T) {
	f := newApplicantFixture()
	club := memberClub()

	f.applicants.On("GetByClubAndOwner", mock.Anything, "club-1", "cand-1").
		Return(nil, domain.NotFound("applicant not found"))
	f.applicants.On("Create", mock.Anything, mock.AnythingOfType("*domain.Applicant")).Return(nil)

	app, err := f.svc.Apply(context.Background(), &domain.User{ID: "cand-1"}, club, &domain.Applicant{Introduction: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "club-1", app.ClubID)
	assert.Equal(t, "cand-1", app.OwnerID)
}

func TestApply_AlreadyMember(t *testing.T) {
	f := newApplicantFixture()

	_, err := f.svc.Apply(context.Background(), &domain.User{ID: "member-1"}, memberClub(), &domain.Applicant{})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	f.applicants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApply_AlreadyPending(t *testing.T) {
	f := newApplicantFixture()

	f.applicants.On("GetByClubAndOwner", mock.Anything, "club-1", "cand-1").
		Return(&domain.Applicant{ID: "app-1"}, nil)

	_, err := f.svc.Apply(context.Background(), &domain.User{ID: "cand-1"}, memberClub(), &domain.Applicant{})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestModify_RewritesPendingApplication(t *testing.T) {
	f := newApplicantFixture()

	pending := &domain.Applicant{ID: "app-1", ClubID: "club-1", OwnerID: "cand-1", Introduction: "old"}
	f.applicants.On("GetByClubAndOwner", mock.Anything, "club-1", "cand-1").Return(pending, nil)
	f.applicants.On("Update", mock.Anything, pending).Return(nil)

	intro := "new intro"
	app, err := f.svc.Modify(context.Background(), &domain.User{ID: "cand-1"}, memberClub(), domain.ApplicantUpdate{Introduction: &intro})
	require.NoError(t, err)
	assert.Equal(t, "new intro", app.Introduction)
}

func TestListByClub_RequiresCapability(t *testing.T) {
	f := newApplicantFixture()
	club := memberClub()

	// Default rank carries no applicant capability.
	_, err := f.svc.ListByClub(context.Background(), &domain.User{ID: "member-1"}, club)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	f.applicants.On("ListByClub", mock.Anything, "club-1").Return([]domain.Applicant{}, nil)
	_, err = f.svc.ListByClub(context.Background(), &domain.User{ID: "owner-1"}, club)
	require.NoError(t, err)
}

func TestAccept_FullFlow(t *testing.T) {
	f := newApplicantFixture()
	club := memberClub()
	pending := &domain.Applicant{ID: "app-1", ClubID: "club-1", OwnerID: "cand-1"}

	f.applicants.On("GetByID", mock.Anything, "app-1").Return(pending, nil)
	f.users.On("GetByID", mock.Anything, "cand-1").Return(&domain.User{ID: "cand-1"}, nil)
	f.applicants.On("Delete", mock.Anything, "app-1").Return(nil)
	f.clubs.On("AddMember", mock.Anything, "club-1", "cand-1", domain.RankDefault).Return(nil)

	app, err := f.svc.Accept(context.Background(), &domain.User{ID: "owner-1"}, club, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "cand-1", sent[0].UserID)
	assert.Contains(t, sent[0].Message, "승인")
	f.applicants.AssertExpectations(t)
	f.clubs.AssertExpectations(t)
}

func TestAccept_ForbiddenWithoutCapability(t *testing.T) {
	f := newApplicantFixture()

	_, err := f.svc.Accept(context.Background(), &domain.User{ID: "member-1"}, memberClub(), "app-1")
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	f.applicants.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.sent())
}

// A delegated member whose rank carries the accept capability may run
// the acceptance without being the owner.
func TestAccept_DelegatedCapability(t *testing.T) {
	f := newApplicantFixture()
	club := memberClub()
	club.Ranks = append(club.Ranks, domain.Rank{
		ID: 2, Name: "recruiter",
		Capabilities: []domain.Permission{domain.PermApplicantRead, domain.PermApplicantAccept},
	})
	club.Members = append(club.Members, domain.Member{UserID: "recruiter-1", RankID: 2})
	pending := &domain.Applicant{ID: "app-1", ClubID: "club-1", OwnerID: "cand-1"}

	f.applicants.On("GetByID", mock.Anything, "app-1").Return(pending, nil)
	f.users.On("GetByID", mock.Anything, "cand-1").Return(&domain.User{ID: "cand-1"}, nil)
	f.applicants.On("Delete", mock.Anything, "app-1").Return(nil)
	f.clubs.On("AddMember", mock.Anything, "club-1", "cand-1", domain.RankDefault).Return(nil)

	_, err := f.svc.Accept(context.Background(), &domain.User{ID: "recruiter-1"}, club, "app-1")
	require.NoError(t, err)
}

func TestAccept_WrongClub(t *testing.T) {
	f := newApplicantFixture()

	f.applicants.On("GetByID", mock.Anything, "app-1").
		Return(&domain.Applicant{ID: "app-1", ClubID: "other-club", OwnerID: "cand-1"}, nil)

	_, err := f.svc.Accept(context.Background(), &domain.User{ID: "owner-1"}, memberClub(), "app-1")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestReject_NoMembershipCreated(t *testing.T) {
	f := newApplicantFixture()
	club := memberClub()
	pending := &domain.Applicant{ID: "app-1", ClubID: "club-1", OwnerID: "cand-1"}

	f.applicants.On("GetByID", mock.Anything, "app-1").Return(pending, nil)
	f.users.On("GetByID", mock.Anything, "cand-1").Return(&domain.User{ID: "cand-1"}, nil)
	f.applicants.On("Delete", mock.Anything, "app-1").Return(nil)

	app, err := f.svc.Reject(context.Background(), &domain.User{ID: "owner-1"}, club, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "거절")
	f.clubs.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGate_UnresolvedRankSurfaces(t *testing.T) {
	f := newApplicantFixture()
	club := memberClub()
	club.Members = append(club.Members, domain.Member{UserID: "ghost", RankID: 42})

	_, err := f.svc.ListByClub(context.Background(), &domain.User{ID: "ghost"}, club)
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
}
