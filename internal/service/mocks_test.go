package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/circlesapp/server/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateCredentials(ctx context.Context, id, passwordHash, salt string) error {
	args := m.Called(ctx, id, passwordHash, salt)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePushToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateLoginTime(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) Withdraw(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) ListClubIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

// MockClubRepo
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Create(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}
func (m *MockClubRepo) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) UpdateProfile(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}
func (m *MockClubRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClubRepo) AddMember(ctx context.Context, clubID, userID string, rankID int32) error {
	args := m.Called(ctx, clubID, userID, rankID)
	return args.Error(0)
}
func (m *MockClubRepo) RemoveMember(ctx context.Context, clubID, userID string) error {
	args := m.Called(ctx, clubID, userID)
	return args.Error(0)
}

// MockApplicantRepo
type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) Create(ctx context.Context, app *domain.Applicant) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicantRepo) GetByID(ctx context.Context, id string) (*domain.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) GetByClubAndOwner(ctx context.Context, clubID, ownerID string) (*domain.Applicant, error) {
	args := m.Called(ctx, clubID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) ListByClub(ctx context.Context, clubID string) ([]domain.Applicant, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockApplicantRepo) Update(ctx context.Context, app *domain.Applicant) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicantRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApplicantRepo) DeleteByClub(ctx context.Context, clubID string) error {
	args := m.Called(ctx, clubID)
	return args.Error(0)
}
func (m *MockApplicantRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepo
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}
func (m *MockPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
func (m *MockPostRepo) ListByClub(ctx context.Context, clubID string) ([]domain.Post, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Post), args.Error(1)
}
func (m *MockPostRepo) ListPublicByClub(ctx context.Context, clubID string) ([]domain.Post, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Post), args.Error(1)
}
func (m *MockPostRepo) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}
func (m *MockPostRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPostRepo) DeleteByClub(ctx context.Context, clubID string) error {
	args := m.Called(ctx, clubID)
	return args.Error(0)
}
func (m *MockPostRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAwardRepo
type MockAwardRepo struct {
	mock.Mock
}

func (m *MockAwardRepo) Create(ctx context.Context, award *domain.Award) error {
	args := m.Called(ctx, award)
	return args.Error(0)
}
func (m *MockAwardRepo) GetByID(ctx context.Context, id string) (*domain.Award, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Award), args.Error(1)
}
func (m *MockAwardRepo) ListByClub(ctx context.Context, clubID string) ([]domain.Award, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Award), args.Error(1)
}
func (m *MockAwardRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAwardRepo) DeleteByClub(ctx context.Context, clubID string) error {
	args := m.Called(ctx, clubID)
	return args.Error(0)
}
func (m *MockAwardRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBudgetRepo
type MockBudgetRepo struct {
	mock.Mock
}

func (m *MockBudgetRepo) Create(ctx context.Context, budget *domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}
func (m *MockBudgetRepo) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetRepo) ListByClub(ctx context.Context, clubID string) ([]domain.Budget, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Budget), args.Error(1)
}
func (m *MockBudgetRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBudgetRepo) DeleteByClub(ctx context.Context, clubID string) error {
	args := m.Called(ctx, clubID)
	return args.Error(0)
}
func (m *MockBudgetRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCalendarRepo
type MockCalendarRepo struct {
	mock.Mock
}

func (m *MockCalendarRepo) Create(ctx context.Context, entry *domain.CalendarEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockCalendarRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarEntry), args.Error(1)
}
func (m *MockCalendarRepo) ListByClub(ctx context.Context, clubID string) ([]domain.CalendarEntry, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.CalendarEntry), args.Error(1)
}
func (m *MockCalendarRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCalendarRepo) DeleteByClub(ctx context.Context, clubID string) error {
	args := m.Called(ctx, clubID)
	return args.Error(0)
}
func (m *MockCalendarRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAlarmRepo
type MockAlarmRepo struct {
	mock.Mock
}

func (m *MockAlarmRepo) Append(ctx context.Context, userID, message string) (*domain.Alarm, error) {
	args := m.Called(ctx, userID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alarm), args.Error(1)
}
func (m *MockAlarmRepo) ListByUser(ctx context.Context, userID string) ([]domain.Alarm, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Alarm), args.Error(1)
}
func (m *MockAlarmRepo) Delete(ctx context.Context, userID string, alarmID int64) error {
	args := m.Called(ctx, userID, alarmID)
	return args.Error(0)
}
func (m *MockAlarmRepo) DeleteAll(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockAlarmRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// recordingNotifier captures every side-channel message in order.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []sentAlarm
}

type sentAlarm struct {
	UserID  string
	Message string
}

func (n *recordingNotifier) Notify(ctx context.Context, user *domain.User, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, sentAlarm{UserID: user.ID, Message: message})
}

func (n *recordingNotifier) sent() []sentAlarm {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentAlarm(nil), n.messages...)
}

// nopEmail satisfies EmailService without sending anything.
type nopEmail struct{}

func (nopEmail) SendWelcome(ctx context.Context, email, name string) error              { return nil }
func (nopEmail) SendAcceptance(ctx context.Context, email, name, clubName string) error { return nil }
func (nopEmail) SendRejection(ctx context.Context, email, name, clubName string) error  { return nil }

// fakeSender records push deliveries and can be made to fail.
type fakeSender struct {
	mu     sync.Mutex
	tokens []string
	err    error
}

func (s *fakeSender) Send(ctx context.Context, deviceToken, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, deviceToken)
	return s.err
}
