package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// MockProfileStore is a mock implementation of repository.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetByID(ctx context.Context, id string) (*models.MentorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorProfile), args.Error(1)
}

func (m *MockProfileStore) GetByUserID(ctx context.Context, userID string) (*models.MentorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorProfile), args.Error(1)
}

func (m *MockProfileStore) GetAllAvailable(ctx context.Context) ([]*models.MentorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorProfile), args.Error(1)
}

// MockSessionStore is a mock implementation of repository.SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session *models.MentorshipSession) (*models.MentorshipSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) FindOverlapping(ctx context.Context, mentorID string, startTime, endTime time.Time) (*models.MentorshipSession, error) {
	args := m.Called(ctx, mentorID, startTime, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) GetByID(ctx context.Context, id string) (*models.MentorshipSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.MentorshipSession, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) UpdateFeedback(ctx context.Context, id string, rating int, feedback string) (*models.MentorshipSession, error) {
	args := m.Called(ctx, id, rating, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) ListForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipSession, error) {
	args := m.Called(ctx, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionStore) ListCompletedForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipSession), args.Error(1)
}

// MockRequestStore is a mock implementation of repository.RequestStore
type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Create(ctx context.Context, request *models.MentorshipRequest) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestStore) FindPendingByPair(ctx context.Context, mentorID, menteeID string) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, mentorID, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestStore) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestStore) UpdateResponse(ctx context.Context, id string, status models.RequestStatus, responseMessage string) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id, status, responseMessage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestStore) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestStore) ListForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}

func (m *MockRequestStore) ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}

// MockInterestStore is a mock implementation of repository.InterestStore
type MockInterestStore struct {
	mock.Mock
}

func (m *MockInterestStore) GetInterestTags(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockNotifier is a mock implementation of notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID, kind, title, message string, metadata map[string]string) {
	m.Called(ctx, userID, kind, title, message, metadata)
}

// MockLinkProvider is a mock implementation of meeting.LinkProvider
type MockLinkProvider struct {
	mock.Mock
}

func (m *MockLinkProvider) GenerateLink() string {
	args := m.Called()
	return args.String(0)
}
