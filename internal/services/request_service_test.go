package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func pendingRequest() *models.MentorshipRequest {
	return &models.MentorshipRequest{
		ID:       "request-1",
		MentorID: "profile-1",
		MenteeID: "mentee-user-1",
		Message:  "please mentor me",
		Status:   models.RequestStatusPending,
	}
}

func TestRequestService_Create(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	mockNotifier := new(MockNotifier)
	service := services.NewRequestService(mockRequests, mockProfiles, mockNotifier)
	ctx := context.Background()

	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockRequests.On("FindPendingByPair", ctx, "profile-1", "mentee-user-1").Return(nil, nil).Once()
	mockRequests.On("Create", ctx, mock.Anything).Return(pendingRequest(), nil).Once()
	mockNotifier.On("Notify", ctx, "mentor-user-1", "request_created", mock.Anything, mock.Anything, mock.Anything).Return()

	created, err := service.Create(ctx, mentee(), &models.CreateRequestPayload{
		MentorID: "profile-1",
		Message:  "please mentor me",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, created.Status)

	stored := mockRequests.Calls[1].Arguments.Get(1).(*models.MentorshipRequest)
	assert.Equal(t, "mentee-user-1", stored.MenteeID)
	assert.Equal(t, "profile-1", stored.MentorID)

	mockRequests.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestRequestService_Create_MentorNotFound(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	service := services.NewRequestService(mockRequests, mockProfiles, new(MockNotifier))
	ctx := context.Background()

	mockProfiles.On("GetByID", ctx, "missing").Return(nil, apperrors.NotFoundError("mentor profile")).Once()

	_, err := service.Create(ctx, mentee(), &models.CreateRequestPayload{MentorID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	mockRequests.AssertNotCalled(t, "Create")
}

func TestRequestService_Create_SelfRequest(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	service := services.NewRequestService(mockRequests, mockProfiles, new(MockNotifier))
	ctx := context.Background()

	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()

	self := &models.UserSession{UserID: "mentor-user-1"}
	_, err := service.Create(ctx, self, &models.CreateRequestPayload{MentorID: "profile-1"})
	assert.ErrorIs(t, err, apperrors.ErrSelfRequest)

	mockRequests.AssertNotCalled(t, "FindPendingByPair")
	mockRequests.AssertNotCalled(t, "Create")
}

func TestRequestService_Create_DuplicatePending(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	service := services.NewRequestService(mockRequests, mockProfiles, new(MockNotifier))
	ctx := context.Background()

	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockRequests.On("FindPendingByPair", ctx, "profile-1", "mentee-user-1").Return(pendingRequest(), nil).Once()

	_, err := service.Create(ctx, mentee(), &models.CreateRequestPayload{MentorID: "profile-1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)

	mockRequests.AssertNotCalled(t, "Create")
}

func TestRequestService_Create_AfterRejection(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	mockNotifier := new(MockNotifier)
	service := services.NewRequestService(mockRequests, mockProfiles, mockNotifier)
	ctx := context.Background()

	// A rejected prior request is terminal; only a live pending one blocks
	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockRequests.On("FindPendingByPair", ctx, "profile-1", "mentee-user-1").Return(nil, nil).Once()
	mockRequests.On("Create", ctx, mock.Anything).Return(pendingRequest(), nil).Once()
	mockNotifier.On("Notify", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := service.Create(ctx, mentee(), &models.CreateRequestPayload{MentorID: "profile-1"})
	assert.NoError(t, err)
}

func TestRequestService_Respond_Accept(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	mockNotifier := new(MockNotifier)
	service := services.NewRequestService(mockRequests, mockProfiles, mockNotifier)
	ctx := context.Background()

	accepted := pendingRequest()
	accepted.Status = models.RequestStatusAccepted

	mockRequests.On("GetByID", ctx, "request-1").Return(pendingRequest(), nil).Once()
	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockRequests.On("UpdateResponse", ctx, "request-1", models.RequestStatusAccepted, "welcome aboard").Return(accepted, nil).Once()
	mockNotifier.On("Notify", ctx, "mentee-user-1", "request_accepted", mock.Anything, mock.Anything, mock.Anything).Return()

	mentor := &models.UserSession{UserID: "mentor-user-1", Name: "Max Mentor"}
	updated, err := service.Respond(ctx, mentor, "request-1", &models.RespondRequestPayload{
		Status:  models.RequestStatusAccepted,
		Message: "welcome aboard",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, updated.Status)

	mockRequests.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestRequestService_Respond_Forbidden(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	service := services.NewRequestService(mockRequests, mockProfiles, new(MockNotifier))
	ctx := context.Background()

	mockRequests.On("GetByID", ctx, "request-1").Return(pendingRequest(), nil).Once()
	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()

	intruder := &models.UserSession{UserID: "someone-else"}
	_, err := service.Respond(ctx, intruder, "request-1", &models.RespondRequestPayload{
		Status: models.RequestStatusAccepted,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	mockRequests.AssertNotCalled(t, "UpdateResponse")
}

func TestRequestService_Respond_AlreadyAnswered(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	service := services.NewRequestService(mockRequests, mockProfiles, new(MockNotifier))
	ctx := context.Background()

	answered := pendingRequest()
	answered.Status = models.RequestStatusAccepted

	mockRequests.On("GetByID", ctx, "request-1").Return(answered, nil).Once()
	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()

	mentor := &models.UserSession{UserID: "mentor-user-1"}
	_, err := service.Respond(ctx, mentor, "request-1", &models.RespondRequestPayload{
		Status: models.RequestStatusRejected,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	mockRequests.AssertNotCalled(t, "UpdateResponse")
}

func TestRequestService_Cancel(t *testing.T) {
	mockRequests := new(MockRequestStore)
	service := services.NewRequestService(mockRequests, new(MockProfileStore), new(MockNotifier))
	ctx := context.Background()

	cancelled := pendingRequest()
	cancelled.Status = models.RequestStatusCancelled

	mockRequests.On("GetByID", ctx, "request-1").Return(pendingRequest(), nil).Once()
	mockRequests.On("UpdateStatus", ctx, "request-1", models.RequestStatusCancelled).Return(cancelled, nil).Once()

	updated, err := service.Cancel(ctx, mentee(), "request-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, updated.Status)
}

func TestRequestService_Cancel_Forbidden(t *testing.T) {
	mockRequests := new(MockRequestStore)
	service := services.NewRequestService(mockRequests, new(MockProfileStore), new(MockNotifier))
	ctx := context.Background()

	mockRequests.On("GetByID", ctx, "request-1").Return(pendingRequest(), nil).Once()

	intruder := &models.UserSession{UserID: "someone-else"}
	_, err := service.Cancel(ctx, intruder, "request-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	mockRequests.AssertNotCalled(t, "UpdateStatus")
}

func TestRequestService_Cancel_AlreadyAnswered(t *testing.T) {
	mockRequests := new(MockRequestStore)
	service := services.NewRequestService(mockRequests, new(MockProfileStore), new(MockNotifier))
	ctx := context.Background()

	answered := pendingRequest()
	answered.Status = models.RequestStatusAccepted
	mockRequests.On("GetByID", ctx, "request-1").Return(answered, nil).Once()

	_, err := service.Cancel(ctx, mentee(), "request-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRequestService_ListForActor(t *testing.T) {
	mockRequests := new(MockRequestStore)
	mockProfiles := new(MockProfileStore)
	service := services.NewRequestService(mockRequests, mockProfiles, new(MockNotifier))
	ctx := context.Background()

	mockRequests.On("ListForMentee", ctx, "user-1").Return([]*models.MentorshipRequest{{ID: "r1"}}, nil).Once()
	mockProfiles.On("GetByUserID", ctx, "user-1").Return(&models.MentorProfile{ID: "profile-9", UserID: "user-1"}, nil).Once()
	mockRequests.On("ListForMentor", ctx, "profile-9").Return([]*models.MentorshipRequest{{ID: "r2"}}, nil).Once()

	actor := &models.UserSession{UserID: "user-1"}
	resp, err := service.ListForActor(ctx, actor)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
