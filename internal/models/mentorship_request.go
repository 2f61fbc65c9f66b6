package models

import (
	"time"

	"github.com/jackc/pgx/v5"
)

// RequestStatus represents the status of a mentorship request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// IsTerminalStatus returns true if the status is terminal (no further transitions allowed)
func (s RequestStatus) IsTerminalStatus() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected || s == RequestStatusCancelled
}

// CanTransitionTo checks if a status transition is valid. The only live state
// is pending; every transition out of it is terminal.
func (s RequestStatus) CanTransitionTo(newStatus RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}
	switch newStatus {
	case RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// MentorshipRequest represents a mentee's introduction request to a mentor.
// MentorID references the mentor profile; MenteeID references the mentee's
// user. Once terminal, a request is immutable.
type MentorshipRequest struct {
	ID              string        `json:"id"`
	MentorID        string        `json:"mentorId"`
	MenteeID        string        `json:"menteeId"`
	Message         string        `json:"message"`
	ResponseMessage *string       `json:"responseMessage"`
	Status          RequestStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// CreateRequestPayload is the payload for creating a mentorship request
type CreateRequestPayload struct {
	MentorID string `json:"mentorId" binding:"required"`
	Message  string `json:"message" binding:"max=2000"`
}

// RespondRequestPayload is the payload for a mentor answering a request
type RespondRequestPayload struct {
	Status  RequestStatus `json:"status" binding:"required,oneof=accepted rejected"`
	Message string        `json:"message" binding:"max=2000"`
}

// RequestsResponse is the response for listing requests
type RequestsResponse struct {
	Requests []MentorshipRequest `json:"requests"`
	Total    int                 `json:"total"`
}

// ScanMentorshipRequest scans a single row into a MentorshipRequest.
// Expected columns: id, mentor_id, mentee_id, message, response_message,
// status, created_at, updated_at.
func ScanMentorshipRequest(row pgx.Row) (*MentorshipRequest, error) {
	var r MentorshipRequest
	var message *string

	err := row.Scan(
		&r.ID,
		&r.MentorID,
		&r.MenteeID,
		&message,
		&r.ResponseMessage,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Message = derefString(message)

	return &r, nil
}

// ScanMentorshipRequests scans multiple rows into a slice of MentorshipRequest
func ScanMentorshipRequests(rows pgx.Rows) ([]*MentorshipRequest, error) {
	defer rows.Close()

	requests := []*MentorshipRequest{}
	for rows.Next() {
		request, err := ScanMentorshipRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
