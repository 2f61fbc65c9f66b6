package models

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mentorhub/mentorhub-api/pkg/interval"
)

// SessionStatus represents the lifecycle status of a booked session
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// IsTerminalStatus returns true if the status is terminal
func (s SessionStatus) IsTerminalStatus() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// CanTransitionTo checks if a status transition is valid
func (s SessionStatus) CanTransitionTo(newStatus SessionStatus) bool {
	if s != SessionStatusScheduled {
		return false
	}
	return newStatus == SessionStatusCompleted || newStatus == SessionStatusCancelled
}

// MentorshipSession represents a booked slot between a mentor and a mentee.
// The interval is half-open [StartTime, EndTime); back-to-back sessions do
// not conflict. Sessions are never deleted, only transitioned.
type MentorshipSession struct {
	ID          string        `json:"id"`
	MentorID    string        `json:"mentorId"` // mentor profile id
	MenteeID    string        `json:"menteeId"` // mentee user id
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Status      SessionStatus `json:"status"`
	MeetingLink *string       `json:"meetingLink"`
	Rating      *int          `json:"rating"`
	Feedback    *string       `json:"feedback"`
	Notes       *string       `json:"notes"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Interval returns the session's time range
func (s *MentorshipSession) Interval() interval.Interval {
	return interval.Interval{Start: s.StartTime, End: s.EndTime}
}

// HasEnded reports whether the session's window is over at the given instant.
// Feedback becomes admissible exactly at the end instant.
func (s *MentorshipSession) HasEnded(now time.Time) bool {
	return !now.Before(s.EndTime)
}

// BookSessionPayload is the payload for booking a session
type BookSessionPayload struct {
	MentorID  string    `json:"mentorId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Notes     string    `json:"notes" binding:"max=2000"`
}

// FeedbackPayload is the payload for submitting session feedback. The rating
// range is enforced by the session service so out-of-range values map to the
// domain error rather than a generic binding failure.
type FeedbackPayload struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback" binding:"max=4000"`
}

// SessionsResponse is the response for listing sessions
type SessionsResponse struct {
	Sessions []MentorshipSession `json:"sessions"`
	Total    int                 `json:"total"`
}

// ScanMentorshipSession scans a single row into a MentorshipSession.
// Expected columns: id, mentor_id, mentee_id, start_time, end_time, status,
// meeting_link, rating, feedback, notes, created_at, updated_at.
func ScanMentorshipSession(row pgx.Row) (*MentorshipSession, error) {
	var s MentorshipSession

	err := row.Scan(
		&s.ID,
		&s.MentorID,
		&s.MenteeID,
		&s.StartTime,
		&s.EndTime,
		&s.Status,
		&s.MeetingLink,
		&s.Rating,
		&s.Feedback,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ScanMentorshipSessions scans multiple rows into a slice of MentorshipSession
func ScanMentorshipSessions(rows pgx.Rows) ([]*MentorshipSession, error) {
	defer rows.Close()

	sessions := []*MentorshipSession{}
	for rows.Next() {
		session, err := ScanMentorshipSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
