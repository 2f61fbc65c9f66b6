package models

// MatchResult is a mentor profile annotated with how well it matches a
// mentee's interests. Derived, never persisted.
type MatchResult struct {
	Mentor     *MentorProfile `json:"mentor"`
	MatchScore int            `json:"matchScore"` // 0-100
	SharedTags []string       `json:"sharedTags"` // intersection, lowercased
}

// MatchesResponse is the response for a match query
type MatchesResponse struct {
	Matches []MatchResult `json:"matches"`
	Total   int           `json:"total"`
}

// MentorStats aggregates a mentor's completed-session history
type MentorStats struct {
	TotalSessions int     `json:"totalSessions"`
	TotalHours    float64 `json:"totalHours"`    // one decimal
	AverageRating float64 `json:"averageRating"` // one decimal, 0 when unrated
	TotalMentees  int     `json:"totalMentees"`  // distinct mentees
}

// UserSession is the authenticated actor attached to the request context by
// the session middleware
type UserSession struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}
