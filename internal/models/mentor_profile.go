package models

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// AvailabilityRule is a mentor-declared recurring weekly window during which
// bookings are permitted. Times are wall-clock "HH:mm" strings compared in
// whatever unit they were authored in; rules never cross midnight.
type AvailabilityRule struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string `json:"startTime"` // "HH:mm"
	EndTime   string `json:"endTime"`   // "HH:mm"
}

// MentorProfile represents a mentor's public profile and booking constraints
type MentorProfile struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	Title           string             `json:"title"`
	Company         string             `json:"company"`
	Bio             string             `json:"bio"`
	ExpertiseTags   []string           `json:"expertiseTags"`
	YearsExperience int                `json:"yearsExperience"`
	Availability    []AvailabilityRule `json:"availability"`
	IsAvailable     bool               `json:"isAvailable"`
	MaxMentees      int                `json:"maxMentees"` // advisory capacity, not enforced
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// NormalizedTags returns the mentor's expertise tags lowercased and trimmed,
// for case-insensitive matching.
func (p *MentorProfile) NormalizedTags() []string {
	tags := make([]string, 0, len(p.ExpertiseTags))
	for _, tag := range p.ExpertiseTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseTags splits a comma-separated tag column into a clean slice
func ParseTags(s string) []string {
	tags := []string{}
	if s == "" {
		return tags
	}
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders a tag slice back to its comma-separated column form
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// ScanMentorProfile scans a single row into a MentorProfile.
// Expected columns: id, user_id, title, company, bio, expertise_tags,
// years_experience, is_available, max_mentees, created_at, updated_at.
// Availability rules live in their own table and are attached separately.
func ScanMentorProfile(row pgx.Row) (*MentorProfile, error) {
	var p MentorProfile
	var title, company, bio, tags *string

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&title,
		&company,
		&bio,
		&tags,
		&p.YearsExperience,
		&p.IsAvailable,
		&p.MaxMentees,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Title = derefString(title)
	p.Company = derefString(company)
	p.Bio = derefString(bio)
	p.ExpertiseTags = ParseTags(derefString(tags))
	p.Availability = []AvailabilityRule{}

	return &p, nil
}

// ScanMentorProfiles scans multiple rows into a slice of MentorProfile
func ScanMentorProfiles(rows pgx.Rows) ([]*MentorProfile, error) {
	defer rows.Close()

	profiles := []*MentorProfile{}
	for rows.Next() {
		profile, err := ScanMentorProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
