// Package member provides the learner model and its list summary.
package member

import (
	"time"

	"github.com/google/uuid"
	"github.com/safedep/rewind/core/bucket"
	"github.com/safedep/rewind/core/version"
)

// Member is a learner whose code versions are replayed.
type Member struct {
	// ID is the unique identifier for this member.
	ID uuid.UUID `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// SpentSeconds is the total time the member spent in the exercise.
	SpentSeconds int64 `json:"spent_seconds"`
}

// NewMember creates a Member with a generated ID.
func NewMember(name string) *Member {
	return &Member{
		ID:   uuid.New(),
		Name: name,
	}
}

// SpentTime returns SpentSeconds as a duration.
func (m *Member) SpentTime() time.Duration {
	return time.Duration(m.SpentSeconds) * time.Second
}

// Summary is the member list entry: identity, counts, and the bucketed
// version activity shown as a sparkline.
type Summary struct {
	Member        *Member
	VersionCount  int
	LastVersionAt time.Time
	Buckets       bucket.Map
	Interval      time.Duration
}

// Summarize builds the list summary for a member from its versions in
// ascending creation order.
func Summarize(m *Member, versions []*version.Version, interval time.Duration) *Summary {
	s := &Summary{
		Member:       m,
		VersionCount: len(versions),
		Buckets:      bucket.Bucketize(versions, interval),
		Interval:     interval,
	}
	if n := len(versions); n > 0 {
		s.LastVersionAt = versions[n-1].CreatedAt
	}
	return s
}

// HasVersions reports whether the member submitted any code.
func (s *Summary) HasVersions() bool {
	return s.VersionCount > 0
}
