// Package version provides the code version model replayed by the player.
package version

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is assumed when an export does not name the language.
const DefaultLanguage = "python"

// Version is a timestamped snapshot of a member's submitted code.
type Version struct {
	// ID is the unique identifier for this version.
	ID uuid.UUID `json:"id"`
	// MemberID is the member who submitted the code.
	MemberID uuid.UUID `json:"member_id"`
	// CreatedAt is the submission time (UTC, millisecond precision).
	CreatedAt time.Time `json:"created_at"`
	// Code is the submitted source text.
	Code string `json:"code"`
	// Language is the source language used for highlighting.
	Language string `json:"language"`
}

// NewVersion creates a Version with a generated ID.
// The timestamp is normalised to UTC and truncated to milliseconds.
func NewVersion(memberID uuid.UUID, createdAt time.Time, code string) *Version {
	return &Version{
		ID:        uuid.New(),
		MemberID:  memberID,
		CreatedAt: Normalize(createdAt),
		Code:      code,
		Language:  DefaultLanguage,
	}
}

// Millis returns the creation timestamp as unix milliseconds.
func (v *Version) Millis() int64 {
	return v.CreatedAt.UnixMilli()
}

// Normalize converts t to UTC with millisecond precision.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// VersionFilter provides filtering criteria for querying versions.
type VersionFilter struct {
	// MemberID filters by member. uuid.Nil matches all members.
	MemberID uuid.UUID
	// Since filters versions created at or after this time.
	Since *time.Time
	// Until filters versions created before this time.
	Until *time.Time
	// Limit is the maximum number of results. Zero means no limit.
	Limit int
}

// NewVersionFilter creates a new VersionFilter without limits.
func NewVersionFilter() *VersionFilter {
	return &VersionFilter{}
}

// WithMember sets the MemberID filter.
func (f *VersionFilter) WithMember(id uuid.UUID) *VersionFilter {
	f.MemberID = id
	return f
}

// WithSince sets the Since filter.
func (f *VersionFilter) WithSince(t time.Time) *VersionFilter {
	f.Since = &t
	return f
}

// WithUntil sets the Until filter.
func (f *VersionFilter) WithUntil(t time.Time) *VersionFilter {
	f.Until = &t
	return f
}

// WithLimit sets the Limit.
func (f *VersionFilter) WithLimit(limit int) *VersionFilter {
	f.Limit = limit
	return f
}
