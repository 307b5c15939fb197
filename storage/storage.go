// Package storage provides database storage interfaces and implementations.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// MemberStore defines the interface for storing and querying members.
type MemberStore interface {
	// SaveMember inserts a member or updates its name and spent time.
	SaveMember(ctx context.Context, m *member.Member) error

	// AddSpentTime adds an entry's seconds to a member's spent time once.
	// It reports false when the entry was already recorded.
	AddSpentTime(ctx context.Context, entryID, memberID uuid.UUID, seconds int64) (bool, error)

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, id uuid.UUID) (*member.Member, error)

	// GetMemberByName retrieves a member by name, ignoring case.
	GetMemberByName(ctx context.Context, name string) (*member.Member, error)

	// ListMembers returns all members ordered by name.
	ListMembers(ctx context.Context) ([]*member.Member, error)
}

// VersionStore defines the interface for storing and querying code versions.
type VersionStore interface {
	// SaveVersion persists a version. It reports false when a version with
	// the same ID already exists.
	SaveVersion(ctx context.Context, v *version.Version) (bool, error)

	// QueryVersions retrieves versions matching the filter, oldest first.
	QueryVersions(ctx context.Context, filter *version.VersionFilter) ([]*version.Version, error)

	// CountVersions returns the count of versions matching the filter.
	CountVersions(ctx context.Context, filter *version.VersionFilter) (int, error)

	// LatestVersion returns the newest version of a member.
	LatestVersion(ctx context.Context, memberID uuid.UUID) (*version.Version, error)
}

// Store combines all storage interfaces.
type Store interface {
	MemberStore
	VersionStore

	// Init initializes the database schema.
	Init(ctx context.Context) error

	// Info returns database statistics.
	Info(ctx context.Context) (*DatabaseInfo, error)

	// Close closes the database connection.
	Close() error
}

// DatabaseInfo contains information about the database.
type DatabaseInfo struct {
	Path          string
	SizeBytes     int64
	MemberCount   int
	VersionCount  int
	OldestVersion time.Time
	NewestVersion time.Time
}
