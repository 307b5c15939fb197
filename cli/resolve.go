package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/storage"
)

// resolveMember finds a member by ID or, failing that, by name.
func resolveMember(ctx context.Context, store storage.Store, ref string) (*member.Member, error) {
	if id, err := uuid.Parse(ref); err == nil {
		m, err := store.GetMember(ctx, id)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDatabase("failed to get member", err)
		}
	}

	m, err := store.GetMemberByName(ctx, ref)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrMemberNotFound(ref)
	}
	if err != nil {
		return nil, ErrDatabase("failed to get member", err)
	}
	return m, nil
}

// loadSequence returns every version of m in playback order.
func loadSequence(ctx context.Context, store storage.Store, m *member.Member) (*version.Sequence, error) {
	versions, err := store.QueryVersions(ctx, version.NewVersionFilter().WithMember(m.ID))
	if err != nil {
		return nil, ErrDatabase("failed to query versions", err)
	}
	return version.NewSequence(versions), nil
}

// parseAt parses a --at flag. An empty value yields the zero time.
func parseAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: expected an RFC 3339 timestamp", s)
	}
	return t, nil
}

// pickVersion returns the version created exactly at at, or the latest one
// when at is zero.
func pickVersion(m *member.Member, seq *version.Sequence, at time.Time) (int, *version.Version, error) {
	if seq.Len() == 0 {
		return -1, nil, NewCLIError(ExitMemberNotFound, fmt.Sprintf("%s has no versions", m.Name))
	}
	if at.IsZero() {
		return seq.Len() - 1, seq.Last(), nil
	}

	idx := seq.IndexOf(at.UnixMilli())
	if idx < 0 {
		return -1, nil, ErrVersionNotFound(m.Name, at.Format(time.RFC3339Nano))
	}
	return idx, seq.At(idx), nil
}
