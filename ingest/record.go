// Package ingest imports learner action exports into the store.
package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record types understood by the importer.
const (
	TypeCodeVersion = "code_version"
	TypeRunCode     = "run_code"
	TypeTimeSpent   = "time_spent"
)

var (
	// ErrUnsupportedRecord is returned for record types the importer skips.
	ErrUnsupportedRecord = errors.New("unsupported record type")

	// ErrInvalidRecord is returned for records missing required fields.
	ErrInvalidRecord = errors.New("invalid record")
)

// namespace derives stable IDs for exports that omit or use non-UUID ids.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/safedep/rewind"))

// Record is one exported learner action.
type Record struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Member    RecordMember `json:"member"`
	CreatedAt string       `json:"createdAt"`
	Data      RecordData   `json:"data"`
}

// RecordMember identifies the learner who performed the action.
type RecordMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordData holds the type specific payload.
type RecordData struct {
	Code     *string `json:"code,omitempty"`
	Language string  `json:"language,omitempty"`
	Seconds  int64   `json:"seconds,omitempty"`
}

// IsCode reports whether the record carries a code version.
func (r *Record) IsCode() bool {
	return r.Type == TypeCodeVersion || r.Type == TypeRunCode
}

// Validate checks that the record has the fields its type needs.
func (r *Record) Validate() error {
	switch {
	case r.IsCode():
		if r.Data.Code == nil {
			return fmt.Errorf("%w: %s without data.code", ErrInvalidRecord, r.Type)
		}
	case r.Type == TypeTimeSpent:
		if r.Data.Seconds < 0 {
			return fmt.Errorf("%w: negative data.seconds", ErrInvalidRecord)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedRecord, r.Type)
	}

	if r.Member.ID == "" && r.Member.Name == "" {
		return fmt.Errorf("%w: missing member", ErrInvalidRecord)
	}
	if _, err := r.Time(); err != nil {
		return err
	}
	return nil
}

// Time parses CreatedAt as an RFC 3339 timestamp.
func (r *Record) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(r.CreatedAt))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: createdAt %q", ErrInvalidRecord, r.CreatedAt)
	}
	return t, nil
}

// MemberUUID returns the member ID, derived from the name when the export
// does not carry a UUID.
func (r *Record) MemberUUID() uuid.UUID {
	return stableID("member", r.Member.ID, r.Member.Name)
}

// MemberName returns the display name, falling back to the member id.
func (r *Record) MemberName() string {
	if r.Member.Name != "" {
		return r.Member.Name
	}
	return r.Member.ID
}

// RecordUUID returns the record ID, derived from its content when the export
// does not carry a UUID.
func (r *Record) RecordUUID() uuid.UUID {
	fallback := r.Type + "|" + r.MemberUUID().String() + "|" + r.CreatedAt
	if r.Data.Code != nil {
		fallback += "|" + *r.Data.Code
	}
	return stableID("record", r.ID, fallback)
}

func stableID(kind, id, fallback string) uuid.UUID {
	if id != "" {
		if parsed, err := uuid.Parse(id); err == nil {
			return parsed
		}
		return uuid.NewSHA1(namespace, []byte(kind+":id:"+id))
	}
	return uuid.NewSHA1(namespace, []byte(kind+":"+fallback))
}
