package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS members (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	spent_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_members_name ON members(name);

CREATE TABLE IF NOT EXISTS versions (
	id TEXT PRIMARY KEY,
	member_id TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
	created_at INTEGER NOT NULL,
	code TEXT NOT NULL,
	language TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_versions_member_created ON versions(member_id, created_at);

CREATE TABLE IF NOT EXISTS spent_entries (
	id TEXT PRIMARY KEY,
	member_id TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
	seconds INTEGER NOT NULL
);
`

// SQLiteStore implements Store using SQLite.
// Timestamps are stored as unix milliseconds.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: path,
	}, nil
}

// Init initializes the database schema.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// SaveMember inserts a member or updates its name and spent time.
func (s *SQLiteStore) SaveMember(ctx context.Context, m *member.Member) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO members (id, name, spent_seconds) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, spent_seconds = excluded.spent_seconds`,
		m.ID.String(), m.Name, m.SpentSeconds)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

// AddSpentTime records a spent time entry and adds its seconds to the
// member's total. Entries already recorded are ignored and reported as false.
func (s *SQLiteStore) AddSpentTime(ctx context.Context, entryID, memberID uuid.UUID, seconds int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE members SET spent_seconds = spent_seconds + ?
		 WHERE id = ? AND NOT EXISTS (SELECT 1 FROM spent_entries WHERE id = ?)`,
		seconds, memberID.String(), entryID.String())
	if err != nil {
		return false, fmt.Errorf("failed to update spent time: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update spent time: %w", err)
	}
	if n == 0 {
		if _, err := scanMember(tx.QueryRowContext(ctx,
			`SELECT id, name, spent_seconds FROM members WHERE id = ?`, memberID.String())); err != nil {
			return false, fmt.Errorf("member %s: %w", memberID, err)
		}
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO spent_entries (id, member_id, seconds) VALUES (?, ?, ?)`,
		entryID.String(), memberID.String(), seconds); err != nil {
		return false, fmt.Errorf("failed to record spent time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit spent time: %w", err)
	}
	return true, nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, spent_seconds FROM members WHERE id = ?`, id.String())
	return scanMember(row)
}

// GetMemberByName retrieves a member by name, ignoring case.
// When several members share a name the first by ID is returned.
func (s *SQLiteStore) GetMemberByName(ctx context.Context, name string) (*member.Member, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, spent_seconds FROM members WHERE name = ? COLLATE NOCASE ORDER BY id LIMIT 1`, name)
	return scanMember(row)
}

// ListMembers returns all members ordered by name.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]*member.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, spent_seconds FROM members ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// SaveVersion persists a version. It reports false when the ID already exists.
func (s *SQLiteStore) SaveVersion(ctx context.Context, v *version.Version) (bool, error) {
	lang := v.Language
	if lang == "" {
		lang = version.DefaultLanguage
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO versions (id, member_id, created_at, code, language) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		v.ID.String(), v.MemberID.String(), v.CreatedAt.UnixMilli(), v.Code, lang)
	if err != nil {
		return false, fmt.Errorf("failed to save version: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to save version: %w", err)
	}
	return n > 0, nil
}

// QueryVersions retrieves versions matching the filter, oldest first.
func (s *SQLiteStore) QueryVersions(ctx context.Context, filter *version.VersionFilter) ([]*version.Version, error) {
	where, args := buildVersionWhere(filter)

	query := `SELECT id, member_id, created_at, code, language FROM versions` + where +
		` ORDER BY created_at ASC, id ASC`
	if filter != nil && filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer rows.Close()

	var result []*version.Version
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}

	return result, nil
}

// CountVersions returns the count of versions matching the filter.
func (s *SQLiteStore) CountVersions(ctx context.Context, filter *version.VersionFilter) (int, error) {
	where, args := buildVersionWhere(filter)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM versions`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count versions: %w", err)
	}
	return count, nil
}

// LatestVersion returns the newest version of a member.
func (s *SQLiteStore) LatestVersion(ctx context.Context, memberID uuid.UUID) (*version.Version, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, member_id, created_at, code, language FROM versions
		WHERE member_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`, memberID.String())

	v, err := scanVersion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest version of %s: %w", memberID, ErrNotFound)
	}
	return v, err
}

// Info returns database statistics.
func (s *SQLiteStore) Info(ctx context.Context) (*DatabaseInfo, error) {
	info := &DatabaseInfo{Path: s.path}

	if fi, err := os.Stat(s.path); err == nil {
		info.SizeBytes = fi.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&info.MemberCount); err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	var oldest, newest sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(created_at), MAX(created_at) FROM versions`).
		Scan(&info.VersionCount, &oldest, &newest)
	if err != nil {
		return nil, fmt.Errorf("failed to read version stats: %w", err)
	}
	if oldest.Valid {
		info.OldestVersion = time.UnixMilli(oldest.Int64).UTC()
		info.NewestVersion = time.UnixMilli(newest.Int64).UTC()
	}

	return info, nil
}

func buildVersionWhere(filter *version.VersionFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	var clauses []string
	var args []any

	if filter.MemberID != uuid.Nil {
		clauses = append(clauses, "member_id = ?")
		args = append(args, filter.MemberID.String())
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UnixMilli())
	}
	if filter.Until != nil {
		clauses = append(clauses, "created_at < ?")
		args = append(args, filter.Until.UnixMilli())
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(row scanner) (*member.Member, error) {
	var (
		id string
		m  member.Member
	)
	if err := row.Scan(&id, &m.Name, &m.SpentSeconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan member: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid member id %q: %w", id, err)
	}
	m.ID = parsed

	return &m, nil
}

func scanVersion(row scanner) (*version.Version, error) {
	var (
		id, memberID string
		createdAt    int64
		v            version.Version
	)
	if err := row.Scan(&id, &memberID, &createdAt, &v.Code, &v.Language); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan version: %w", err)
	}

	var err error
	if v.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid version id %q: %w", id, err)
	}
	if v.MemberID, err = uuid.Parse(memberID); err != nil {
		return nil, fmt.Errorf("invalid member id %q: %w", memberID, err)
	}
	v.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &v, nil
}

var _ Store = (*SQLiteStore)(nil)
