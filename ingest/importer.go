package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/storage"
)

// Result summarizes an import run.
type Result struct {
	Path string `json:"path,omitempty"`
	// Members is the number of distinct members seen.
	Members int `json:"members"`
	// Versions is the number of newly stored code versions.
	Versions int `json:"versions"`
	// SpentEntries is the number of newly recorded time entries.
	SpentEntries int `json:"spent_entries"`
	// Duplicates counts records already present in the store.
	Duplicates int `json:"duplicates"`
	// Skipped counts records of unsupported types.
	Skipped int `json:"skipped"`
	// Invalid counts undecodable lines and records missing fields.
	Invalid int `json:"invalid"`
}

// Importer writes export records to a store.
type Importer struct {
	store storage.Store
}

// NewImporter creates an importer backed by store.
func NewImporter(store storage.Store) *Importer {
	return &Importer{store: store}
}

// ImportFile imports the export at path.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	result, err := i.Import(ctx, f)
	if err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}

// Import reads an export from r. Importing the same export twice stores
// nothing new.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	parsed, err := Parse(r)
	if err != nil {
		return nil, err
	}

	result := &Result{Invalid: parsed.Invalid}
	seen := make(map[uuid.UUID]struct{})

	for idx := range parsed.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec := &parsed.Records[idx]
		if err := rec.Validate(); err != nil {
			if errors.Is(err, ErrUnsupportedRecord) {
				result.Skipped++
			} else {
				log.Debugf("Skip record %q: %v", rec.ID, err)
				result.Invalid++
			}
			continue
		}

		memberID := rec.MemberUUID()
		if _, ok := seen[memberID]; !ok {
			if err := i.ensureMember(ctx, memberID, rec.MemberName()); err != nil {
				return nil, err
			}
			seen[memberID] = struct{}{}
		}

		if rec.IsCode() {
			inserted, err := i.store.SaveVersion(ctx, toVersion(rec, memberID))
			if err != nil {
				return nil, err
			}
			if inserted {
				result.Versions++
			} else {
				result.Duplicates++
			}
			continue
		}

		added, err := i.store.AddSpentTime(ctx, rec.RecordUUID(), memberID, rec.Data.Seconds)
		if err != nil {
			return nil, err
		}
		if added {
			result.SpentEntries++
		} else {
			result.Duplicates++
		}
	}

	result.Members = len(seen)
	log.Debugf("Imported %d versions for %d members (%d duplicates, %d skipped, %d invalid)",
		result.Versions, result.Members, result.Duplicates, result.Skipped, result.Invalid)

	return result, nil
}

// ensureMember creates the member if needed and keeps its name current
// without touching accumulated spent time.
func (i *Importer) ensureMember(ctx context.Context, id uuid.UUID, name string) error {
	existing, err := i.store.GetMember(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return i.store.SaveMember(ctx, &member.Member{ID: id, Name: name})
	case err != nil:
		return err
	}

	if name == "" || existing.Name == name {
		return nil
	}
	existing.Name = name
	return i.store.SaveMember(ctx, existing)
}

func toVersion(rec *Record, memberID uuid.UUID) *version.Version {
	createdAt, _ := rec.Time()

	lang := rec.Data.Language
	if lang == "" {
		lang = version.DefaultLanguage
	}

	return &version.Version{
		ID:        rec.RecordUUID(),
		MemberID:  memberID,
		CreatedAt: version.Normalize(createdAt),
		Code:      *rec.Data.Code,
		Language:  lang,
	}
}
