package version

import (
	"sort"
	"time"
)

// Mark is one labelled point on the playback timeline.
type Mark struct {
	// Value is the version timestamp in unix milliseconds.
	Value int64 `json:"value"`
	// Label is the display form of the timestamp.
	Label string `json:"label"`
}

// Sequence is an ordered, read-only list of versions.
//
// Owners detect a new sequence by pointer identity, so a Sequence must not be
// mutated after construction. Build a new one instead.
type Sequence struct {
	versions []*Version
}

// NewSequence returns a sequence of the given versions ordered by creation
// time. Versions sharing a timestamp keep their input order.
func NewSequence(versions []*Version) *Sequence {
	sorted := make([]*Version, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return &Sequence{versions: sorted}
}

// Len returns the number of versions. A nil sequence is empty.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.versions)
}

// At returns the version at index i, or nil when i is out of range.
func (s *Sequence) At(i int) *Version {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return s.versions[i]
}

// Last returns the newest version, or nil for an empty sequence.
func (s *Sequence) Last() *Version {
	return s.At(s.Len() - 1)
}

// Versions returns a copy of the ordered versions.
func (s *Sequence) Versions() []*Version {
	out := make([]*Version, s.Len())
	if s != nil {
		copy(out, s.versions)
	}
	return out
}

// IndexOf returns the first index whose timestamp equals millis exactly,
// or -1 when no version matches.
func (s *Sequence) IndexOf(millis int64) int {
	for i := 0; i < s.Len(); i++ {
		if s.versions[i].Millis() == millis {
			return i
		}
	}
	return -1
}

// Marks returns one timeline mark per version using label to format each
// timestamp.
func (s *Sequence) Marks(label func(time.Time) string) []Mark {
	marks := make([]Mark, s.Len())
	for i := range marks {
		v := s.versions[i]
		marks[i] = Mark{Value: v.Millis(), Label: label(v.CreatedAt)}
	}
	return marks
}

// Span returns the time between the first and last version.
func (s *Sequence) Span() time.Duration {
	if s.Len() < 2 {
		return 0
	}
	return s.Last().CreatedAt.Sub(s.versions[0].CreatedAt)
}
