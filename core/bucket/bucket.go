// Package bucket groups version timestamps into fixed-width time windows for
// summary display.
package bucket

import (
	"sort"
	"time"

	"github.com/safedep/rewind/core/version"
)

// DefaultInterval is the bucket width used for member activity.
const DefaultInterval = 30 * time.Minute

// MaxSeriesLen bounds the length of a Series regardless of the time span.
const MaxSeriesLen = 240

// Map counts versions per bucket. Keys are unix milliseconds at the start of
// each bucket. Only buckets holding at least one version are present.
type Map map[int64]int

// RoundToIntervalStart returns the unix millisecond start of the bucket
// holding t. The interval must be a whole number of milliseconds.
func RoundToIntervalStart(t time.Time, interval time.Duration) int64 {
	return roundDown(t.UnixMilli(), intervalMillis(interval))
}

// Bucketize counts versions per interval. It panics unless interval is a
// whole number of milliseconds; callers validate the interval before use.
func Bucketize(versions []*version.Version, interval time.Duration) Map {
	step := intervalMillis(interval)
	buckets := make(Map)
	for _, v := range versions {
		buckets[roundDown(v.Millis(), step)]++
	}
	return buckets
}

// Keys returns the bucket keys in ascending order.
func (m Map) Keys() []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Total returns the number of versions across all buckets.
func (m Map) Total() int {
	total := 0
	for _, c := range m {
		total += c
	}
	return total
}

// Series returns counts for every bucket from the first key to the last,
// with zeros for empty buckets in between. Spans wider than MaxSeriesLen
// buckets are folded into MaxSeriesLen columns, each summing the buckets it
// covers.
func (m Map) Series(interval time.Duration) []int {
	keys := m.Keys()
	if len(keys) == 0 {
		return nil
	}
	step := intervalMillis(interval)
	first, last := keys[0], keys[len(keys)-1]

	span := (last-first)/step + 1
	size := span
	if size > MaxSeriesLen {
		size = MaxSeriesLen
	}

	series := make([]int, size)
	for k, c := range m {
		series[(k-first)/step*size/span] += c
	}
	return series
}

// ValidInterval reports whether interval is a positive whole number of
// milliseconds, the only widths bucket keys can represent.
func ValidInterval(interval time.Duration) bool {
	return interval >= time.Millisecond && interval%time.Millisecond == 0
}

func intervalMillis(interval time.Duration) int64 {
	if !ValidInterval(interval) {
		panic("bucket: interval must be a whole number of milliseconds")
	}
	return interval.Milliseconds()
}

// roundDown floors ms to a multiple of step, also for pre-epoch timestamps.
func roundDown(ms, step int64) int64 {
	r := ms % step
	if r < 0 {
		r += step
	}
	return ms - r
}
