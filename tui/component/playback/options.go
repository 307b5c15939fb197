package playback

import (
	"time"

	"github.com/safedep/rewind/core/bucket"
	coreplayback "github.com/safedep/rewind/core/playback"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/storage"
	"github.com/safedep/rewind/tui"
)

type Options struct {
	Store  storage.Store
	Runner corerunner.Runner
	// Player drives automatic advance. One is created from StepDuration
	// when nil.
	Player       *coreplayback.AutoPlayer
	StepDuration time.Duration
	// Paused starts every loaded sequence paused.
	Paused   bool
	Interval time.Duration
	Location *time.Location
	Theme    string
	Colors   bool
	// Member selects the member to load first, by name or ID.
	Member string
	// SeekTo positions the first loaded sequence at this version time.
	SeekTo time.Time
}

func (o Options) interval() time.Duration {
	if o.Interval >= time.Millisecond {
		return o.Interval
	}
	return bucket.DefaultInterval
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

func (o Options) theme() string {
	if o.Theme != "" {
		return o.Theme
	}
	return tui.DefaultTheme
}

func (o Options) player() *coreplayback.AutoPlayer {
	if o.Player != nil {
		return o.Player
	}
	return coreplayback.NewAutoPlayer(coreplayback.WithStepDuration(o.StepDuration))
}
