package playback

import (
	"sync"
	"time"

	"github.com/safedep/dry/log"
	"github.com/safedep/rewind/core/version"
)

// DefaultStepDuration is the time each version stays on screen during
// automatic playback.
const DefaultStepDuration = 2 * time.Second

// Snapshot is a consistent view of the player state.
type Snapshot struct {
	Sequence        *version.Sequence
	Position        int
	Len             int
	Paused          bool
	Current         *version.Version
	Previous        *version.Version
	CanStepForward  bool
	CanStepBackward bool
	// Advancing reports whether an automatic advance is scheduled.
	Advancing bool
}

// AutoPlayer advances a Controller on a fixed cadence.
//
// At most one advance is scheduled at any time. Every state change cancels
// the pending advance and re-arms it only while the controller can still
// advance. AutoPlayer is safe for concurrent use.
type AutoPlayer struct {
	mu    sync.Mutex
	ctrl  *Controller
	sched Scheduler
	step  time.Duration

	timer  Timer
	gen    uint64
	closed bool

	advanced chan struct{}
}

// Option configures an AutoPlayer.
type Option func(*AutoPlayer)

// WithScheduler replaces the runtime timer.
func WithScheduler(s Scheduler) Option {
	return func(p *AutoPlayer) {
		p.sched = s
	}
}

// WithStepDuration sets the advance cadence. Non-positive values keep the
// default.
func WithStepDuration(d time.Duration) Option {
	return func(p *AutoPlayer) {
		if d > 0 {
			p.step = d
		}
	}
}

// NewAutoPlayer returns a player with no sequence loaded.
func NewAutoPlayer(opts ...Option) *AutoPlayer {
	p := &AutoPlayer{
		ctrl:     NewController(),
		sched:    NewClockScheduler(),
		step:     DefaultStepDuration,
		advanced: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StepDuration returns the advance cadence.
func (p *AutoPlayer) StepDuration() time.Duration {
	return p.step
}

// Advanced delivers a signal after each automatic advance. Signals coalesce
// when the receiver falls behind. The channel is closed by Close.
func (p *AutoPlayer) Advanced() <-chan struct{} {
	return p.advanced
}

// Load replaces the sequence, rewinds to the first version and resumes.
// Loading the sequence that is already playing is a no-op.
func (p *AutoPlayer) Load(seq *version.Sequence) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || (seq == p.ctrl.Sequence() && seq != nil) {
		return
	}
	p.ctrl.Initialize(seq)
	log.Debugf("playback: loaded %d versions", seq.Len())
	p.rescheduleLocked()
}

// StepForward shows the next version.
func (p *AutoPlayer) StepForward() bool {
	return p.mutate(p.ctrl.StepForward)
}

// StepBackward shows the previous version.
func (p *AutoPlayer) StepBackward() bool {
	return p.mutate(p.ctrl.StepBackward)
}

// TogglePause flips the pause flag.
func (p *AutoPlayer) TogglePause() {
	p.mutate(func() bool {
		p.ctrl.TogglePause()
		return true
	})
}

// Pause suspends automatic advancement.
func (p *AutoPlayer) Pause() {
	p.mutate(func() bool {
		p.ctrl.Pause()
		return true
	})
}

// Seek jumps to the version created exactly at millis. It reports false and
// leaves the position unchanged when no version matches.
func (p *AutoPlayer) Seek(millis int64) bool {
	return p.mutate(func() bool {
		return p.ctrl.Seek(millis)
	})
}

// Snapshot returns the current state.
func (p *AutoPlayer) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	cur, _ := p.ctrl.Current()
	return Snapshot{
		Sequence:        p.ctrl.Sequence(),
		Position:        p.ctrl.Position(),
		Len:             p.ctrl.Len(),
		Paused:          p.ctrl.Paused(),
		Current:         cur,
		Previous:        p.ctrl.Previous(),
		CanStepForward:  p.ctrl.CanStepForward(),
		CanStepBackward: p.ctrl.CanStepBackward(),
		Advancing:       p.timer != nil,
	}
}

// Close cancels any pending advance. Later calls are no-ops.
func (p *AutoPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.cancelLocked()
	close(p.advanced)
}

func (p *AutoPlayer) mutate(fn func() bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	changed := fn()
	p.rescheduleLocked()
	return changed
}

func (p *AutoPlayer) cancelLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	// invalidates callbacks that already left the timer queue
	p.gen++
}

func (p *AutoPlayer) rescheduleLocked() {
	p.cancelLocked()
	if p.closed || !p.ctrl.ShouldAdvance() {
		return
	}
	gen := p.gen
	p.timer = p.sched.AfterFunc(p.step, func() {
		p.fire(gen)
	})
}

func (p *AutoPlayer) fire(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || gen != p.gen {
		return
	}
	p.timer = nil
	if !p.ctrl.Tick() {
		return
	}
	p.rescheduleLocked()

	select {
	case p.advanced <- struct{}{}:
	default:
	}
}
