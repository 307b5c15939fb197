// Package playback drives which code version is displayed and when it
// advances.
//
// Controller is the synchronous state machine. It is not safe for concurrent
// use; AutoPlayer wraps it with a lock and a single cancellable timer.
package playback

import (
	"github.com/safedep/rewind/core/version"
)

// Controller tracks the displayed position within a version sequence.
type Controller struct {
	seq      *version.Sequence
	position int
	paused   bool
}

// NewController returns a controller with no sequence loaded.
func NewController() *Controller {
	return &Controller{}
}

// Initialize loads seq, rewinds to the first version and resumes playback.
// Callers invoke it only when the sequence pointer changes.
func (c *Controller) Initialize(seq *version.Sequence) {
	c.seq = seq
	c.position = 0
	c.paused = false
}

// Sequence returns the loaded sequence, which may be nil.
func (c *Controller) Sequence() *version.Sequence {
	return c.seq
}

// Len returns the number of loaded versions.
func (c *Controller) Len() int {
	return c.seq.Len()
}

// Position returns the index of the displayed version.
func (c *Controller) Position() int {
	return c.position
}

// Paused reports whether automatic advancement is suspended.
func (c *Controller) Paused() bool {
	return c.paused
}

// ShouldAdvance reports whether a tick would move the position.
func (c *Controller) ShouldAdvance() bool {
	return !c.paused && c.position < c.Len()-1
}

// Tick advances one version unless paused or already at the last version.
func (c *Controller) Tick() bool {
	if !c.ShouldAdvance() {
		return false
	}
	c.position++
	return true
}

// CanStepForward reports whether StepForward would move the position.
func (c *Controller) CanStepForward() bool {
	return c.position < c.Len()-1
}

// CanStepBackward reports whether StepBackward would move the position.
func (c *Controller) CanStepBackward() bool {
	return c.position > 0
}

// StepForward moves to the next version regardless of the pause flag.
func (c *Controller) StepForward() bool {
	if !c.CanStepForward() {
		return false
	}
	c.position++
	return true
}

// StepBackward moves to the previous version regardless of the pause flag.
func (c *Controller) StepBackward() bool {
	if !c.CanStepBackward() {
		return false
	}
	c.position--
	return true
}

// TogglePause flips the pause flag.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// Pause suspends automatic advancement.
func (c *Controller) Pause() {
	c.paused = true
}

// Seek jumps to the version whose timestamp equals millis exactly.
// When no mark matches, the position is left unchanged and Seek returns false.
func (c *Controller) Seek(millis int64) bool {
	i := c.seq.IndexOf(millis)
	if i < 0 {
		return false
	}
	c.position = i
	return true
}

// Current returns the displayed version, or false when nothing is loaded.
func (c *Controller) Current() (*version.Version, bool) {
	v := c.seq.At(c.position)
	return v, v != nil
}

// Previous returns the version before the displayed one, if any.
func (c *Controller) Previous() *version.Version {
	return c.seq.At(c.position - 1)
}
