// Package transition implements a gesture-interruptible state transition
// engine: a pausable, reversible, scrubbable animation timeline (Animator)
// and a controller that reconciles gesture lifecycle events with it.
package transition

import (
	"errors"
	"fmt"
	"time"
)

// ResumeDelay is how long a timeline waits before moving again after it
// resumes from a pause. Flipping the direction flag and restarting within
// the same event-handling tick is sequenced through this deferral.
const ResumeDelay = 50 * time.Millisecond

// Position identifies which end of the timeline a run finished at.
type Position int

const (
	// PositionStart means the timeline was driven back to fraction 0
	// (the transition reverted).
	PositionStart Position = iota
	// PositionEnd means the timeline reached fraction 1 (the transition
	// completed).
	PositionEnd
)

func (p Position) String() string {
	if p == PositionEnd {
		return "end"
	}
	return "start"
}

// Animator misuse errors. These indicate a caller invariant violation,
// not a recoverable runtime condition.
var (
	ErrActive        = errors.New("animator: timeline already active")
	ErrNotConfigured = errors.New("animator: not configured")
	ErrNotPaused     = errors.New("animator: timeline not paused")
)

type timelineState int

const (
	timelineIdle timelineState = iota
	timelineRunning
	timelinePaused
)

// Animator owns a single pausable/reversible animation timeline. It has
// no clock of its own: the owner advances it with real or synthetic tick
// deltas, which keeps it deterministic under test and confines all state
// to one event-loop thread.
type Animator struct {
	duration    time.Duration
	curve       Curve
	reversed    bool
	fraction    float64
	state       timelineState
	configured  bool
	delay       time.Duration
	completions []func(Position)
}

// NewAnimator returns an idle, unconfigured animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Configure sets the parameters for the next run and resets the timeline
// to fraction 0, forward. It may only be called while idle. A nil curve
// defaults to Linear.
func (a *Animator) Configure(duration time.Duration, curve Curve) error {
	if a.state != timelineIdle {
		return ErrActive
	}
	if duration <= 0 {
		return fmt.Errorf("animator: non-positive duration %v", duration)
	}
	if curve == nil {
		curve = Linear
	}
	a.duration = duration
	a.curve = curve
	a.reversed = false
	a.fraction = 0
	a.delay = 0
	a.completions = nil
	a.configured = true
	return nil
}

// Run starts or resumes the timeline in the given direction from its
// current fraction. Resuming from a pause defers motion by ResumeDelay.
func (a *Animator) Run(reversed bool) error {
	if !a.configured {
		return ErrNotConfigured
	}
	if a.state == timelineRunning {
		return ErrActive
	}
	if a.state == timelinePaused {
		a.delay = ResumeDelay
	}
	a.reversed = reversed
	a.state = timelineRunning
	return nil
}

// Pause freezes the timeline at its current fraction, making it
// scrubbable. Pausing a configured-but-idle timeline enters scrub mode
// at fraction 0.
func (a *Animator) Pause() error {
	if !a.configured {
		return ErrNotConfigured
	}
	a.state = timelinePaused
	a.delay = 0
	return nil
}

// SetFractionComplete positions the timeline directly. Valid only while
// paused; the value is clamped to [0,1].
func (a *Animator) SetFractionComplete(f float64) error {
	if a.state != timelinePaused {
		return ErrNotPaused
	}
	a.fraction = clamp01(f)
	return nil
}

// OnCompletion registers a one-shot callback fired when the timeline is
// driven to either end. Callbacks are cleared once fired and do not
// survive reconfiguration.
func (a *Animator) OnCompletion(fn func(Position)) {
	if fn != nil {
		a.completions = append(a.completions, fn)
	}
}

// Advance moves a running timeline by dt, consuming any pending resume
// delay first. Reaching an end fires the completion callbacks and
// returns the animator to idle. Paused and idle timelines do not move.
func (a *Animator) Advance(dt time.Duration) {
	if a.state != timelineRunning || dt <= 0 {
		return
	}
	if a.delay > 0 {
		if dt <= a.delay {
			a.delay -= dt
			return
		}
		dt -= a.delay
		a.delay = 0
	}
	step := float64(dt) / float64(a.duration)
	if a.reversed {
		a.fraction -= step
		if a.fraction <= 0 {
			a.fraction = 0
			a.finish(PositionStart)
		}
		return
	}
	a.fraction += step
	if a.fraction >= 1 {
		a.fraction = 1
		a.finish(PositionEnd)
	}
}

func (a *Animator) finish(at Position) {
	a.state = timelineIdle
	a.configured = false
	cbs := a.completions
	a.completions = nil
	for _, cb := range cbs {
		cb(at)
	}
}

// Fraction returns the raw timeline position in [0,1].
func (a *Animator) Fraction() float64 { return a.fraction }

// Eased returns the curve-mapped timeline position.
func (a *Animator) Eased() float64 {
	if a.curve == nil {
		return a.fraction
	}
	return clamp01(a.curve(a.fraction))
}

// Active reports whether a timeline is running or paused.
func (a *Animator) Active() bool { return a.state != timelineIdle }

// Paused reports whether the timeline is frozen and scrubbable.
func (a *Animator) Paused() bool { return a.state == timelinePaused }

// Reversed reports the current direction flag.
func (a *Animator) Reversed() bool { return a.reversed }
