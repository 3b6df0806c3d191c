package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"SlideBox/pkg/layout"
	"SlideBox/pkg/transition"
)

// dragDeadZone is how many cells the pointer must move before a press
// becomes a drag gesture.
const dragDeadZone = 1

type dragPhase int

const (
	dragIdle dragPhase = iota
	dragPending
	dragTracking
)

// dragEvent is a recognizer lifecycle event.
type dragEvent int

const (
	dragNone dragEvent = iota
	dragBegan
	dragChanged
	dragEnded
	dragCancelled
)

// recognizer turns raw mouse messages into a began/changed/ended/
// cancelled stream with cumulative translation. After the controller
// rejects a begin, the recognizer disables itself until the button
// release (surfaced as a cancelled event) re-enables it, so a refused
// drag doesn't spam begin attempts.
type recognizer struct {
	phase    dragPhase
	disabled bool

	originX, originY int
	lastX, lastY     int
}

// gesture builds the payload for the pointer position (x, y).
func (r *recognizer) gesture(x, y int) transition.Gesture {
	g := transition.Gesture{
		Translation: layout.Point{X: float64(x - r.originX), Y: float64(y - r.originY)},
		Location:    layout.Point{X: float64(x), Y: float64(y)},
		Velocity:    layout.Point{X: float64(x - r.lastX), Y: float64(y - r.lastY)},
	}
	r.lastX, r.lastY = x, y
	return g
}

// handle consumes a mouse message and reports the gesture event it
// maps to, if any. The caller feeds dragBegan to the controller and
// must call reject when the controller refuses it.
func (r *recognizer) handle(msg tea.MouseMsg) (dragEvent, transition.Gesture) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || r.disabled || r.phase != dragIdle {
			return dragNone, transition.Gesture{}
		}
		r.phase = dragPending
		r.originX, r.originY = msg.X, msg.Y
		r.lastX, r.lastY = msg.X, msg.Y
		return dragNone, transition.Gesture{}

	case tea.MouseActionMotion:
		switch r.phase {
		case dragPending:
			dx, dy := msg.X-r.originX, msg.Y-r.originY
			if dx < dragDeadZone && -dx < dragDeadZone && dy < dragDeadZone && -dy < dragDeadZone {
				return dragNone, transition.Gesture{}
			}
			return dragBegan, r.gesture(msg.X, msg.Y)
		case dragTracking:
			return dragChanged, r.gesture(msg.X, msg.Y)
		}
		return dragNone, transition.Gesture{}

	case tea.MouseActionRelease:
		switch {
		case r.disabled:
			// Release doubles as the cancel event that re-enables a
			// recognizer disabled by a rejected begin.
			r.disabled = false
			r.phase = dragIdle
			return dragCancelled, r.gesture(msg.X, msg.Y)
		case r.phase == dragTracking:
			g := r.gesture(msg.X, msg.Y)
			r.phase = dragIdle
			return dragEnded, g
		default:
			r.phase = dragIdle
			return dragNone, transition.Gesture{}
		}
	}
	return dragNone, transition.Gesture{}
}

// accept marks a begun gesture as tracking.
func (r *recognizer) accept() {
	r.phase = dragTracking
}

// reject disables the recognizer until the next release.
func (r *recognizer) reject() {
	r.phase = dragIdle
	r.disabled = true
}

// cancel aborts an in-flight drag, reporting whether one was tracking.
func (r *recognizer) cancel() (transition.Gesture, bool) {
	tracking := r.phase == dragTracking
	g := r.gesture(r.lastX, r.lastY)
	r.phase = dragIdle
	r.disabled = false
	return g, tracking
}
