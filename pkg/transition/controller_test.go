package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SlideBox/pkg/layout"
	"SlideBox/pkg/scene"
)

type phase int

const (
	phaseOne phase = iota
	phaseTwo
)

// stubDelegate models the demo: node a slides from x=0 to x=30, node b
// stays put but fades, and badge exists only in phaseTwo.
type stubDelegate struct {
	a, b, badge *scene.Node

	rejectBegin bool

	started  []bool // interactive flag per AnimationStarted call
	finished []struct{ interactive, completed bool }
}

func newStubDelegate() *stubDelegate {
	return &stubDelegate{
		a:     scene.NewNode("a"),
		b:     scene.NewNode("b"),
		badge: scene.NewNode("badge"),
	}
}

func (d *stubDelegate) LayoutSpec(cs layout.Constraints, state phase) layout.Element {
	box := layout.Size{W: 10, H: 4}
	if state == phaseOne {
		return layout.Overlay{Children: []layout.Element{
			layout.Offset{Dx: 0, Dy: 0, Child: layout.Box{Item: d.a, Size: box}},
			layout.Offset{Dx: 12, Dy: 0, Child: layout.Box{Item: d.b, Size: box}},
		}}
	}
	return layout.Overlay{Children: []layout.Element{
		layout.Offset{Dx: 30, Dy: 0, Child: layout.Box{Item: d.a, Size: box}},
		layout.Offset{Dx: 12, Dy: 0, Child: layout.Box{Item: d.b, Size: box}},
		layout.Offset{Dx: 30, Dy: 6, Child: layout.Box{Item: d.badge, Size: layout.Size{W: 6, H: 2}}},
	}}
}

func (d *stubDelegate) NodesForState(state *phase) []*scene.Node {
	if state == nil || *state == phaseTwo {
		return []*scene.Node{d.a, d.b, d.badge}
	}
	return []*scene.Node{d.a, d.b}
}

func (d *stubDelegate) ApplyProperties(state phase) {
	d.a.SetOpacity(1)
	if state == phaseTwo {
		d.b.SetOpacity(0.2)
		d.badge.SetOpacity(1)
	} else {
		d.b.SetOpacity(1)
		d.badge.SetOpacity(0)
	}
}

func (d *stubDelegate) GestureDestination(from phase, g Gesture) (phase, bool) {
	if d.rejectBegin {
		return from, false
	}
	if from == phaseOne {
		return phaseTwo, true
	}
	return phaseOne, true
}

// GestureFraction maps 100 units of translation to a full transition.
func (d *stubDelegate) GestureFraction(from, to phase, g Gesture) float64 {
	return g.Translation.X / 100
}

func (d *stubDelegate) AnimationStarted(interactive bool) {
	d.started = append(d.started, interactive)
}

func (d *stubDelegate) AnimationFinished(interactive, completed bool) {
	d.finished = append(d.finished, struct{ interactive, completed bool }{interactive, completed})
}

func newTestController(t *testing.T, d *stubDelegate) (*Controller[phase], *scene.Scene) {
	t.Helper()
	sc := scene.New()
	ctrl, err := New(phaseOne, sc, d, Options{
		Duration:              100 * time.Millisecond,
		Curve:                 Linear,
		MinFractionToComplete: 0.3,
	})
	require.NoError(t, err)
	ctrl.SetConstraints(layout.Loose(layout.Size{W: 100, H: 40}))
	return ctrl, sc
}

func drag(x float64) Gesture {
	return Gesture{Translation: layout.Point{X: x}}
}

// settleDuration comfortably covers the resume delay plus a full run.
const settleDuration = ResumeDelay + 200*time.Millisecond

func TestNewMountsInitialState(t *testing.T) {
	d := newStubDelegate()
	ctrl, sc := newTestController(t, d)

	assert.Equal(t, phaseOne, ctrl.State())
	_, inFlight := ctrl.Destination()
	assert.False(t, inFlight)
	assert.Equal(t, []*scene.Node{d.a, d.b}, sc.Nodes())
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 10, H: 4}, d.a.Frame())
	assert.Equal(t, layout.Rect{X: 12, Y: 0, W: 10, H: 4}, d.b.Frame())
}

func TestSetStateImmediateIsLayoutRefresh(t *testing.T) {
	d := newStubDelegate()
	ctrl, sc := newTestController(t, d)

	d.a.SetFrame(layout.Rect{X: 99, Y: 9, W: 1, H: 1}) // stale frame

	ctrl.SetState(phaseOne, false)

	assert.Equal(t, phaseOne, ctrl.State())
	assert.Equal(t, []*scene.Node{d.a, d.b}, sc.Nodes())
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 10, H: 4}, d.a.Frame())
	assert.Empty(t, d.started, "refresh must not start an animation")
}

func TestSetStateAnimatedCompletesAtDestination(t *testing.T) {
	d := newStubDelegate()
	ctrl, sc := newTestController(t, d)

	ctrl.SetState(phaseTwo, true)

	dest, inFlight := ctrl.Destination()
	require.True(t, inFlight)
	assert.Equal(t, phaseTwo, dest)
	assert.Equal(t, phaseOne, ctrl.State(), "state commits only on completion")
	assert.True(t, sc.Contains(d.badge), "destination nodes attach up front")
	assert.Equal(t, []bool{false}, d.started)

	ctrl.Advance(50 * time.Millisecond)
	assert.InDelta(t, 15, d.a.Frame().X, 0.01, "halfway through a linear 0→30 slide")
	assert.InDelta(t, 0.6, d.b.Opacity(), 0.01)

	ctrl.Advance(60 * time.Millisecond)
	assert.Equal(t, phaseTwo, ctrl.State())
	_, inFlight = ctrl.Destination()
	assert.False(t, inFlight)
	assert.Equal(t, []*scene.Node{d.a, d.b, d.badge}, sc.Nodes())
	assert.Equal(t, layout.Rect{X: 30, Y: 0, W: 10, H: 4}, d.a.Frame())
	assert.InDelta(t, 0.2, d.b.Opacity(), 0.001)
	require.Len(t, d.finished, 1)
	assert.False(t, d.finished[0].interactive)
	assert.True(t, d.finished[0].completed)
}

func TestGestureDrivenCompletion(t *testing.T) {
	d := newStubDelegate()
	ctrl, sc := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	dest, inFlight := ctrl.Destination()
	require.True(t, inFlight)
	assert.Equal(t, phaseTwo, dest)
	assert.True(t, ctrl.Interactive())
	assert.True(t, sc.Contains(d.badge), "node set covers source and destination")
	assert.Equal(t, []bool{true}, d.started)

	ctrl.GestureChanged(drag(50))
	assert.InDelta(t, 15, d.a.Frame().X, 0.01)

	ctrl.GestureEnded(drag(50)) // 0.5 > 0.3: resume forward
	ctrl.Advance(settleDuration)

	assert.Equal(t, phaseTwo, ctrl.State())
	_, inFlight = ctrl.Destination()
	assert.False(t, inFlight)
	assert.Equal(t, []*scene.Node{d.a, d.b, d.badge}, sc.Nodes())
	assert.Equal(t, layout.Rect{X: 30, Y: 0, W: 10, H: 4}, d.a.Frame())
	require.Len(t, d.finished, 1)
	assert.True(t, d.finished[0].interactive)
	assert.True(t, d.finished[0].completed)
}

func TestGestureRevertsBelowThreshold(t *testing.T) {
	d := newStubDelegate()
	ctrl, sc := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	ctrl.GestureChanged(drag(10))
	ctrl.GestureEnded(drag(10)) // 0.1 <= 0.3: revert
	ctrl.Advance(settleDuration)

	assert.Equal(t, phaseOne, ctrl.State())
	assert.Equal(t, []*scene.Node{d.a, d.b}, sc.Nodes(), "badge detaches on revert")
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 10, H: 4}, d.a.Frame())
	assert.InDelta(t, 1, d.b.Opacity(), 0.001)
	require.Len(t, d.finished, 1)
	assert.True(t, d.finished[0].interactive)
	assert.False(t, d.finished[0].completed)
}

func TestThresholdBoundary(t *testing.T) {
	// Fraction exactly equal to the threshold must revert. Drag x maps
	// to fraction x/100.
	tests := []struct {
		dragX     float64
		wantState phase
	}{
		{29, phaseOne},
		{30, phaseOne},
		{31, phaseTwo},
	}
	for _, tt := range tests {
		d := newStubDelegate()
		ctrl, _ := newTestController(t, d)

		require.True(t, ctrl.GestureBegan(drag(5)))
		ctrl.GestureChanged(drag(tt.dragX))
		ctrl.GestureEnded(drag(tt.dragX))
		ctrl.Advance(settleDuration)

		assert.Equal(t, tt.wantState, ctrl.State(), "release at fraction %v", tt.dragX/100)
	}
}

func TestGestureCancelledAlwaysReverts(t *testing.T) {
	d := newStubDelegate()
	ctrl, sc := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	ctrl.GestureChanged(drag(80)) // well past the threshold
	ctrl.GestureCancelled(drag(80))
	ctrl.Advance(settleDuration)

	assert.Equal(t, phaseOne, ctrl.State())
	assert.False(t, sc.Contains(d.badge))
	require.Len(t, d.finished, 1)
	assert.False(t, d.finished[0].completed)
}

func TestDuplicateEndedIsIgnored(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	ctrl.GestureChanged(drag(50))
	ctrl.GestureEnded(drag(50))
	ctrl.GestureEnded(drag(50)) // recognizer leak: timeline no longer paused
	ctrl.Advance(settleDuration)

	assert.Equal(t, phaseTwo, ctrl.State())
	assert.Len(t, d.finished, 1, "completion must fire exactly once")
}

func TestSecondBeganRejectedWhileAnimating(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	assert.False(t, ctrl.GestureBegan(drag(5)), "timeline is already owned")
	assert.Len(t, d.started, 1)

	// Also rejected while a timed transition holds the timeline.
	d2 := newStubDelegate()
	ctrl2, _ := newTestController(t, d2)
	ctrl2.SetState(phaseTwo, true)
	assert.False(t, ctrl2.GestureBegan(drag(5)))
}

func TestBeganRejectedByDelegate(t *testing.T) {
	d := newStubDelegate()
	d.rejectBegin = true
	ctrl, _ := newTestController(t, d)

	assert.False(t, ctrl.GestureBegan(drag(5)))
	_, inFlight := ctrl.Destination()
	assert.False(t, inFlight)
	assert.Empty(t, d.started)
}

func TestChangedWhileIdleIsIgnored(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	before := d.a.Frame()
	ctrl.GestureChanged(drag(50))
	assert.Equal(t, before, d.a.Frame())
	assert.Equal(t, phaseOne, ctrl.State())
}

func TestLayoutSuppressedDuringTransition(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	ctrl.GestureChanged(drag(50))
	mid := d.a.Frame()

	ctrl.RequestLayout()
	assert.Equal(t, mid, d.a.Frame(), "the animation owns the frames")

	// Settles normally afterwards.
	ctrl.GestureEnded(drag(50))
	ctrl.Advance(settleDuration)
	assert.Equal(t, phaseTwo, ctrl.State())
	ctrl.RequestLayout()
	assert.Equal(t, layout.Rect{X: 30, Y: 0, W: 10, H: 4}, d.a.Frame())
}

func TestSetStateIgnoredWhileAnimating(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	ctrl.SetState(phaseTwo, false)

	assert.Equal(t, phaseOne, ctrl.State())
	assert.True(t, ctrl.Animating())
}

func TestScrubProgressFollowsOverrideClamped(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))

	ctrl.GestureChanged(drag(-40)) // override returns -0.4, clamped to 0
	assert.InDelta(t, 0, d.a.Frame().X, 0.01)

	ctrl.GestureChanged(drag(150)) // override returns 1.5, clamped to 1
	assert.InDelta(t, 30, d.a.Frame().X, 0.01)

	_, inFlight := ctrl.Destination()
	assert.True(t, inFlight, "scrubbing never changes state or destination")
	assert.Equal(t, phaseOne, ctrl.State())
}

// flipDelegate stacks the shared nodes in opposite z-order per phase:
// a above b in phaseOne, b above a in phaseTwo.
type flipDelegate struct{ *stubDelegate }

func (d *flipDelegate) NodesForState(state *phase) []*scene.Node {
	if state == nil || *state == phaseTwo {
		return []*scene.Node{d.b, d.a, d.badge}
	}
	return []*scene.Node{d.a, d.b}
}

func TestStackingOrderFollowsState(t *testing.T) {
	d := newStubDelegate()
	sc := scene.New()
	ctrl, err := New[phase](phaseOne, sc, &flipDelegate{d}, Options{
		Duration:              100 * time.Millisecond,
		Curve:                 Linear,
		MinFractionToComplete: 0.3,
	})
	require.NoError(t, err)
	ctrl.SetConstraints(layout.Loose(layout.Size{W: 100, H: 40}))
	require.Equal(t, []*scene.Node{d.a, d.b}, sc.Nodes())

	ctrl.SetState(phaseTwo, true)
	assert.Equal(t, []*scene.Node{d.b, d.a, d.badge}, sc.Nodes(),
		"destination z-order takes effect when the transition starts")

	ctrl.Advance(settleDuration)
	require.Equal(t, phaseTwo, ctrl.State())
	assert.Equal(t, []*scene.Node{d.b, d.a, d.badge}, sc.Nodes())

	ctrl.SetState(phaseOne, false)
	assert.Equal(t, []*scene.Node{d.a, d.b}, sc.Nodes(),
		"shared nodes restack back for the source order")
}

func TestBadgeFadesInDuringTransition(t *testing.T) {
	d := newStubDelegate()
	ctrl, _ := newTestController(t, d)

	require.True(t, ctrl.GestureBegan(drag(5)))
	assert.InDelta(t, 0, d.badge.Opacity(), 0.001, "badge starts from its source properties")

	ctrl.GestureChanged(drag(50))
	assert.InDelta(t, 0.5, d.badge.Opacity(), 0.01)
}
