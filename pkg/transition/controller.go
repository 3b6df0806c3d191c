package transition

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"SlideBox/pkg/layout"
	"SlideBox/pkg/scene"
)

// Options configure a Controller.
type Options struct {
	// Duration of a full (fraction 0 to 1) transition. Zero means 250ms.
	Duration time.Duration

	// Curve is the timing curve for timed runs. Nil means EaseInOutCubic.
	Curve Curve

	// MinFractionToComplete is the progress threshold a gesture must
	// exceed at release for the transition to complete; at or below it
	// the transition reverts. Zero means 0.3.
	MinFractionToComplete float64

	// KeepUnusedNodes leaves nodes not required by the settled state
	// attached instead of detaching them.
	KeepUnusedNodes bool

	// Logger for transition lifecycle events. Nil means no logging.
	Logger *zap.Logger
}

const (
	defaultDuration              = 250 * time.Millisecond
	defaultMinFractionToComplete = 0.3
)

// segment is one node's interpolation span for the current transition.
type segment struct {
	fromFrame, toFrame     layout.Rect
	fromOpacity, toOpacity float64
}

// Controller owns a discrete state value and drives animated transitions
// between states, either as timed runs or scrubbed live by a gesture.
//
// The controller is event-loop confined: every method must be called
// from the same goroutine that delivers gesture events and ticks. There
// is no internal locking; safety comes from sequential delivery.
type Controller[S comparable] struct {
	state       S
	destination S
	inFlight    bool
	interactive bool

	animator    *Animator
	scene       *scene.Scene
	delegate    Delegate[S]
	constraints layout.Constraints
	opts        Options
	log         *zap.Logger

	segments map[*scene.Node]segment
}

// New returns a controller idle at the initial state. The delegate's
// node set and layout for that state are mounted immediately.
func New[S comparable](initial S, sc *scene.Scene, delegate Delegate[S], opts Options) (*Controller[S], error) {
	if sc == nil {
		return nil, errors.New("transition: nil scene")
	}
	if delegate == nil {
		return nil, errors.New("transition: nil delegate")
	}
	if opts.Duration == 0 {
		opts.Duration = defaultDuration
	}
	if opts.Duration < 0 {
		return nil, fmt.Errorf("transition: negative duration %v", opts.Duration)
	}
	if opts.Curve == nil {
		opts.Curve = EaseInOutCubic
	}
	if opts.MinFractionToComplete == 0 {
		opts.MinFractionToComplete = defaultMinFractionToComplete
	}
	if opts.MinFractionToComplete < 0 || opts.MinFractionToComplete > 1 {
		return nil, fmt.Errorf("transition: threshold %v outside [0,1]", opts.MinFractionToComplete)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	c := &Controller[S]{
		state:    initial,
		animator: NewAnimator(),
		scene:    sc,
		delegate: delegate,
		opts:     opts,
		log:      opts.Logger,
	}
	c.reconcileTo(initial)
	c.delegate.ApplyProperties(initial)
	return c, nil
}

// State returns the current settled state.
func (c *Controller[S]) State() S { return c.state }

// Destination returns the state an in-flight transition is animating
// toward, and whether one exists.
func (c *Controller[S]) Destination() (S, bool) { return c.destination, c.inFlight }

// Animating reports whether a transition is in flight.
func (c *Controller[S]) Animating() bool { return c.inFlight }

// Interactive reports whether the in-flight transition is gesture-driven.
func (c *Controller[S]) Interactive() bool { return c.inFlight && c.interactive }

// SetConstraints records the layout bounds and refreshes the current
// layout. Mid-transition the refresh is suppressed like any other
// layout request.
func (c *Controller[S]) SetConstraints(cs layout.Constraints) {
	c.constraints = cs
	c.RequestLayout()
}

// RequestLayout re-resolves and applies frames for the current state.
// While a transition is in flight the animation owns the frames, so the
// request is a defined no-op.
func (c *Controller[S]) RequestLayout() {
	if c.inFlight {
		c.log.Debug("layout pass suppressed during transition")
		return
	}
	c.applyLayoutFor(c.state)
}

// SetState changes the controller's state. Without animation the change
// is immediate: the node set is reconciled to exactly the new state and
// a synchronous layout pass runs. With animation a non-interactive
// transition starts and always completes at the destination. Calls made
// while a transition is in flight are ignored.
func (c *Controller[S]) SetState(s S, animated bool) {
	if c.inFlight || c.animator.Active() {
		c.log.Warn("state change ignored: transition in flight")
		return
	}
	if !animated || s == c.state {
		c.state = s
		c.reconcileTo(s)
		c.delegate.ApplyProperties(s)
		c.applyLayoutFor(s)
		return
	}
	c.beginTransition(s, false)
}

// GestureBegan starts an interactive transition for a gesture-begin
// event. It returns false when the gesture is rejected, either because a
// transition is already in flight or because the delegate returned no
// destination; the caller should disable its recognizer until a cancel
// event re-enables it.
func (c *Controller[S]) GestureBegan(g Gesture) bool {
	// Checked against the animator, not just inFlight: a timeline that
	// is still settling must not be double-driven.
	if c.animator.Active() || c.inFlight {
		c.log.Debug("gesture rejected: timeline active")
		return false
	}
	dest, ok := c.delegate.GestureDestination(c.state, g)
	if !ok {
		c.log.Debug("gesture rejected by delegate")
		return false
	}
	return c.beginTransition(dest, true)
}

// GestureChanged scrubs the in-flight interactive transition to the
// fraction the delegate derives from the event. Stray changed events
// arriving while no interactive transition is scrubbable are ignored.
func (c *Controller[S]) GestureChanged(g Gesture) {
	if !c.inFlight || !c.interactive || !c.animator.Paused() {
		return
	}
	f := clamp01(c.delegate.GestureFraction(c.state, c.destination, g))
	if err := c.animator.SetFractionComplete(f); err != nil {
		c.log.Error("scrub failed", zap.Error(err))
		return
	}
	c.apply(c.animator.Eased())
}

// GestureEnded resolves the interactive transition: past the threshold
// the animator resumes forward to completion, otherwise it reverses back
// to the source state. Duplicate ended events are ignored because the
// timeline is no longer paused.
func (c *Controller[S]) GestureEnded(g Gesture) {
	if !c.inFlight || !c.interactive || !c.animator.Paused() {
		return
	}
	forward := c.animator.Fraction() > c.opts.MinFractionToComplete
	c.resume(!forward)
}

// GestureCancelled always reverts the interactive transition to its
// source state, symmetric with a low-progress release.
func (c *Controller[S]) GestureCancelled(g Gesture) {
	if !c.inFlight || !c.interactive || !c.animator.Paused() {
		return
	}
	c.resume(true)
}

// Advance feeds elapsed time to the timeline and re-applies the
// interpolated frames and properties. The owner calls this from its
// animation tick.
func (c *Controller[S]) Advance(dt time.Duration) {
	if !c.animator.Active() {
		return
	}
	c.animator.Advance(dt) // may settle the transition
	if c.inFlight && c.animator.Active() && !c.animator.Paused() {
		c.apply(c.animator.Eased())
	}
}

// beginTransition sets up node additions, interpolation segments, and
// the timeline for a transition to dest. Interactive transitions start
// paused at fraction 0 for scrubbing; timed ones run forward at once.
func (c *Controller[S]) beginTransition(dest S, interactive bool) bool {
	if err := c.animator.Configure(c.opts.Duration, c.opts.Curve); err != nil {
		c.log.Error("transition setup failed", zap.Error(err))
		return false
	}

	// Attach the destination's missing nodes without removing obsolete
	// ones, so both states' nodes are visible while animating.
	changes := Reconcile(c.scene.Nodes(), c.delegate.NodesForState(&dest), false)
	added := make(map[*scene.Node]bool, len(changes.Insertions))
	for _, ins := range changes.Insertions {
		added[ins.Item] = true
	}
	c.applyChanges(changes)

	srcFrames := layout.Resolve(c.constraints, c.delegate.LayoutSpec(c.constraints, c.state))
	destFrames := layout.Resolve(c.constraints, c.delegate.LayoutSpec(c.constraints, dest))

	nodes := c.scene.Nodes()

	// Capture property targets by applying the destination's properties
	// to the nodes, reading them back, then restoring the source values.
	fromOpacity := make(map[*scene.Node]float64, len(nodes))
	for _, n := range nodes {
		fromOpacity[n] = n.Opacity()
	}
	c.delegate.ApplyProperties(dest)

	c.segments = make(map[*scene.Node]segment, len(nodes))
	for _, n := range nodes {
		seg := segment{
			fromOpacity: fromOpacity[n],
			toOpacity:   n.Opacity(),
		}
		n.SetOpacity(seg.fromOpacity)

		from := n.Frame()
		if added[n] {
			// A node entering for the destination starts at its
			// source-layout frame when that layout knows it, else it
			// appears in place at its destination frame.
			if f, ok := srcFrames[n]; ok {
				from = f
			} else if f, ok := destFrames[n]; ok {
				from = f
			}
			n.SetFrame(from)
		}
		seg.fromFrame = from
		seg.toFrame = from
		if f, ok := destFrames[n]; ok {
			seg.toFrame = f
		}
		c.segments[n] = seg
	}

	c.destination = dest
	c.inFlight = true
	c.interactive = interactive
	c.animator.OnCompletion(c.settle)

	c.log.Info("transition started",
		zap.Bool("interactive", interactive),
		zap.Int("nodes", len(nodes)),
		zap.Int("added", len(added)))

	c.delegate.AnimationStarted(interactive)

	if interactive {
		if err := c.animator.Pause(); err != nil {
			c.log.Error("pause failed", zap.Error(err))
		}
	} else if err := c.animator.Run(false); err != nil {
		c.log.Error("run failed", zap.Error(err))
	}
	return true
}

// resume restarts the paused timeline in the given direction; the
// animator defers actual motion by ResumeDelay.
func (c *Controller[S]) resume(reversed bool) {
	if err := c.animator.Run(reversed); err != nil {
		c.log.Error("resume failed", zap.Error(err), zap.Bool("reversed", reversed))
	}
}

// settle commits or reverts the transition once the timeline reaches an
// end: state is updated, the node set is reconciled to exactly the final
// state, and frames/properties snap to their resolved values.
func (c *Controller[S]) settle(at Position) {
	completed := at == PositionEnd
	interactive := c.interactive
	final := c.state
	if completed {
		final = c.destination
		c.state = final
	}
	c.inFlight = false
	c.interactive = false
	c.segments = nil

	c.reconcileTo(final)
	c.delegate.ApplyProperties(final)
	c.applyLayoutFor(final)

	c.log.Info("transition settled",
		zap.Bool("interactive", interactive),
		zap.Bool("completed", completed),
		zap.String("position", at.String()))

	c.delegate.AnimationFinished(interactive, completed)
}

// apply writes the interpolated frame and opacity for eased progress t
// to every node participating in the transition.
func (c *Controller[S]) apply(t float64) {
	for n, seg := range c.segments {
		n.SetFrame(layout.LerpRect(seg.fromFrame, seg.toFrame, t))
		n.SetOpacity(layout.Lerp(seg.fromOpacity, seg.toOpacity, t))
	}
}

// reconcileTo diffs the scene's nodes against the set required by state
// and applies the resulting edit script.
func (c *Controller[S]) reconcileTo(state S) {
	changes := Reconcile(c.scene.Nodes(), c.delegate.NodesForState(&state), !c.opts.KeepUnusedNodes)
	c.applyChanges(changes)
}

func (c *Controller[S]) applyChanges(ch Changes[*scene.Node]) {
	for _, n := range ch.Removals {
		c.scene.Detach(n)
	}
	for _, ins := range ch.Insertions {
		c.scene.Attach(ins.Item, ins.Index)
	}
	// Kept nodes may have been restacked even when the script is empty.
	c.scene.SetOrder(ch.Result)
}

// applyLayoutFor resolves the layout for state and assigns the resulting
// frames to the attached nodes.
func (c *Controller[S]) applyLayoutFor(state S) {
	frames := layout.Resolve(c.constraints, c.delegate.LayoutSpec(c.constraints, state))
	for _, n := range c.scene.Nodes() {
		if f, ok := frames[n]; ok {
			n.SetFrame(f)
		}
	}
}
