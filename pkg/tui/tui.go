// Package tui renders the slide-box demo and feeds gestures, keys, and
// animation ticks to the transition controller.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"SlideBox/pkg/config"
	"SlideBox/pkg/layout"
	"SlideBox/pkg/logger"
	"SlideBox/pkg/scene"
	"SlideBox/pkg/transition"
)

// Layout constants for consistent spacing
const (
	headerHeight = 1
	statusHeight = 1
	hintHeight   = 1
	helpHeight   = 1
	minCanvasH   = 8
)

// tickMsg drives the animation clock.
type tickMsg time.Time

type keyMap struct {
	Toggle key.Binding
	Snap   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Snap, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Snap},
		{k.Cancel, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "animate to other state"),
		),
		Snap: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "snap to other state"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the demo.
type Model struct {
	cfg   *config.Config
	log   *zap.Logger
	boxes *Boxes
	sc    *scene.Scene
	ctrl  *transition.Controller[BoxState]
	skins map[*scene.Node]nodeSkin

	rec  recognizer
	keys keyMap
	help help.Model

	width, height int
	ready         bool
	lastTick      time.Time
}

// NewModel builds the demo model from configuration.
func NewModel(cfg *config.Config) (Model, error) {
	boxes := NewBoxes()
	sc := scene.New()

	ctrl, err := transition.New(StateFirst, sc, boxes, transition.Options{
		Duration:              time.Duration(cfg.DurationMs) * time.Millisecond,
		Curve:                 cfg.TimingCurve(),
		MinFractionToComplete: cfg.MinFractionToComplete,
		KeepUnusedNodes:       cfg.KeepUnusedNodes,
		Logger:                logger.L(),
	})
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:   cfg,
		log:   logger.L(),
		boxes: boxes,
		sc:    sc,
		ctrl:  ctrl,
		skins: map[*scene.Node]nodeSkin{
			boxes.Mover:    moverSkin,
			boxes.Vanisher: vanisherSkin,
			boxes.Badge:    badgeSkin,
		},
		keys: defaultKeyMap(),
		help: help.New(),
	}, nil
}

// Run starts the bubbletea program with mouse tracking enabled.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.TickMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		t := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.ctrl.Advance(t.Sub(m.lastTick))
		}
		m.lastTick = t
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.help.Width = msg.Width
		cw, ch := m.canvasSize()
		m.boxes.SetTravel(float64(cw))
		m.ctrl.SetConstraints(layout.Loose(layout.Size{W: float64(cw), H: float64(ch)}))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.log.Debug("toggle requested", zap.String("from", m.ctrl.State().String()))
			m.ctrl.SetState(m.ctrl.State().Other(), true)
		case key.Matches(msg, m.keys.Snap):
			m.log.Debug("snap requested", zap.String("from", m.ctrl.State().String()))
			m.ctrl.SetState(m.ctrl.State().Other(), false)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Cancel):
			if g, tracking := m.rec.cancel(); tracking {
				m.ctrl.GestureCancelled(g)
			}
		}
		return m, nil

	case tea.MouseMsg:
		switch ev, g := m.rec.handle(msg); ev {
		case dragBegan:
			if m.ctrl.GestureBegan(g) {
				m.rec.accept()
			} else {
				m.rec.reject()
			}
		case dragChanged:
			m.ctrl.GestureChanged(g)
		case dragEnded:
			m.ctrl.GestureEnded(g)
		case dragCancelled:
			m.ctrl.GestureCancelled(g)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) canvasSize() (int, int) {
	h := m.height - headerHeight - statusHeight - hintHeight - helpHeight
	if h < minCanvasH {
		h = minCanvasH
	}
	w := m.width
	if w < 20 {
		w = 20
	}
	return w, h
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	cw, ch := m.canvasSize()
	cv := newCanvas(cw, ch)
	for _, n := range m.sc.Nodes() {
		if skin, ok := m.skins[n]; ok {
			cv.paint(n, skin)
		}
	}

	hint := hintStyle.Render(wordwrap.String(
		"Drag a box horizontally to scrub the transition; release past the threshold to commit, short of it to revert.",
		max(20, m.width-2)))

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("SlideBox"),
		cv.render(),
		m.statusLine(),
		hint,
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) statusLine() string {
	stateStyle := settledStyle
	if m.ctrl.Animating() {
		stateStyle = statusItemStyle
	}
	status := fmt.Sprintf("state: %s", stateStyle.Render(m.ctrl.State().String()))
	if dest, ok := m.ctrl.Destination(); ok {
		status += fmt.Sprintf("  →  %s", statusItemStyle.Render(dest.String()))
		if m.ctrl.Interactive() {
			status += "  (dragging)"
		}
	}
	return statusBarStyle.Width(m.width).Render(status)
}
