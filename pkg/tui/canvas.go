package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"SlideBox/pkg/scene"
)

// nodeSkin is how the canvas paints one node: a filled body, a ghost
// texture for low opacity, and a centered label.
type nodeSkin struct {
	fill  lipgloss.Style
	ghost lipgloss.Style
	label string
}

// canvas rasterizes scene nodes into a cell grid. Nodes are painted in
// scene order, so later nodes cover earlier ones.
type canvas struct {
	w, h  int
	cells [][]cell
}

type cell struct {
	ch    rune
	style lipgloss.Style
	set   bool
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

// Opacity buckets: fully drawn, ghost texture, invisible.
const (
	ghostOpacity  = 0.6
	hiddenOpacity = 0.05
)

// paint draws one node with its skin, honoring the node's opacity.
func (c *canvas) paint(n *scene.Node, skin nodeSkin) {
	op := n.Opacity()
	if op < hiddenOpacity {
		return
	}

	f := n.Frame()
	x0 := int(math.Round(f.X))
	y0 := int(math.Round(f.Y))
	w := int(math.Round(f.W))
	h := int(math.Round(f.H))
	if w <= 0 || h <= 0 {
		return
	}

	body := ' '
	style := skin.fill
	if op < ghostOpacity {
		body = '░'
		style = skin.ghost
	}

	for y := y0; y < y0+h; y++ {
		if y < 0 || y >= c.h {
			continue
		}
		for x := x0; x < x0+w; x++ {
			if x < 0 || x >= c.w {
				continue
			}
			c.cells[y][x] = cell{ch: body, style: style, set: true}
		}
	}

	if op >= ghostOpacity && skin.label != "" {
		c.paintLabel(skin.label, x0, y0, w, h, skin.fill.Bold(true))
	}
}

func (c *canvas) paintLabel(label string, x0, y0, w, h int, style lipgloss.Style) {
	y := y0 + h/2
	if y < 0 || y >= c.h {
		return
	}
	runes := []rune(label)
	if len(runes) > w {
		runes = runes[:w]
	}
	x := x0 + (w-len(runes))/2
	for i, r := range runes {
		if x+i < 0 || x+i >= c.w {
			continue
		}
		c.cells[y][x+i] = cell{ch: r, style: style, set: true}
	}
}

// render flattens the grid into styled terminal lines.
func (c *canvas) render() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range row {
			if !cl.set {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cl.style.Render(string(cl.ch)))
		}
	}
	return sb.String()
}
