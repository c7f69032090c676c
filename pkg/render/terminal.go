package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-lensing/pkg/entity"
	"github.com/opd-ai/go-lensing/pkg/physics"
)

// TerminalRenderer provides a simple ASCII rendering of the simulation for
// terminals: the event horizon as a filled disc, ray heads as '*', trails
// as fading dot glyphs.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64 // visual units per character cell
	centerPos physics.Vector2D
	origin    physics.Vector2D // hole position; ray coordinates are relative to it
}

// trailGlyphs orders trail characters from faintest (oldest) to brightest.
var trailGlyphs = []rune{'.', ':', '+'}

// NewTerminalRenderer creates a new terminal renderer with the specified
// dimensions. scale is the number of visual units per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts visual-space coordinates to character cells.
// Terminal cells are roughly twice as tall as wide, hence the y squeeze.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/(r.scale*2) + float64(r.height)/2)
	return screenX, screenY
}

// set writes a glyph if the cell is on screen.
func (r *TerminalRenderer) set(x, y int, glyph rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Print("\033[H\033[2J")

	// Draw border
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")

	// Draw buffer
	for y := range r.buffer {
		fmt.Print("|")
		for x := range r.buffer[y] {
			fmt.Print(string(r.buffer[y][x]))
		}
		fmt.Println("|")
	}

	// Draw border
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
}

// RenderBlackHole implements entity.Renderer. The horizon is drawn as a
// filled disc of '#' around an '@' center.
func (r *TerminalRenderer) RenderBlackHole(hole *entity.BlackHole) {
	center := hole.GetPosition()
	radius := hole.HorizonVisualRadius()
	r.origin = center

	cells := int(radius / r.scale)
	for dy := -cells; dy <= cells; dy++ {
		for dx := -cells; dx <= cells; dx++ {
			if dx*dx+dy*dy > cells*cells {
				continue
			}
			x, y := r.worldToScreen(physics.Vector2D{
				X: center.X + float64(dx)*r.scale,
				Y: center.Y + float64(dy)*r.scale,
			})
			r.set(x, y, '#')
		}
	}

	cx, cy := r.worldToScreen(center)
	r.set(cx, cy, '@')
}

// RenderRay implements entity.Renderer. Trail glyphs brighten toward the
// ray head; absorbed rays keep their trail but lose the head marker.
func (r *TerminalRenderer) RenderRay(ray *entity.LightRay) {
	points := ray.Trail().Points()
	for i, p := range points {
		glyph := trailGlyphs[i*len(trailGlyphs)/max(len(points), 1)]
		x, y := r.worldToScreen(r.origin.Add(p))
		r.set(x, y, glyph)
	}

	if ray.Status() == entity.RayActive {
		x, y := r.worldToScreen(r.origin.Add(ray.GetPosition()))
		r.set(x, y, '*')
	}
}
