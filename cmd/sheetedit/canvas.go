package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bytebuddy/platformer/sheetmeta"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragMove
	dragResize
	dragCreate
)

// handleSize is the screen-pixel size of the resize grab square on the
// selected box's bottom-right corner.
const handleSize = 8

// Canvas is the pan/zoom view of the sheet plus the in-flight mouse drag.
type Canvas struct {
	Zoom float64
	OffX float64
	OffY float64

	panActive bool
	lastMX    int
	lastMY    int

	mode   dragMode
	grabDX int
	grabDY int
	// drag anchor in sheet pixels for box creation
	createX int
	createY int
}

func NewCanvas() *Canvas {
	return &Canvas{Zoom: 4, OffX: 40, OffY: 40}
}

// ToSheet maps a screen point into sheet pixel coordinates.
func (c *Canvas) ToSheet(mx, my int) (int, int) {
	if c.Zoom == 0 {
		c.Zoom = 1
	}
	x := (float64(mx) - c.OffX) / c.Zoom
	y := (float64(my) - c.OffY) / c.Zoom
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToScreen maps a sheet pixel point onto the screen.
func (c *Canvas) ToScreen(x, y int) (float64, float64) {
	return float64(x)*c.Zoom + c.OffX, float64(y)*c.Zoom + c.OffY
}

// HandlePanZoom processes mouse-wheel zoom anchored at the cursor and
// middle/right button panning. overCanvas gates wheel zoom to the canvas
// area.
func (c *Canvas) HandlePanZoom(mx, my int, overCanvas bool) {
	if overCanvas {
		if _, wy := ebiten.Wheel(); wy != 0 {
			sx, sy := c.ToSheet(mx, my)
			factor := 1.1
			if wy < 0 {
				factor = 1.0 / 1.1
			}
			newZoom := c.Zoom * factor
			if newZoom < 0.5 {
				newZoom = 0.5
			}
			if newZoom > 32 {
				newZoom = 32
			}
			// keep the sheet point under the cursor fixed
			c.OffX = float64(mx) - float64(sx)*newZoom
			c.OffY = float64(my) - float64(sy)*newZoom
			c.Zoom = newZoom
		}
	}

	panPressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if panPressed {
		if c.panActive {
			c.OffX += float64(mx - c.lastMX)
			c.OffY += float64(my - c.lastMY)
		}
		c.panActive = true
		c.lastMX = mx
		c.lastMY = my
	} else {
		c.panActive = false
	}
}

// HitBox returns the index of the topmost box containing the sheet point, or
// -1. Later boxes win so recently added frames are picked first.
func HitBox(boxes []sheetmeta.Box, x, y int) int {
	for i := len(boxes) - 1; i >= 0; i-- {
		r := boxes[i].Rect
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return i
		}
	}
	return -1
}

// overResizeHandle tests whether the screen point sits on the selected box's
// bottom-right resize handle.
func (c *Canvas) overResizeHandle(box sheetmeta.Box, mx, my int) bool {
	hx, hy := c.ToScreen(box.Rect.X+box.Rect.W, box.Rect.Y+box.Rect.H)
	return math.Abs(float64(mx)-hx) <= handleSize && math.Abs(float64(my)-hy) <= handleSize
}

// mousePressEdge reports a left press this tick.
func mousePressEdge() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw renders the sheet, every box outline, and the selection highlight.
func (c *Canvas) Draw(screen *ebiten.Image, sheet *ebiten.Image, boxes []sheetmeta.Box, selected int) {
	if sheet != nil {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(c.Zoom, c.Zoom)
		op.GeoM.Translate(c.OffX, c.OffY)
		screen.DrawImage(sheet, op)
	}

	outline := color.RGBA{R: 90, G: 200, B: 255, A: 200}
	active := color.RGBA{R: 255, G: 120, B: 40, A: 255}
	for i, b := range boxes {
		x, y := c.ToScreen(b.Rect.X, b.Rect.Y)
		w := float32(float64(b.Rect.W) * c.Zoom)
		h := float32(float64(b.Rect.H) * c.Zoom)
		col := outline
		width := float32(1)
		if i == selected {
			col = active
			width = 2
		}
		vector.StrokeRect(screen, float32(x), float32(y), w, h, width, col, false)
		if i == selected {
			hx, hy := c.ToScreen(b.Rect.X+b.Rect.W, b.Rect.Y+b.Rect.H)
			vector.DrawFilledRect(screen,
				float32(hx)-handleSize/2, float32(hy)-handleSize/2,
				handleSize, handleSize, active, false)
		}
	}

	// in-flight creation rectangle
	if c.mode == dragCreate {
		mx, my := ebiten.CursorPosition()
		sx, sy := c.ToSheet(mx, my)
		x0, y0, x1, y1 := normRect(c.createX, c.createY, sx, sy)
		px, py := c.ToScreen(x0, y0)
		vector.StrokeRect(screen, float32(px), float32(py),
			float32(float64(x1-x0)*c.Zoom), float32(float64(y1-y0)*c.Zoom),
			1, color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	}
}

// normRect orders two corners into a top-left plus bottom-right pair.
func normRect(ax, ay, bx, by int) (x0, y0, x1, y1 int) {
	x0, x1 = ax, bx
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 = ay, by
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return
}
