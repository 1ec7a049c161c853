package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/bytebuddy/platformer/common"
)

// Camera follows a world point with a deadzone and renders the world through
// an offscreen buffer. Zoom changes are eased over a short tween. Clamping is
// zoom-aware: at zoom 1 the view is clamped strictly to the level, zoomed out
// it may peek past the level edge by a pad proportional to how far out it is.
type Camera struct {
	// view center in world coordinates
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// deadzone half-size in world pixels; the camera only pans once the
	// target leaves this box around the current center
	margin float64
	// extra clamp allowance when zoomed out
	edgePad float64

	worldW float64
	worldH float64

	zoomTween *gween.Tween
}

// NewCamera creates a camera with the given logical screen size and zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	return &Camera{
		screenW: screenW,
		screenH: screenH,
		zoom:    zoom,
		margin:  200,
		edgePad: 512,
	}
}

// SetWorldBounds sets the level pixel dimensions used for clamping.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// SetMargin sets the deadzone half-size in world pixels.
func (c *Camera) SetMargin(m int) {
	if m >= 0 {
		c.margin = float64(m)
	}
}

// SetEdgePad sets the zoomed-out clamp allowance in world pixels.
func (c *Camera) SetEdgePad(p int) {
	if p >= 0 {
		c.edgePad = float64(p)
	}
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// SetZoom sets the zoom immediately, cancelling any tween in flight.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
	c.zoomTween = nil
}

// ZoomTo eases the zoom toward z over a quarter second.
func (c *Camera) ZoomTo(z float64) {
	if z <= 0 {
		return
	}
	c.zoomTween = gween.New(float32(c.zoom), float32(z), 0.25, ease.OutQuad)
}

// ViewTopLeft returns the world-space top-left corner of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Update advances the zoom tween and pans the camera toward the target world
// point, respecting the deadzone and the zoom-aware world clamp. Call once
// per tick with the elapsed time in seconds.
func (c *Camera) Update(dt float64, targetX, targetY float64) {
	if c.zoomTween != nil {
		v, done := c.zoomTween.Update(float32(dt))
		c.zoom = float64(v)
		if done {
			c.zoomTween = nil
		}
	}

	if targetX > c.PosX+c.margin {
		c.PosX = targetX - c.margin
	} else if targetX < c.PosX-c.margin {
		c.PosX = targetX + c.margin
	}
	if targetY > c.PosY+c.margin {
		c.PosY = targetY - c.margin
	} else if targetY < c.PosY-c.margin {
		c.PosY = targetY + c.margin
	}

	c.clamp()
}

// SnapTo centers the camera immediately, with clamping applied. Use after
// level load so the first frame is already constrained.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clamp()
}

func (c *Camera) clamp() {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	halfW := viewW / 2.0
	halfH := viewH / 2.0

	// zoomed out past 1: allow a proportional off-level peek
	pad := 0.0
	if c.zoom < 1.0-1e-3 {
		pad = c.edgePad * (1.0 - c.zoom)
	}

	if c.worldW > 0 {
		minX := halfW - pad
		maxX := c.worldW - halfW + pad
		if maxX < minX {
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = common.Clamp(c.PosX, minX, maxX)
		}
	}
	if c.worldH > 0 {
		minY := halfH - pad
		maxY := c.worldH - halfH + pad
		if maxY < minY {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = common.Clamp(c.PosY, minY, maxY)
		}
	}

	// align source texels to integer screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}
}

// Render clears the offscreen buffer, lets the caller draw the world into it
// using ViewTopLeft and Zoom, then blits it to the screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
