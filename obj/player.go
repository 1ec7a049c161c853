package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/bytebuddy/platformer/common"
)

// Animation state names. attack and hurt exist on the sheet but are only
// reachable through external triggers, never from movement classification.
const (
	StateIdle   = "idle"
	StateRun    = "run"
	StateJump   = "jump"
	StateFall   = "fall"
	StateAttack = "attack"
	StateHurt   = "hurt"
)

// Direction is the player's facing.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// dash acceleration decays by this much every tick until it reaches zero
const dashDecay = 5

// Player is the kinematic body plus its input grace timers and visual.
//
// Pos carries sub-pixel precision; Rect is always the rounded integer
// projection of Pos and the two are re-synced after every collision clamp.
// Velocities are in pixels per tick (fixed-step integration) while the three
// countdown timers are in real seconds.
type Player struct {
	Rect      common.Rect
	Pos       common.Vec2
	Vel       common.Vec2
	OnGround  bool
	Jumps     int
	Direction Direction

	// dash is applied as a horizontal acceleration that bleeds off
	Accel float64

	CoyoteTimer     float64
	JumpBufferTimer float64
	DashBufferTimer float64

	// State is the animation label selected on the most recent tick.
	State string

	Input *Input

	cfg    common.Config
	visual *AnimSprite
	img    *ebiten.Image
}

// NewPlayer creates the player at the given top-left pixel position. input
// and visual may be nil; a nil visual falls back to a flat colored rectangle.
func NewPlayer(cfg common.Config, x, y int, input *Input, visual *AnimSprite) *Player {
	w, h := common.PlayerSize(cfg.TileSize)
	return &Player{
		Rect:      common.Rect{X: x, Y: y, Width: w, Height: h},
		Pos:       common.Vec2{X: float64(x), Y: float64(y)},
		Direction: DirRight,
		State:     StateIdle,
		Input:     input,
		cfg:       cfg,
		visual:    visual,
	}
}

// QueueJump records a jump press; it fires on the next tick the jump is
// legal, within the buffer window.
func (p *Player) QueueJump() {
	p.JumpBufferTimer = p.cfg.JumpBufferTime
}

// QueueDash records a dash press, buffered like a jump press.
func (p *Player) QueueDash() {
	p.DashBufferTimer = p.cfg.DashBufferTime
}

// Update runs one simulation tick: timers, input, gravity, axis-separated
// collision, buffered action consumption, and animation selection, in that
// order. dt is the elapsed real time in seconds and only scales the timers;
// position integration is fixed-step.
func (p *Player) Update(dt float64, solids []common.Rect) {
	if p.CoyoteTimer > 0 {
		p.CoyoteTimer -= dt
	}
	if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer -= dt
	}
	if p.DashBufferTimer > 0 {
		p.DashBufferTimer -= dt
	}

	p.handleInput()
	p.Vel.Y += p.cfg.Gravity
	p.Vel.X += p.Accel

	p.moveAndCollide(solids)

	if p.Accel < 0 {
		p.Accel += dashDecay
		if p.Accel > 0 {
			p.Accel = 0
		}
	} else if p.Accel > 0 {
		p.Accel -= dashDecay
		if p.Accel < 0 {
			p.Accel = 0
		}
	}

	// consume a buffered jump if allowed
	if p.JumpBufferTimer > 0 && (p.OnGround || p.CoyoteTimer > 0 || p.Jumps < p.cfg.MaxJumps) {
		p.doJump()
		p.Jumps++
	}

	// consume a buffered dash if armed
	if p.DashBufferTimer > 0 {
		p.doDash()
	}

	p.State = AnimationState(p.OnGround, p.Vel.X, p.Vel.Y)
	if p.visual != nil {
		// a fall classification never replaces the active clip, so the
		// jump clip keeps playing across the arc's apex
		if p.State != StateFall {
			p.visual.Set(p.State)
		}
		p.visual.Update(dt, p.Vel.X < 0)
	}
}

func (p *Player) handleInput() {
	p.Vel.X = 0
	if p.Input == nil {
		return
	}
	if p.Input.MoveX < 0 {
		p.Vel.X = -p.cfg.MoveSpeed
		p.Direction = DirLeft
	} else if p.Input.MoveX > 0 {
		p.Vel.X = p.cfg.MoveSpeed
		p.Direction = DirRight
	}
}

func (p *Player) doJump() {
	p.Vel.Y = p.cfg.JumpVel
	p.OnGround = false
	p.CoyoteTimer = 0
	p.JumpBufferTimer = 0
}

func (p *Player) doDash() {
	if p.Direction == DirRight {
		p.Accel = p.cfg.DashVel
	} else {
		p.Accel = -p.cfg.DashVel
	}
	p.DashBufferTimer = 0
}

// groundProbe reports whether there is solid ground immediately below the
// player's bounds.
func (p *Player) groundProbe(solids []common.Rect, epsilon int) bool {
	test := p.Rect.Moved(0, epsilon)
	for _, s := range solids {
		if test.Intersects(s) {
			return true
		}
	}
	return false
}

// moveAndCollide integrates velocity and resolves tile overlap one axis at a
// time, horizontal first. Each overlapping solid clamps the bounds in list
// order and the continuous position is re-synced after every clamp.
func (p *Player) moveAndCollide(solids []common.Rect) {
	// horizontal
	p.Pos.X += p.Vel.X
	p.Rect.X = int(math.Round(p.Pos.X))
	for _, s := range solids {
		if !p.Rect.Intersects(s) {
			continue
		}
		if p.Vel.X > 0 {
			p.Rect.X = s.X - p.Rect.Width
		} else if p.Vel.X < 0 {
			p.Rect.X = s.X + s.Width
		}
		p.Pos.X = float64(p.Rect.X)
	}

	// vertical
	p.Pos.Y += p.Vel.Y
	p.Rect.Y = int(math.Round(p.Pos.Y))
	landed := false
	for _, s := range solids {
		if !p.Rect.Intersects(s) {
			continue
		}
		if p.Vel.Y > 0 { // moving down, hit floor
			p.Rect.Y = s.Y - p.Rect.Height
			p.Vel.Y = 0
			landed = true
			p.Jumps = 0
		} else if p.Vel.Y < 0 { // moving up, hit ceiling
			p.Rect.Y = s.Y + s.Height
			p.Vel.Y = 0
		}
		p.Pos.Y = float64(p.Rect.Y)
	}

	// Grounded if we just landed, or if solid sits immediately below. The
	// probe prevents a one-tick "airborne" flicker when resting on a tile
	// without overlapping it after rounding.
	p.OnGround = landed || p.groundProbe(solids, 1)

	if p.OnGround {
		p.CoyoteTimer = p.cfg.CoyoteTime
	}
}

// AnimationState maps physical state to an animation label. Pure function;
// attack and hurt are externally triggered overrides, never returned here.
func AnimationState(onGround bool, velX, velY float64) string {
	if !onGround {
		if velY < 0 {
			return StateJump
		}
		return StateFall
	}
	if math.Abs(velX) > 0.1 {
		return StateRun
	}
	return StateIdle
}

// Draw renders the player at its world position translated by the view
// top-left and scaled by zoom.
func (p *Player) Draw(screen *ebiten.Image, viewX, viewY, zoom float64) {
	x := (float64(p.Rect.X) - viewX) * zoom
	y := (float64(p.Rect.Y) - viewY) * zoom
	if p.visual != nil {
		p.visual.Draw(screen, x, y, zoom)
		return
	}
	if p.img == nil {
		p.img = ebiten.NewImage(p.Rect.Width, p.Rect.Height)
		p.img.Fill(colornames.Salmon)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(x, y)
	screen.DrawImage(p.img, op)
}
