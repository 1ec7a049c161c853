package obj

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bytebuddy/platformer/common"
)

const testDT = 1.0 / 60.0

// floorAt returns a long floor solid whose top edge is at y.
func floorAt(y int) common.Rect {
	return common.Rect{X: -1000, Y: y, Width: 4000, Height: 48}
}

func newTestPlayer(x, y int) *Player {
	cfg := common.DefaultConfig()
	return NewPlayer(cfg, x, y, NewInput(), nil)
}

// settle ticks the player on the given solids until grounded.
func settle(t *testing.T, p *Player, solids []common.Rect) {
	t.Helper()
	for i := 0; i < 60; i++ {
		p.Update(testDT, solids)
		if p.OnGround {
			return
		}
	}
	t.Fatal("player never grounded")
}

func TestGroundingIdempotence(t *testing.T) {
	// resting motionless exactly atop a solid: grounded must hold across
	// repeated ticks with zero net movement
	p := newTestPlayer(100, 100)
	solids := []common.Rect{{X: 0, Y: 143, Width: 480, Height: 48}}

	settle(t, p, solids)
	wantY := p.Rect.Y
	for i := 0; i < 10; i++ {
		p.Update(testDT, solids)
		if !p.OnGround {
			t.Fatalf("tick %d: grounded flickered off", i)
		}
		if p.Rect.Y != wantY {
			t.Fatalf("tick %d: rect.Y drifted from %d to %d", i, wantY, p.Rect.Y)
		}
	}
	if p.Rect.Bottom() != 143 {
		t.Errorf("bottom = %d, want 143", p.Rect.Bottom())
	}
}

func TestNoTunnelingHorizontal(t *testing.T) {
	p := newTestPlayer(100, 100)
	wall := common.Rect{X: 240, Y: 0, Width: 48, Height: 480}
	solids := []common.Rect{floorAt(143), wall}
	settle(t, p, solids)

	p.Input.MoveX = 1
	for i := 0; i < 60; i++ {
		p.Update(testDT, solids)
		if p.Rect.Intersects(wall) {
			t.Fatalf("tick %d: bounds %+v overlap wall interior", i, p.Rect)
		}
	}
	if p.Rect.Right() != wall.X {
		t.Errorf("right edge = %d, want clamped to wall left %d", p.Rect.Right(), wall.X)
	}
}

func TestNoTunnelingVertical(t *testing.T) {
	p := newTestPlayer(100, 0)
	floor := floorAt(300)
	solids := []common.Rect{floor}

	for i := 0; i < 120; i++ {
		p.Update(testDT, solids)
		if p.Rect.Intersects(floor) {
			t.Fatalf("tick %d: bounds %+v overlap floor interior", i, p.Rect)
		}
		if p.OnGround {
			break
		}
	}
	if !p.OnGround {
		t.Fatal("never landed")
	}
	if p.Rect.Bottom() != floor.Y {
		t.Errorf("bottom = %d, want %d", p.Rect.Bottom(), floor.Y)
	}
}

func TestDoubleJumpCap(t *testing.T) {
	p := newTestPlayer(100, 100)
	solids := []common.Rect{floorAt(143)}
	settle(t, p, solids)

	// first jump from the ground
	p.QueueJump()
	p.Update(testDT, solids)
	if p.Jumps != 1 || p.Vel.Y != p.cfg.JumpVel {
		t.Fatalf("first jump: jumps=%d vel.Y=%v", p.Jumps, p.Vel.Y)
	}

	// second jump mid-air
	p.Update(testDT, solids)
	p.QueueJump()
	p.Update(testDT, solids)
	if p.Jumps != 2 || p.Vel.Y != p.cfg.JumpVel {
		t.Fatalf("double jump: jumps=%d vel.Y=%v", p.Jumps, p.Vel.Y)
	}

	// third press must not fire
	p.QueueJump()
	p.Update(testDT, solids)
	if p.Jumps != 2 {
		t.Errorf("jumps = %d after third press, want 2", p.Jumps)
	}
	if p.Vel.Y == p.cfg.JumpVel {
		t.Error("third jump altered vertical velocity")
	}
}

func TestCoyoteGrace(t *testing.T) {
	p := newTestPlayer(100, 100)
	solids := []common.Rect{floorAt(143)}
	settle(t, p, solids)

	// exhaust the double-jump allowance so only coyote time can permit
	// the jump below
	p.Jumps = p.cfg.MaxJumps

	// the platform disappears; two ticks is well inside the grace window
	p.Update(testDT, nil)
	p.Update(testDT, nil)
	if p.OnGround {
		t.Fatal("still grounded without solids")
	}
	if p.CoyoteTimer <= 0 {
		t.Fatalf("coyote timer expired too early: %v", p.CoyoteTimer)
	}

	p.QueueJump()
	p.Update(testDT, nil)
	if p.Vel.Y != p.cfg.JumpVel {
		t.Errorf("vel.Y = %v, want jump impulse %v", p.Vel.Y, p.cfg.JumpVel)
	}
}

func TestCoyoteExpired(t *testing.T) {
	p := newTestPlayer(100, 100)
	solids := []common.Rect{floorAt(143)}
	settle(t, p, solids)
	p.Jumps = p.cfg.MaxJumps

	// let the grace window lapse (0.12s at 60 TPS is just over 7 ticks)
	for i := 0; i < 10; i++ {
		p.Update(testDT, nil)
	}
	if p.CoyoteTimer > 0 {
		t.Fatalf("coyote timer still active: %v", p.CoyoteTimer)
	}

	p.QueueJump()
	p.Update(testDT, nil)
	if p.Vel.Y == p.cfg.JumpVel {
		t.Error("jump fired after coyote expiry with no jumps left")
	}
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	p := newTestPlayer(100, 95)
	solids := []common.Rect{floorAt(143)}
	p.Jumps = p.cfg.MaxJumps // falling with no air jumps left

	// press jump while still airborne, shortly before touching down
	p.Update(testDT, solids)
	p.QueueJump()
	for i := 0; i < 30; i++ {
		p.Update(testDT, solids)
		if p.Vel.Y == p.cfg.JumpVel {
			return // buffered press consumed on landing
		}
		if p.JumpBufferTimer <= 0 {
			t.Fatal("buffer expired before landing; lower the start height")
		}
	}
	t.Fatal("buffered jump never fired")
}

func TestAnimationStateClassification(t *testing.T) {
	cases := []struct {
		name     string
		onGround bool
		velX     float64
		velY     float64
		want     string
	}{
		{"grounded_still", true, 0, 0, StateIdle},
		{"grounded_slow_drift", true, 0.05, 0, StateIdle},
		{"grounded_moving", true, 5, 0, StateRun},
		{"grounded_moving_left", true, -5, 0, StateRun},
		{"airborne_rising", false, 0, -5, StateJump},
		{"airborne_falling", false, 0, 5, StateFall},
		{"airborne_apex", false, 3, 0, StateFall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AnimationState(c.onGround, c.velX, c.velY); got != c.want {
				t.Errorf("AnimationState(%v, %v, %v) = %q, want %q",
					c.onGround, c.velX, c.velY, got, c.want)
			}
		})
	}
}

func TestFallNeverReplacesActiveClip(t *testing.T) {
	clips := map[string][]*ebiten.Image{
		StateIdle: nil, StateRun: nil, StateJump: nil, StateFall: nil,
	}
	cfg := common.DefaultConfig()
	p := NewPlayer(cfg, 100, 100, NewInput(), NewAnimSprite(clips, StateIdle, 10))

	// free fall: the selector computes fall but the clip stays put
	p.Update(testDT, nil)
	if p.State != StateFall {
		t.Fatalf("state = %q, want fall", p.State)
	}
	if p.visual.Active() != StateIdle {
		t.Errorf("active clip = %q, fall must not replace it", p.visual.Active())
	}

	// an air jump switches the clip, and the fall after the apex keeps it
	p.QueueJump()
	p.Update(testDT, nil)
	if p.visual.Active() != StateJump {
		t.Fatalf("active clip = %q, want jump", p.visual.Active())
	}
	for i := 0; i < 60 && p.Vel.Y <= 0; i++ {
		p.Update(testDT, nil)
	}
	if p.State != StateFall {
		t.Fatalf("state = %q after apex, want fall", p.State)
	}
	if p.visual.Active() != StateJump {
		t.Errorf("active clip = %q after apex, want jump to persist", p.visual.Active())
	}
}

func TestLandingScenario(t *testing.T) {
	// body at (100,100) with a solid directly below at y=148: gravity
	// alone must land it with the bottom flush on the solid's top
	p := newTestPlayer(100, 100)
	solids := []common.Rect{{X: 100, Y: 148, Width: 48, Height: 48}}

	settle(t, p, solids)
	if p.Vel.Y != 0 {
		t.Errorf("vel.Y = %v, want 0 after landing", p.Vel.Y)
	}
	if p.Rect.Bottom() != 148 {
		t.Errorf("bottom = %d, want 148", p.Rect.Bottom())
	}
	if p.Jumps != 0 {
		t.Errorf("jumps = %d, want 0 after landing", p.Jumps)
	}
}

func TestGroundedJumpScenario(t *testing.T) {
	p := newTestPlayer(100, 100)
	solids := []common.Rect{floorAt(143)}
	settle(t, p, solids)

	p.QueueJump()
	p.Update(testDT, solids)
	if p.Vel.Y != p.cfg.JumpVel {
		t.Errorf("vel.Y = %v, want %v", p.Vel.Y, p.cfg.JumpVel)
	}
	if p.OnGround {
		t.Error("still grounded after jump consumption")
	}
	if p.Jumps != 1 {
		t.Errorf("jumps = %d, want 1", p.Jumps)
	}
	if p.CoyoteTimer != 0 || p.JumpBufferTimer != 0 {
		t.Errorf("timers not cleared: coyote=%v buffer=%v", p.CoyoteTimer, p.JumpBufferTimer)
	}
}

func TestDashConsumptionAndDecay(t *testing.T) {
	p := newTestPlayer(100, 100)
	solids := []common.Rect{floorAt(143)}
	settle(t, p, solids)

	p.QueueDash()
	p.Update(testDT, solids)
	if p.Accel != p.cfg.DashVel {
		t.Fatalf("accel = %v, want %v on the consuming tick", p.Accel, p.cfg.DashVel)
	}
	if p.DashBufferTimer != 0 {
		t.Errorf("dash buffer = %v, want 0 after consumption", p.DashBufferTimer)
	}

	startX := p.Rect.X
	p.Update(testDT, solids)
	if p.Vel.X != p.cfg.DashVel {
		t.Errorf("vel.X = %v, want full dash %v", p.Vel.X, p.cfg.DashVel)
	}
	if p.Rect.X != startX+int(p.cfg.DashVel) {
		t.Errorf("moved %d px, want %d", p.Rect.X-startX, int(p.cfg.DashVel))
	}
	if p.Accel != p.cfg.DashVel-dashDecay {
		t.Errorf("accel = %v, want %v after one decay step", p.Accel, p.cfg.DashVel-dashDecay)
	}

	// acceleration bleeds off completely
	for i := 0; i < 30; i++ {
		p.Update(testDT, solids)
	}
	if p.Accel != 0 {
		t.Errorf("accel = %v, want 0 after decay", p.Accel)
	}
}

func TestDashDirection(t *testing.T) {
	p := newTestPlayer(400, 100)
	solids := []common.Rect{floorAt(143)}
	settle(t, p, solids)

	p.Input.MoveX = -1
	p.Update(testDT, solids)
	if p.Direction != DirLeft {
		t.Fatalf("direction = %v, want left", p.Direction)
	}
	p.Input.MoveX = 0

	p.QueueDash()
	p.Update(testDT, solids)
	if p.Accel != -p.cfg.DashVel {
		t.Errorf("accel = %v, want %v when facing left", p.Accel, -p.cfg.DashVel)
	}
}

func TestBoundsTracksPosition(t *testing.T) {
	p := newTestPlayer(100, 100)
	solids := []common.Rect{floorAt(143)}
	p.Input.MoveX = 1
	for i := 0; i < 30; i++ {
		p.Update(testDT, solids)
		wantX := int(roundHalf(p.Pos.X))
		wantY := int(roundHalf(p.Pos.Y))
		if p.Rect.X != wantX || p.Rect.Y != wantY {
			t.Fatalf("tick %d: bounds (%d,%d) diverged from pos (%v,%v)",
				i, p.Rect.X, p.Rect.Y, p.Pos.X, p.Pos.Y)
		}
	}
}

func roundHalf(v float64) float64 {
	if v >= 0 {
		return float64(int(v + 0.5))
	}
	return float64(int(v - 0.5))
}
