package obj

import "fmt"

// Snapshot is the explicit debug view of the player. Exactly these fields are
// shown on the debug overlay; nothing is discovered by reflection.
type Snapshot struct {
	PosX, PosY      float64
	VelX, VelY      float64
	BoundsX         int
	BoundsY         int
	OnGround        bool
	Jumps           int
	Direction       string
	Accel           float64
	CoyoteTimer     float64
	JumpBufferTimer float64
	DashBufferTimer float64
	State           string
}

// Snapshot captures the player's current state for the debug overlay.
func (p *Player) Snapshot() Snapshot {
	return Snapshot{
		PosX:            p.Pos.X,
		PosY:            p.Pos.Y,
		VelX:            p.Vel.X,
		VelY:            p.Vel.Y,
		BoundsX:         p.Rect.X,
		BoundsY:         p.Rect.Y,
		OnGround:        p.OnGround,
		Jumps:           p.Jumps,
		Direction:       p.Direction.String(),
		Accel:           p.Accel,
		CoyoteTimer:     p.CoyoteTimer,
		JumpBufferTimer: p.JumpBufferTimer,
		DashBufferTimer: p.DashBufferTimer,
		State:           p.State,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"pos=(%.1f,%.1f) vel=(%.1f,%.1f) bounds=(%d,%d)\nground=%v jumps=%d dir=%s accel=%.0f state=%s\ncoyote=%.3f jumpbuf=%.3f dashbuf=%.3f",
		s.PosX, s.PosY, s.VelX, s.VelY, s.BoundsX, s.BoundsY,
		s.OnGround, s.Jumps, s.Direction, s.Accel, s.State,
		s.CoyoteTimer, s.JumpBufferTimer, s.DashBufferTimer,
	)
}
