package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimSprite plays named frame clips at a fixed clip FPS. It owns its own
// frame timing; callers switch clips with Set and advance playback with
// Update once per tick.
type AnimSprite struct {
	clips   map[string][]*ebiten.Image
	active  string
	frame   int
	elapsed float64
	fps     float64
	flip    bool
}

// NewAnimSprite creates an animator over the given clips. The first clip
// passed as initial becomes active; fps defaults to 10 when <= 0.
func NewAnimSprite(clips map[string][]*ebiten.Image, initial string, fps float64) *AnimSprite {
	if fps <= 0 {
		fps = 10
	}
	return &AnimSprite{clips: clips, active: initial, fps: fps}
}

// Active returns the name of the active clip.
func (s *AnimSprite) Active() string { return s.active }

// FrameIndex returns the current frame index within the active clip.
func (s *AnimSprite) FrameIndex() int { return s.frame }

// Set switches the active clip and restarts it. Setting the already-active
// clip is a no-op so a held state does not reset its playback.
func (s *AnimSprite) Set(name string) {
	if name == s.active {
		return
	}
	s.active = name
	s.frame = 0
	s.elapsed = 0
}

// Update advances playback by dt seconds and records the mirror flag used by
// Draw. Clips loop.
func (s *AnimSprite) Update(dt float64, flip bool) {
	s.flip = flip
	frames := s.clips[s.active]
	if len(frames) <= 1 {
		return
	}
	s.elapsed += dt
	frameTime := 1.0 / s.fps
	for s.elapsed >= frameTime {
		s.elapsed -= frameTime
		s.frame = (s.frame + 1) % len(frames)
	}
}

// Frame returns the current frame image, or nil when the active clip has no
// frames.
func (s *AnimSprite) Frame() *ebiten.Image {
	frames := s.clips[s.active]
	if len(frames) == 0 {
		return nil
	}
	if s.frame >= len(frames) {
		return frames[0]
	}
	return frames[s.frame]
}

// Draw renders the current frame at screen position (x, y) scaled by zoom,
// mirrored horizontally when the last Update requested it.
func (s *AnimSprite) Draw(screen *ebiten.Image, x, y, zoom float64) {
	frame := s.Frame()
	if frame == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if s.flip {
		fw := float64(frame.Bounds().Dx())
		op.GeoM.Scale(-zoom, zoom)
		op.GeoM.Translate(x+fw*zoom, y)
	} else {
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(x, y)
	}
	screen.DrawImage(frame, op)
}
