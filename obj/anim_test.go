package obj

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// frame image pointers are never dereferenced by playback logic, so nil
// placeholders stand in for real frames
func testClips() map[string][]*ebiten.Image {
	return map[string][]*ebiten.Image{
		StateIdle: {nil, nil, nil},
		StateRun:  {nil, nil},
		StateJump: {nil},
	}
}

func TestAnimSpriteAdvance(t *testing.T) {
	s := NewAnimSprite(testClips(), StateIdle, 10)
	s.Update(0.05, false)
	if s.FrameIndex() != 0 {
		t.Errorf("frame = %d before a full frame time, want 0", s.FrameIndex())
	}
	s.Update(0.05, false)
	if s.FrameIndex() != 1 {
		t.Errorf("frame = %d after 0.1s at 10fps, want 1", s.FrameIndex())
	}
	// a large dt steps multiple frames and wraps
	s.Update(0.25, false)
	if s.FrameIndex() != 0 {
		t.Errorf("frame = %d after wrap, want 0", s.FrameIndex())
	}
}

func TestAnimSpriteSetRestartsClip(t *testing.T) {
	s := NewAnimSprite(testClips(), StateIdle, 10)
	s.Update(0.15, false)
	if s.FrameIndex() != 1 {
		t.Fatalf("frame = %d, want 1", s.FrameIndex())
	}

	// re-setting the active clip must not reset playback
	s.Set(StateIdle)
	if s.FrameIndex() != 1 {
		t.Errorf("frame = %d after no-op Set, want 1", s.FrameIndex())
	}

	s.Set(StateRun)
	if s.Active() != StateRun || s.FrameIndex() != 0 {
		t.Errorf("active=%q frame=%d after switch, want run/0", s.Active(), s.FrameIndex())
	}
}

func TestAnimSpriteSingleFrameClip(t *testing.T) {
	s := NewAnimSprite(testClips(), StateJump, 10)
	s.Update(5, false)
	if s.FrameIndex() != 0 {
		t.Errorf("frame = %d, single-frame clip must not advance", s.FrameIndex())
	}
}

func TestAnimSpriteMissingClip(t *testing.T) {
	s := NewAnimSprite(testClips(), "unknown", 10)
	if s.Frame() != nil {
		t.Error("Frame() for a missing clip should be nil")
	}
	s.Update(1, false) // must not panic
}

func TestAnimSpriteDefaultFPS(t *testing.T) {
	s := NewAnimSprite(testClips(), StateIdle, 0)
	s.Update(0.1, false)
	if s.FrameIndex() != 1 {
		t.Errorf("frame = %d with default fps after 0.1s, want 1", s.FrameIndex())
	}
}
