package obj

import (
	"testing"

	"github.com/bytebuddy/platformer/common"
)

func TestParseTilemapDefault(t *testing.T) {
	l := ParseTilemap(DefaultTilemap, 48)
	if got := len(l.Solids); got != 90 {
		t.Errorf("solid count = %d, want 90", got)
	}
	if l.Width != 2304 || l.Height != 720 {
		t.Errorf("level size = %dx%d, want 2304x720", l.Width, l.Height)
	}
}

func TestParseTilemapOnlyUppercaseSolid(t *testing.T) {
	l := ParseTilemap([]string{"x.X"}, 48)
	if len(l.Solids) != 1 {
		t.Fatalf("solid count = %d, want 1 (lowercase x is decoration)", len(l.Solids))
	}
	want := common.Rect{X: 96, Y: 0, Width: 48, Height: 48}
	if l.Solids[0] != want {
		t.Errorf("solid = %+v, want %+v", l.Solids[0], want)
	}
}

func TestParseTilemapRowMajorOrder(t *testing.T) {
	l := ParseTilemap([]string{
		".X",
		"X.",
	}, 10)
	if len(l.Solids) != 2 {
		t.Fatalf("solid count = %d, want 2", len(l.Solids))
	}
	if l.Solids[0].Y != 0 || l.Solids[1].Y != 10 {
		t.Errorf("solids not in row-major order: %+v", l.Solids)
	}
}

func TestParseTilemapEmpty(t *testing.T) {
	l := ParseTilemap(nil, 48)
	if len(l.Solids) != 0 || l.Width != 0 || l.Height != 0 {
		t.Errorf("empty map produced %+v", l)
	}
}
