package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bytebuddy/platformer/common"
)

// DefaultTilemap is the demo level. 'X' marks a solid tile; anything else is
// empty. The level is wider than the screen so the camera has room to scroll.
var DefaultTilemap = []string{
	"...............................................X",
	"...............................................X",
	"...............................................X",
	"...............................................X",
	"....................XXX........................X",
	"............................XX.................X",
	"..............XXX..............................X",
	"...............................................X",
	"......................XXXX.....................X",
	"............................x..................X",
	"XXXX..........................X................X",
	"....XXXX.........................XXX...........X",
	".................XXX...........................X",
	".....................................X.........X",
	"XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX",
}

// Level is the immutable tile grid: the ordered solids list used for
// collision and the level's pixel dimensions.
type Level struct {
	Solids   []common.Rect
	TileSize int
	// level size in pixels
	Width  int
	Height int

	tileImg *ebiten.Image
}

// ParseTilemap builds a Level from rows of characters. Solids are appended in
// row-major order, which is also the collision resolution order.
func ParseTilemap(rows []string, tileSize int) *Level {
	l := &Level{TileSize: tileSize}
	for rowIdx, row := range rows {
		for colIdx, ch := range row {
			if ch != 'X' {
				continue
			}
			l.Solids = append(l.Solids, common.Rect{
				X:      colIdx * tileSize,
				Y:      rowIdx * tileSize,
				Width:  tileSize,
				Height: tileSize,
			})
		}
	}
	if len(rows) > 0 {
		l.Width = len(rows[0]) * tileSize
		l.Height = len(rows) * tileSize
	}
	return l
}

// SetTileImage replaces the flat-color tile with a tileset tile (e.g. the
// generated grass tile). The image is scaled to the tile size when drawn.
func (l *Level) SetTileImage(img *ebiten.Image) {
	l.tileImg = img
}

// Draw renders every solid translated by the view top-left and scaled by
// zoom.
func (l *Level) Draw(screen *ebiten.Image, viewX, viewY, zoom float64) {
	if l.tileImg == nil {
		l.tileImg = ebiten.NewImage(l.TileSize, l.TileSize)
		l.tileImg.Fill(color.RGBA{R: 80, G: 180, B: 120, A: 255})
	}
	sw := float64(l.TileSize) / float64(l.tileImg.Bounds().Dx())
	sh := float64(l.TileSize) / float64(l.tileImg.Bounds().Dy())
	for _, s := range l.Solids {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(sw*zoom, sh*zoom)
		op.GeoM.Translate((float64(s.X)-viewX)*zoom, (float64(s.Y)-viewY)*zoom)
		screen.DrawImage(l.tileImg, op)
	}
}
