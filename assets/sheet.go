// Package assets loads sprite sheets and their box metadata and slices them
// into animation clips. Nothing is embedded: sheets are generated by the
// assetgen tool (or in memory as a fallback) and addressed through paths in
// the config.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bytebuddy/platformer/assetgen"
	"github.com/bytebuddy/platformer/sheetmeta"
)

// SpriteSheet pairs a sheet image with the metadata describing its frames.
type SpriteSheet struct {
	Image *ebiten.Image
	Meta  *sheetmeta.Meta
}

// Load reads a sheet image and its metadata file from disk.
func Load(sheetPath, metaPath string) (*SpriteSheet, error) {
	meta, err := sheetmeta.Load(metaPath)
	if err != nil {
		return nil, fmt.Errorf("load sheet metadata: %w", err)
	}
	f, err := os.Open(sheetPath)
	if err != nil {
		return nil, fmt.Errorf("open sheet image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sheet image %s: %w", sheetPath, err)
	}
	return &SpriteSheet{Image: ebiten.NewImageFromImage(img), Meta: meta}, nil
}

// Generated builds the character sheet in memory, without touching disk.
// Used as the fallback when no generated assets exist yet.
func Generated() *SpriteSheet {
	img, meta := assetgen.BuildCharacterSheet(
		assetgen.DefaultTile, assetgen.DefaultPadding, assetgen.DefaultCols)
	return &SpriteSheet{Image: ebiten.NewImageFromImage(img), Meta: meta}
}

// LoadOrGenerate tries Load and falls back to an in-memory generated sheet.
// The returned error is the load failure, nil when the files were used; the
// sheet itself is always usable.
func LoadOrGenerate(sheetPath, metaPath string) (*SpriteSheet, error) {
	s, err := Load(sheetPath, metaPath)
	if err != nil {
		return Generated(), err
	}
	return s, nil
}

// AnimFrames returns the ordered frames of one animation as subimages of the
// sheet. An empty entity selects the metadata's default entity.
func (s *SpriteSheet) AnimFrames(animation, entity string) ([]*ebiten.Image, error) {
	boxes, err := s.Meta.AnimationBoxes(animation, entity)
	if err != nil {
		return nil, err
	}
	frames := make([]*ebiten.Image, len(boxes))
	for i, b := range boxes {
		frames[i] = s.Image.SubImage(b.Rect.ToImageRect()).(*ebiten.Image)
	}
	return frames, nil
}

// Clips builds a clip map for the named animations. Animations the metadata
// does not know get a single loud placeholder frame so the gap is visible in
// game instead of crashing it.
func (s *SpriteSheet) Clips(entity string, names ...string) map[string][]*ebiten.Image {
	clips := make(map[string][]*ebiten.Image, len(names))
	var placeholder *ebiten.Image
	for _, name := range names {
		frames, err := s.AnimFrames(name, entity)
		if err != nil {
			if placeholder == nil {
				placeholder = placeholderFrame(s.frameSize())
			}
			clips[name] = []*ebiten.Image{placeholder}
			continue
		}
		clips[name] = frames
	}
	return clips
}

func (s *SpriteSheet) frameSize() (int, int) {
	if len(s.Meta.Boxes) > 0 {
		r := s.Meta.FrameRectAt(0)
		return r.W, r.H
	}
	return 48, 48
}

func placeholderFrame(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{R: 255, A: 255, B: 255}) // magenta
	return img
}

// LoadTileset reads a tileset image from disk.
func LoadTileset(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tileset: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// TileAt returns one tile of a padded tileset grid as a subimage.
func TileAt(tileset *ebiten.Image, tile, padding, row, col int) *ebiten.Image {
	x := padding + col*(tile+padding)
	y := padding + row*(tile+padding)
	return tileset.SubImage(image.Rect(x, y, x+tile, y+tile)).(*ebiten.Image)
}
