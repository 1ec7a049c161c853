// Package assetgen procedurally renders the ByteBuddy spritesheet and
// tileset along with their box metadata. The game uses it as a fallback when
// no sheet exists on disk; cmd/assetgen writes the files out.
package assetgen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Defaults for the generated sheet grid.
const (
	DefaultTile    = 48
	DefaultPadding = 2
	DefaultCols    = 8
)

// Result records where Generate wrote its outputs.
type Result struct {
	SheetPath string `json:"sheet_path"`
	MetaPath  string `json:"meta_path"`
	TilesPath string `json:"tiles_path"`
	SheetW    int    `json:"sheet_w"`
	SheetH    int    `json:"sheet_h"`
	TilesW    int    `json:"tiles_w"`
	TilesH    int    `json:"tiles_h"`
	BoxCount  int    `json:"box_count"`
}

// Scale returns a nearest-neighbor upscale of img by the integer factor.
// Factor 1 returns the input unchanged.
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < out.Bounds().Dy(); y++ {
		for x := 0; x < out.Bounds().Dx(); x++ {
			out.SetRGBA(x, y, img.RGBAAt(b.Min.X+x/factor, b.Min.Y+y/factor))
		}
	}
	return out
}

// Generate renders the character sheet, tileset, and metadata, scales them by
// the integer factor, and writes all three files into outDir.
func Generate(outDir string, scale int) (*Result, error) {
	if scale < 1 {
		scale = 1
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	sheet, meta := BuildCharacterSheet(DefaultTile, DefaultPadding, DefaultCols)
	tiles := BuildTileset(DefaultTile, DefaultPadding)

	sheet = Scale(sheet, scale)
	tiles = Scale(tiles, scale)
	meta = meta.Scaled(scale)

	sheetPath := filepath.Join(outDir, "bytebuddy_spritesheet.png")
	metaPath := filepath.Join(outDir, "bytebuddy_meta.json")
	tilesPath := filepath.Join(outDir, "bytebuddy_tileset.png")

	if err := writePNG(sheetPath, sheet); err != nil {
		return nil, err
	}
	if err := writePNG(tilesPath, tiles); err != nil {
		return nil, err
	}
	meta.ImagePath = filepath.Base(sheetPath)
	if err := meta.Save(metaPath); err != nil {
		return nil, fmt.Errorf("write metadata: %w", err)
	}

	return &Result{
		SheetPath: sheetPath,
		MetaPath:  metaPath,
		TilesPath: tilesPath,
		SheetW:    sheet.Bounds().Dx(),
		SheetH:    sheet.Bounds().Dy(),
		TilesW:    tiles.Bounds().Dx(),
		TilesH:    tiles.Bounds().Dy(),
		BoxCount:  len(meta.Boxes),
	}, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
