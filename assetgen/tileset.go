package assetgen

import (
	"image"
	"image/color"
)

// BuildTileset renders the terrain/collectible tileset: row 0 holds terrain
// (grass, dirt, stone, metal platform, spikes), row 1 holds collectibles
// (coin, gem, heart, key) and four flat debug squares.
func BuildTileset(tile, padding int) *image.RGBA {
	const tilesAcross = 8
	const rows = 2
	img := newCanvas(tilesAcross, rows, tile, padding)

	tileBox := func(r, c int) (x0, y0, x1, y1 int) {
		x0 = padding + c*(tile+padding)
		y0 = padding + r*(tile+padding)
		return x0, y0, x0 + tile, y0 + tile
	}

	// grass
	x0, y0, x1, y1 := tileBox(0, 0)
	fillRect(img, x0, y0+10, x1, y1, color.RGBA{120, 80, 40, 255})
	fillRect(img, x0, y0+4, x1, y0+14, color.RGBA{90, 200, 90, 255})

	// dirt
	x0, y0, x1, y1 = tileBox(0, 1)
	fillRect(img, x0, y0, x1, y1, color.RGBA{140, 100, 60, 255})

	// stone
	x0, y0, x1, y1 = tileBox(0, 2)
	fillRect(img, x0, y0, x1, y1, color.RGBA{110, 120, 130, 255})

	// metal platform
	x0, y0, x1, y1 = tileBox(0, 3)
	fillRect(img, x0, y0+6, x1, y1-6, color.RGBA{60, 80, 110, 255})
	strokeRect(img, x0, y0+6, x1, y1-6, 2, color.RGBA{20, 30, 50, 255})

	// spikes
	x0, y0, x1, y1 = tileBox(0, 4)
	for i := 0; i < tile; i += 12 {
		fillTriangle(img, x0+i, y1, x0+i+6, y0+10, x0+i+12, y1, color.RGBA{230, 230, 240, 255})
	}

	// coin
	x0, y0, x1, y1 = tileBox(1, 0)
	fillEllipse(img, x0+8, y0+8, x1-8, y1-8, color.RGBA{255, 220, 80, 255})
	strokeEllipse(img, x0+8, y0+8, x1-8, y1-8, 2, color.RGBA{160, 130, 40, 255})

	// gem
	x0, y0, x1, y1 = tileBox(1, 1)
	mid := tile / 2
	fillTriangle(img, x0+mid, y0+6, x1-8, y0+mid, x0+mid, y1-6, color.RGBA{120, 230, 255, 255})
	fillTriangle(img, x0+mid, y0+6, x0+8, y0+mid, x0+mid, y1-6, color.RGBA{120, 230, 255, 255})

	// heart
	x0, y0, x1, y1 = tileBox(1, 2)
	heart := color.RGBA{255, 90, 120, 255}
	fillEllipse(img, x0+8, y0+10, x0+mid+2, y0+26, heart)
	fillEllipse(img, x0+mid-2, y0+10, x1-8, y0+26, heart)
	fillTriangle(img, x0+9, y0+20, x1-9, y0+20, x0+mid, y1-8, heart)

	// key
	x0, y0, x1, y1 = tileBox(1, 3)
	gold := color.RGBA{200, 180, 80, 255}
	strokeEllipse(img, x0+8, y0+8, x0+24, y0+24, 3, gold)
	fillRect(img, x0+24, y0+16, x1-8, y0+20, gold)

	// debug colored squares
	debugColors := []color.RGBA{
		{80, 160, 255, 255},
		{120, 220, 120, 255},
		{230, 120, 120, 255},
		{200, 200, 80, 255},
	}
	for i, col := range debugColors {
		x0, y0, x1, y1 = tileBox(1, 4+i)
		fillRect(img, x0, y0, x1, y1, col)
	}

	return img
}
