package assetgen

import (
	"image"
	"image/color"
	"math"

	"github.com/bytebuddy/platformer/sheetmeta"
)

// ByteBuddy is a neon-mask robot slime with hover thrusters. Every frame is
// drawn procedurally so the sheet needs no binary assets in the repo.

// Anim pairs an animation name with its frame count. Order matters: it fixes
// the sheet layout and the metadata box ids.
type Anim struct {
	Name   string
	Frames int
}

// CharacterAnims is the fixed animation set of the ByteBuddy sheet.
var CharacterAnims = []Anim{
	{"idle", 4},
	{"run", 6},
	{"jump", 2},
	{"fall", 2},
	{"attack", 4},
	{"hurt", 1},
}

var palette = struct {
	body     color.RGBA
	outline  color.RGBA
	visor    color.RGBA
	accent   color.RGBA
	thruster color.RGBA
	shadow   color.RGBA
	saber    color.RGBA
}{
	body:     color.RGBA{50, 200, 240, 255},
	outline:  color.RGBA{20, 60, 80, 255},
	visor:    color.RGBA{255, 255, 255, 255},
	accent:   color.RGBA{255, 90, 150, 255},
	thruster: color.RGBA{255, 20, 50, 255},
	shadow:   color.RGBA{0, 0, 0, 60},
	saber:    color.RGBA{120, 255, 140, 255},
}

// newCanvas allocates a transparent sheet for cols x rows padded tiles.
func newCanvas(cols, rows, tile, padding int) *image.RGBA {
	w := cols*tile + (cols+1)*padding
	h := rows*tile + (rows+1)*padding
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// drawByteBuddy renders one character frame into box. phase is the 0..1
// position within the animation cycle; action selects pose details.
func drawByteBuddy(img *image.RGBA, box sheetmeta.FrameRect, phase float64, action string) {
	x0, y0 := box.X, box.Y
	x1, y1 := box.X+box.W, box.Y+box.H
	cx := (x0 + x1) / 2

	// hover bob for liveliness
	hover := int(2 * math.Sin(phase*2*math.Pi))
	y0h := y0 + hover
	y1h := y1 + hover

	// body
	bx0, by0 := x0+6, y0h+10
	bx1, by1 := x1-6, y1h-6
	fillRoundedRect(img, bx0, by0, bx1, by1, 14, palette.body, palette.outline, 2)

	// side fins, wiggling while running or attacking
	finY := (by0 + by1) / 2
	wiggle := 0
	if action == "run" || action == "attack" {
		wiggle = int(4 * math.Sin(phase*2*math.Pi))
	}
	fillTriangle(img, bx0-6, finY-6+wiggle, bx0+2, finY, bx0-6, finY+6-wiggle, palette.accent)
	fillTriangle(img, bx1+6, finY-6-wiggle, bx1-2, finY, bx1+6, finY+6+wiggle, palette.accent)

	// visor
	vx0, vy0 := cx-10, y0h+16
	vx1, vy1 := cx+10, y0h+24
	fillRoundedRect(img, vx0, vy0, vx1, vy1, 4, palette.visor, palette.outline, 1)

	if action == "hurt" {
		// X_X eyes
		drawLine(img, vx0+2, vy0+1, vx0+8, vy0+7, 2, palette.outline)
		drawLine(img, vx0+8, vy0+1, vx0+2, vy0+7, 2, palette.outline)
		drawLine(img, vx1-8, vy0+1, vx1-2, vy0+7, 2, palette.outline)
		drawLine(img, vx1-2, vy0+1, vx1-8, vy0+7, 2, palette.outline)
	} else {
		fillRect(img, vx0+3, vy0+3, vx0+6, vy0+6, palette.outline)
		fillRect(img, vx1-6, vy0+3, vx1-3, vy0+6, palette.outline)
	}

	// thruster flames while airborne
	if action == "jump" || action == "fall" {
		flameY := by1 + 1
		extra := 0
		if action == "fall" {
			extra = 2
		}
		for _, dx := range []int{-6, 6} {
			fillTriangle(img,
				cx+dx-3, flameY,
				cx+dx+3, flameY,
				cx+dx, flameY+8+extra,
				palette.thruster)
		}
	}

	// attack swipe
	if action == "attack" {
		drawArc(img, cx-4, y0h+6, cx+30, y0h+30, 300, 30, 3, palette.saber)
	}

	// ground shadow
	fillEllipse(img, cx-10, y1-8, cx+10, y1-4, palette.shadow)
}

// BuildCharacterSheet renders the full ByteBuddy sheet and its metadata.
func BuildCharacterSheet(tile, padding, cols int) (*image.RGBA, *sheetmeta.Meta) {
	total := 0
	for _, a := range CharacterAnims {
		total += a.Frames
	}
	rows := (total + cols - 1) / cols
	sheet := newCanvas(cols, rows, tile, padding)

	builder := sheetmeta.NewBuilder("bytebuddy", tile, padding, cols)
	r, c := 0, 0
	for _, anim := range CharacterAnims {
		rects := make([]sheetmeta.FrameRect, 0, anim.Frames)
		for i := 0; i < anim.Frames; i++ {
			box := builder.GridBox(r, c)
			phase := float64(i) / float64(anim.Frames)
			drawByteBuddy(sheet, box, phase, anim.Name)
			rects = append(rects, box)
			c++
			if c >= cols {
				c = 0
				r++
			}
		}
		builder.AddAnimation(anim.Name, rects)
	}
	size := sheet.Bounds().Size()
	builder.SetImageInfo("", size.X, size.Y)
	return sheet, builder.Build()
}
