package assetgen

import (
	"image"
	"image/color"
	"math"
)

// blendAt draws c over the pixel at (x, y) with straight-alpha src-over
// blending. Out-of-bounds writes are dropped.
func blendAt(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	if c.A == 0xff {
		img.SetRGBA(x, y, c)
		return
	}
	if c.A == 0 {
		return
	}
	dst := img.RGBAAt(x, y)
	a := int(c.A)
	inv := 255 - a
	out := color.RGBA{
		R: uint8((int(c.R)*a + int(dst.R)*inv) / 255),
		G: uint8((int(c.G)*a + int(dst.G)*inv) / 255),
		B: uint8((int(c.B)*a + int(dst.B)*inv) / 255),
		A: uint8(a + int(dst.A)*inv/255),
	}
	img.SetRGBA(x, y, out)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			blendAt(img, x, y, c)
		}
	}
}

func strokeRect(img *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	for i := 0; i < width; i++ {
		fillRect(img, x0+i, y0+i, x1-i, y0+i, c) // top
		fillRect(img, x0+i, y1-i, x1-i, y1-i, c) // bottom
		fillRect(img, x0+i, y0+i, x0+i, y1-i, c) // left
		fillRect(img, x1-i, y0+i, x1-i, y1-i, c) // right
	}
}

// fillEllipse fills the ellipse inscribed in [x0,y0]..[x1,y1].
func fillEllipse(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				blendAt(img, x, y, c)
			}
		}
	}
}

// strokeEllipse draws the ellipse outline with the given stroke width.
func strokeEllipse(img *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	irx := rx - float64(width)
	iry := ry - float64(width)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			outer := (dx/rx)*(dx/rx) + (dy/ry)*(dy/ry)
			if outer > 1.0 {
				continue
			}
			if irx > 0 && iry > 0 {
				inner := (dx/irx)*(dx/irx) + (dy/iry)*(dy/iry)
				if inner <= 1.0 {
					continue
				}
			}
			blendAt(img, x, y, c)
		}
	}
}

// fillRoundedRect fills a rectangle with quarter-circle corners of the given
// radius, optionally stroking the outline.
func fillRoundedRect(img *image.RGBA, x0, y0, x1, y1, radius int, fill color.RGBA, outline color.RGBA, outlineWidth int) {
	if radius*2 > x1-x0 {
		radius = (x1 - x0) / 2
	}
	if radius*2 > y1-y0 {
		radius = (y1 - y0) / 2
	}
	inside := func(x, y int) bool {
		if x < x0 || x > x1 || y < y0 || y > y1 {
			return false
		}
		// corner circle centers
		cx, cy := x, y
		if x < x0+radius {
			cx = x0 + radius
		} else if x > x1-radius {
			cx = x1 - radius
		}
		if y < y0+radius {
			cy = y0 + radius
		} else if y > y1-radius {
			cy = y1 - radius
		}
		dx := x - cx
		dy := y - cy
		return dx*dx+dy*dy <= radius*radius
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(x, y) {
				continue
			}
			onEdge := false
			if outlineWidth > 0 {
				for d := 1; d <= outlineWidth && !onEdge; d++ {
					if !inside(x-d, y) || !inside(x+d, y) || !inside(x, y-d) || !inside(x, y+d) {
						onEdge = true
					}
				}
			}
			if onEdge {
				blendAt(img, x, y, outline)
			} else {
				blendAt(img, x, y, fill)
			}
		}
	}
}

// fillTriangle fills the triangle (ax,ay)-(bx,by)-(cx,cy) with edge-function
// point-in-triangle tests over the bounding box.
func fillTriangle(img *image.RGBA, ax, ay, bx, by, cx, cy int, c color.RGBA) {
	minX := min3(ax, bx, cx)
	maxX := max3(ax, bx, cx)
	minY := min3(ay, by, cy)
	maxY := max3(ay, by, cy)
	edge := func(x0, y0, x1, y1, px, py int) int {
		return (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d0 := edge(ax, ay, bx, by, x, y)
			d1 := edge(bx, by, cx, cy, x, y)
			d2 := edge(cx, cy, ax, ay, x, y)
			neg := d0 < 0 || d1 < 0 || d2 < 0
			pos := d0 > 0 || d1 > 0 || d2 > 0
			if !(neg && pos) {
				blendAt(img, x, y, c)
			}
		}
	}
}

// drawLine draws a 1px Bresenham line, widened to width by stamping a small
// square at each step.
func drawLine(img *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	errTerm := dx + dy
	half := width / 2
	for {
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				blendAt(img, x0+ox, y0+oy, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			x0 += sx
		}
		if e2 <= dx {
			errTerm += dx
			y0 += sy
		}
	}
}

// drawArc approximates an elliptical arc inscribed in [x0,y0]..[x1,y1] from
// startDeg to endDeg (degrees, clockwise, wrapping allowed) as a polyline.
func drawArc(img *image.RGBA, x0, y0, x1, y1 int, startDeg, endDeg float64, width int, c color.RGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if endDeg < startDeg {
		endDeg += 360
	}
	steps := int(endDeg-startDeg) + 1
	if steps < 2 {
		steps = 2
	}
	prevX, prevY := 0, 0
	for i := 0; i < steps; i++ {
		deg := startDeg + (endDeg-startDeg)*float64(i)/float64(steps-1)
		rad := deg * math.Pi / 180
		px := int(cx + rx*math.Cos(rad))
		py := int(cy + ry*math.Sin(rad))
		if i > 0 {
			drawLine(img, prevX, prevY, px, py, width, c)
		}
		prevX, prevY = px, py
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
