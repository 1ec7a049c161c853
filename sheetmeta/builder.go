package sheetmeta

// Builder constructs Meta values programmatically, assigning ids and frame
// numbers as boxes are added. The asset generator lays frames out on a padded
// grid, so the builder also knows how to compute grid cell rects.
type Builder struct {
	DefaultEntity string
	Tile          int
	Padding       int
	Cols          int

	boxes       []Box
	frameCounts map[entityAnim]int
	nextID      int
	imagePath   string
	imageSize   *Size
}

type entityAnim struct {
	entity, animation string
}

// NewBuilder creates a Builder for sheets laid out on a tile+padding grid.
func NewBuilder(defaultEntity string, tile, padding, cols int) *Builder {
	return &Builder{
		DefaultEntity: defaultEntity,
		Tile:          tile,
		Padding:       padding,
		Cols:          cols,
		frameCounts:   make(map[entityAnim]int),
	}
}

// SetImageInfo records the source image path and/or size for the output Meta.
func (b *Builder) SetImageInfo(path string, w, h int) {
	if path != "" {
		b.imagePath = path
	}
	if w > 0 && h > 0 {
		b.imageSize = &Size{W: w, H: h}
	}
}

// GridBox returns the pixel rect of the cell at (row, col) on the padded grid.
func (b *Builder) GridBox(row, col int) FrameRect {
	x := b.Padding + col*(b.Tile+b.Padding)
	y := b.Padding + row*(b.Tile+b.Padding)
	return FrameRect{X: x, Y: y, W: b.Tile, H: b.Tile}
}

// AddBox appends one annotated box. An empty entity uses the default entity;
// the frame number continues from the previous box of the same animation.
func (b *Builder) AddBox(rect FrameRect, animation, entity string) Box {
	if entity == "" {
		entity = b.DefaultEntity
	}
	key := entityAnim{entity, animation}
	frame := b.frameCounts[key]
	b.frameCounts[key] = frame + 1
	box := Box{
		ID:            b.nextID,
		Rect:          rect,
		EntityName:    entity,
		AnimationName: animation,
		FrameNumber:   frame,
	}
	b.nextID++
	b.boxes = append(b.boxes, box)
	return box
}

// AddAnimation appends a sequence of boxes for one animation of the default
// entity, numbering frames in order.
func (b *Builder) AddAnimation(name string, rects []FrameRect) {
	for _, r := range rects {
		b.AddBox(r, name, "")
	}
}

// Build returns the accumulated metadata.
func (b *Builder) Build() *Meta {
	boxes := make([]Box, len(b.boxes))
	copy(boxes, b.boxes)
	return &Meta{ImagePath: b.imagePath, ImageSize: b.imageSize, Boxes: boxes}
}
