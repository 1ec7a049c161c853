// Package sheetmeta describes spritesheet metadata as a single flat list of
// annotated boxes. Each box records a pixel rectangle plus the entity,
// animation, and frame number it belongs to. The JSON payload is intended to
// stay readable and hand-editable:
//
//	{
//	  "image_path": "spritesheet.png",
//	  "image_size": {"w": 1024, "h": 1536},
//	  "boxes": [
//	    {"id": 0, "rect": {"x": 2, "y": 2, "w": 48, "h": 48},
//	     "entity_name": "bytebuddy", "animation_name": "idle", "frame_number": 0}
//	  ]
//	}
//
// Only the boxes list is required; image_path and image_size are carried
// through when present so tools can reference the source image.
package sheetmeta

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"sort"
)

// FrameRect is the pixel bounds of one frame inside the sheet.
type FrameRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// ToImageRect converts to a stdlib image.Rectangle.
func (r FrameRect) ToImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Scaled returns the rect with every coordinate multiplied by scale.
func (r FrameRect) Scaled(scale int) FrameRect {
	if scale == 1 {
		return r
	}
	return FrameRect{X: r.X * scale, Y: r.Y * scale, W: r.W * scale, H: r.H * scale}
}

// Box is a cropped region paired with entity/animation metadata.
type Box struct {
	ID            int       `json:"id"`
	Rect          FrameRect `json:"rect"`
	EntityName    string    `json:"entity_name"`
	AnimationName string    `json:"animation_name"`
	FrameNumber   int       `json:"frame_number"`
}

// Size is the pixel size of the source image.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Meta is the structured view of the metadata JSON.
type Meta struct {
	ImagePath string `json:"image_path,omitempty"`
	ImageSize *Size  `json:"image_size,omitempty"`
	Boxes     []Box  `json:"boxes"`
}

// Load reads metadata JSON from path.
func Load(path string) (*Meta, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet meta %s: %w", path, err)
	}
	var m Meta
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse sheet meta %s: %w", path, err)
	}
	return &m, nil
}

// Save writes the metadata as indented JSON to path.
func (m *Meta) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// FrameRectAt returns the pixel rect of the box at index.
func (m *Meta) FrameRectAt(index int) FrameRect {
	return m.Boxes[index].Rect
}

// DefaultEntity returns the entity name of the first box.
func (m *Meta) DefaultEntity() (string, error) {
	if len(m.Boxes) == 0 {
		return "", fmt.Errorf("no boxes recorded in metadata")
	}
	return m.Boxes[0].EntityName, nil
}

// EntityNames returns the sorted set of entity names present in the metadata.
func (m *Meta) EntityNames() []string {
	seen := make(map[string]struct{})
	for _, b := range m.Boxes {
		seen[b.EntityName] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Animations groups the boxes of one entity by animation name, each group
// sorted by frame number (then id for stability). An empty entity selects the
// default entity.
func (m *Meta) Animations(entity string) map[string][]Box {
	if entity == "" {
		entity, _ = m.DefaultEntity()
	}
	result := make(map[string][]Box)
	for _, b := range m.Boxes {
		if b.EntityName != entity {
			continue
		}
		result[b.AnimationName] = append(result[b.AnimationName], b)
	}
	for name := range result {
		sortBoxes(result[name])
	}
	return result
}

// AnimationBoxes returns the ordered boxes for one animation of one entity.
// An empty entity selects the default entity.
func (m *Meta) AnimationBoxes(animation, entity string) ([]Box, error) {
	if entity == "" {
		var err error
		entity, err = m.DefaultEntity()
		if err != nil {
			return nil, err
		}
	}
	var matches []Box
	for _, b := range m.Boxes {
		if b.EntityName == entity && b.AnimationName == animation {
			matches = append(matches, b)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no boxes recorded for entity=%q animation=%q", entity, animation)
	}
	sortBoxes(matches)
	return matches, nil
}

// Scaled returns a copy with every rect and the image size multiplied by
// scale. Scale 1 still returns a deep copy.
func (m *Meta) Scaled(scale int) *Meta {
	out := &Meta{ImagePath: m.ImagePath}
	if m.ImageSize != nil {
		out.ImageSize = &Size{W: m.ImageSize.W * scale, H: m.ImageSize.H * scale}
	}
	out.Boxes = make([]Box, len(m.Boxes))
	for i, b := range m.Boxes {
		b.Rect = b.Rect.Scaled(scale)
		out.Boxes[i] = b
	}
	return out
}

func sortBoxes(boxes []Box) {
	sort.SliceStable(boxes, func(i, j int) bool {
		if boxes[i].FrameNumber != boxes[j].FrameNumber {
			return boxes[i].FrameNumber < boxes[j].FrameNumber
		}
		return boxes[i].ID < boxes[j].ID
	})
}
