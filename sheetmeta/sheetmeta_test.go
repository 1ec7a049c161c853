package sheetmeta

import (
	"path/filepath"
	"testing"
)

func sampleMeta() *Meta {
	b := NewBuilder("bytebuddy", 48, 2, 8)
	b.AddAnimation("idle", []FrameRect{b.GridBox(0, 0), b.GridBox(0, 1)})
	b.AddAnimation("run", []FrameRect{b.GridBox(0, 2), b.GridBox(0, 3), b.GridBox(0, 4)})
	b.AddBox(b.GridBox(1, 0), "idle", "ghost")
	b.SetImageInfo("sheet.png", 402, 102)
	return b.Build()
}

func TestBuilderGridBox(t *testing.T) {
	b := NewBuilder("bytebuddy", 48, 2, 8)
	cases := []struct {
		row, col int
		wantX    int
		wantY    int
	}{
		{0, 0, 2, 2},
		{0, 1, 52, 2},
		{1, 0, 2, 52},
		{2, 3, 152, 102},
	}
	for _, c := range cases {
		r := b.GridBox(c.row, c.col)
		if r.X != c.wantX || r.Y != c.wantY || r.W != 48 || r.H != 48 {
			t.Errorf("GridBox(%d,%d) = %+v, want x=%d y=%d w=48 h=48",
				c.row, c.col, r, c.wantX, c.wantY)
		}
	}
}

func TestBuilderFrameNumbering(t *testing.T) {
	m := sampleMeta()
	boxes, err := m.AnimationBoxes("run", "bytebuddy")
	if err != nil {
		t.Fatal(err)
	}
	if len(boxes) != 3 {
		t.Fatalf("run has %d boxes, want 3", len(boxes))
	}
	for i, b := range boxes {
		if b.FrameNumber != i {
			t.Errorf("box %d has frame_number %d", i, b.FrameNumber)
		}
	}
	// ids are globally unique and increasing
	for i := 1; i < len(m.Boxes); i++ {
		if m.Boxes[i].ID <= m.Boxes[i-1].ID {
			t.Errorf("ids not increasing: %d then %d", m.Boxes[i-1].ID, m.Boxes[i].ID)
		}
	}
}

func TestDefaultEntity(t *testing.T) {
	m := sampleMeta()
	entity, err := m.DefaultEntity()
	if err != nil {
		t.Fatal(err)
	}
	if entity != "bytebuddy" {
		t.Errorf("DefaultEntity = %q, want bytebuddy", entity)
	}

	empty := &Meta{}
	if _, err := empty.DefaultEntity(); err == nil {
		t.Error("expected error for empty metadata")
	}
}

func TestEntityNames(t *testing.T) {
	m := sampleMeta()
	names := m.EntityNames()
	if len(names) != 2 || names[0] != "bytebuddy" || names[1] != "ghost" {
		t.Errorf("EntityNames = %v", names)
	}
}

func TestAnimationBoxesFiltersEntity(t *testing.T) {
	m := sampleMeta()
	boxes, err := m.AnimationBoxes("idle", "")
	if err != nil {
		t.Fatal(err)
	}
	// default entity is bytebuddy, so the ghost idle box is excluded
	if len(boxes) != 2 {
		t.Fatalf("idle has %d boxes, want 2", len(boxes))
	}
	for _, b := range boxes {
		if b.EntityName != "bytebuddy" {
			t.Errorf("box belongs to %q", b.EntityName)
		}
	}

	if _, err := m.AnimationBoxes("swim", ""); err == nil {
		t.Error("expected error for unknown animation")
	}
}

func TestAnimationBoxOrdering(t *testing.T) {
	// boxes deliberately out of order in the list
	m := &Meta{Boxes: []Box{
		{ID: 5, Rect: FrameRect{X: 2}, EntityName: "e", AnimationName: "walk", FrameNumber: 2},
		{ID: 3, Rect: FrameRect{X: 0}, EntityName: "e", AnimationName: "walk", FrameNumber: 0},
		{ID: 4, Rect: FrameRect{X: 1}, EntityName: "e", AnimationName: "walk", FrameNumber: 1},
	}}
	boxes, err := m.AnimationBoxes("walk", "e")
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range boxes {
		if b.FrameNumber != i {
			t.Errorf("position %d has frame_number %d", i, b.FrameNumber)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := sampleMeta()
	path := filepath.Join(t.TempDir(), "meta.json")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Boxes) != len(m.Boxes) {
		t.Fatalf("loaded %d boxes, want %d", len(loaded.Boxes), len(m.Boxes))
	}
	if loaded.ImagePath != "sheet.png" {
		t.Errorf("ImagePath = %q", loaded.ImagePath)
	}
	if loaded.ImageSize == nil || loaded.ImageSize.W != 402 || loaded.ImageSize.H != 102 {
		t.Errorf("ImageSize = %+v", loaded.ImageSize)
	}
	if loaded.Boxes[0] != m.Boxes[0] {
		t.Errorf("first box %+v != %+v", loaded.Boxes[0], m.Boxes[0])
	}
}

func TestScaled(t *testing.T) {
	m := sampleMeta()
	s := m.Scaled(2)
	if s.Boxes[0].Rect.X != m.Boxes[0].Rect.X*2 || s.Boxes[0].Rect.W != 96 {
		t.Errorf("scaled rect = %+v", s.Boxes[0].Rect)
	}
	if s.ImageSize.W != 804 || s.ImageSize.H != 204 {
		t.Errorf("scaled size = %+v", s.ImageSize)
	}
	// scale 1 must deep-copy
	c := m.Scaled(1)
	c.Boxes[0].Rect.X = 999
	if m.Boxes[0].Rect.X == 999 {
		t.Error("Scaled(1) shares box storage with the original")
	}
}
