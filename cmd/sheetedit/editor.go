package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/bytebuddy/platformer/sheetmeta"
)

const (
	screenWidth  = 1280
	screenHeight = 800
)

// Editor is the sheet metadata editor: a pan/zoom canvas over the sheet image
// with draggable frame boxes and a properties panel for the selected box.
type Editor struct {
	ui    *ebitenui.UI
	panel *Panel

	sheetPath string
	metaPath  string

	sheet *ebiten.Image
	meta  *sheetmeta.Meta

	selected int // index into meta.Boxes, -1 when nothing is selected
	dirty    bool

	canvas *Canvas

	watcher *sheetWatcher
	store   *store

	clipboardOK bool

	status      string
	statusUntil time.Time
}

func NewEditor(sheetPath, metaPath string, clipboardOK bool) (*Editor, error) {
	e := &Editor{
		sheetPath:   sheetPath,
		metaPath:    metaPath,
		selected:    -1,
		canvas:      NewCanvas(),
		store:       openStore(),
		clipboardOK: clipboardOK,
	}

	if err := e.loadMeta(); err != nil {
		return nil, err
	}
	if err := e.loadSheet(); err != nil {
		return nil, err
	}

	e.ui, e.panel = BuildEditorUI(
		e.onFieldChanged,
		func() { e.save() },
		func() { e.newBoxAtCenter() },
		func() { e.duplicateSelected() },
		func() { e.deleteSelected() },
		func() {
			if err := e.loadSheet(); err != nil {
				e.setStatus(fmt.Sprintf("reload: %v", err))
			} else {
				e.setStatus("sheet reloaded")
			}
		},
	)

	if w, err := watchSheet(sheetPath); err != nil {
		e.setStatus(fmt.Sprintf("watch: %v", err))
	} else {
		e.watcher = w
	}

	e.store.rememberPaths(sheetPath, metaPath)
	return e, nil
}

func (e *Editor) setStatus(msg string) {
	e.status = msg
	e.statusUntil = time.Now().Add(3 * time.Second)
}

func (e *Editor) selectedBox() *sheetmeta.Box {
	if e.selected < 0 || e.selected >= len(e.meta.Boxes) {
		return nil
	}
	return &e.meta.Boxes[e.selected]
}

func (e *Editor) selectBox(i int) {
	e.selected = i
	b := e.selectedBox()
	if b == nil {
		e.panel.SetFields("", "", "")
		return
	}
	e.panel.SetFields(b.EntityName, b.AnimationName, strconv.Itoa(b.FrameNumber))
}

// onFieldChanged applies a properties-panel edit to the selected box.
func (e *Editor) onFieldChanged(field, value string) {
	b := e.selectedBox()
	if b == nil {
		return
	}
	switch field {
	case "entity":
		b.EntityName = value
	case "animation":
		b.AnimationName = value
	case "frame":
		n, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		b.FrameNumber = n
	}
	e.dirty = true
}

func (e *Editor) nextBoxID() int {
	max := -1
	for _, b := range e.meta.Boxes {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

func (e *Editor) addBox(rect sheetmeta.FrameRect, entity, anim string, frame int) {
	e.meta.Boxes = append(e.meta.Boxes, sheetmeta.Box{
		ID:            e.nextBoxID(),
		Rect:          rect,
		EntityName:    entity,
		AnimationName: anim,
		FrameNumber:   frame,
	})
	e.selectBox(len(e.meta.Boxes) - 1)
	e.dirty = true
}

func (e *Editor) newBoxAtCenter() {
	cx, cy := e.canvas.ToSheet((screenWidth-rightPanelWidth)/2, screenHeight/2)
	entity, anim := "entity", "idle"
	if b := e.selectedBox(); b != nil {
		entity, anim = b.EntityName, b.AnimationName
	}
	e.addBox(sheetmeta.FrameRect{X: cx, Y: cy, W: 48, H: 48}, entity, anim, 0)
	e.setStatus("box added")
}

func (e *Editor) duplicateSelected() {
	b := e.selectedBox()
	if b == nil {
		return
	}
	r := b.Rect
	r.X += 4
	r.Y += 4
	e.addBox(r, b.EntityName, b.AnimationName, b.FrameNumber+1)
	e.setStatus("box duplicated")
}

func (e *Editor) deleteSelected() {
	if e.selected < 0 || e.selected >= len(e.meta.Boxes) {
		return
	}
	e.meta.Boxes = append(e.meta.Boxes[:e.selected], e.meta.Boxes[e.selected+1:]...)
	e.selectBox(-1)
	e.dirty = true
	e.setStatus("box deleted")
}

func (e *Editor) save() {
	if e.sheet != nil {
		e.meta.ImageSize = &sheetmeta.Size{
			W: e.sheet.Bounds().Dx(),
			H: e.sheet.Bounds().Dy(),
		}
	}
	if err := e.saveMeta(); err != nil {
		e.setStatus(fmt.Sprintf("save: %v", err))
		return
	}
	e.dirty = false
	e.setStatus("saved " + e.metaPath)
}

func (e *Editor) Update() error {
	e.ui.Update()

	// hot-reload the sheet image when assetgen rewrites it
	if e.watcher != nil {
		select {
		case <-e.watcher.Events:
			if err := e.loadSheet(); err != nil {
				e.setStatus(fmt.Sprintf("reload: %v", err))
			} else {
				e.setStatus("sheet changed on disk, reloaded")
			}
		default:
		}
	}

	mx, my := ebiten.CursorPosition()
	overCanvas := mx < screenWidth-rightPanelWidth

	e.canvas.HandlePanZoom(mx, my, overCanvas)
	e.handleMouse(mx, my, overCanvas)

	// suppress hotkeys while the user is typing in a panel field
	typing := false
	if fw := e.ui.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			typing = true
		}
	}
	if !typing {
		e.handleKeys()
	}

	return nil
}

func (e *Editor) handleMouse(mx, my int, overCanvas bool) {
	if mousePressEdge() && overCanvas {
		sx, sy := e.canvas.ToSheet(mx, my)
		if b := e.selectedBox(); b != nil && e.canvas.overResizeHandle(*b, mx, my) {
			e.canvas.mode = dragResize
		} else if i := HitBox(e.meta.Boxes, sx, sy); i >= 0 {
			e.selectBox(i)
			b := e.selectedBox()
			e.canvas.mode = dragMove
			e.canvas.grabDX = sx - b.Rect.X
			e.canvas.grabDY = sy - b.Rect.Y
		} else {
			e.selectBox(-1)
			e.canvas.mode = dragCreate
			e.canvas.createX = sx
			e.canvas.createY = sy
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		sx, sy := e.canvas.ToSheet(mx, my)
		switch e.canvas.mode {
		case dragMove:
			if b := e.selectedBox(); b != nil {
				nx, ny := sx-e.canvas.grabDX, sy-e.canvas.grabDY
				if nx != b.Rect.X || ny != b.Rect.Y {
					b.Rect.X, b.Rect.Y = nx, ny
					e.dirty = true
				}
			}
		case dragResize:
			if b := e.selectedBox(); b != nil {
				w, h := sx-b.Rect.X, sy-b.Rect.Y
				if w < 1 {
					w = 1
				}
				if h < 1 {
					h = 1
				}
				if w != b.Rect.W || h != b.Rect.H {
					b.Rect.W, b.Rect.H = w, h
					e.dirty = true
				}
			}
		}
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && e.canvas.mode == dragCreate {
		sx, sy := e.canvas.ToSheet(mx, my)
		x0, y0, x1, y1 := normRect(e.canvas.createX, e.canvas.createY, sx, sy)
		if x1-x0 >= 4 && y1-y0 >= 4 {
			entity, anim := "entity", "idle"
			e.addBox(sheetmeta.FrameRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, entity, anim, 0)
			e.setStatus("box added")
		}
	}
	e.canvas.mode = dragNone
}

func (e *Editor) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyD):
		e.duplicateSelected()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.copySelected()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		e.pasteBox()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		e.newBoxAtCenter()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		e.deleteSelected()
	}

	// arrow nudges; shift resizes instead of moving
	b := e.selectedBox()
	if b == nil {
		return
	}
	dx, dy := 0, 0
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		dx = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		dx = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		dy = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		dy = 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		b.Rect.W += dx
		b.Rect.H += dy
		if b.Rect.W < 1 {
			b.Rect.W = 1
		}
		if b.Rect.H < 1 {
			b.Rect.H = 1
		}
	} else {
		b.Rect.X += dx
		b.Rect.Y += dy
	}
	e.dirty = true
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	e.canvas.Draw(screen, e.sheet, e.meta.Boxes, e.selected)
	e.ui.Draw(screen)

	info := fmt.Sprintf("%s  boxes=%d", e.sheetPath, len(e.meta.Boxes))
	if b := e.selectedBox(); b != nil {
		info = fmt.Sprintf("%s  box id=%d rect=(%d,%d %dx%d) %s/%s #%d",
			e.sheetPath, b.ID, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H,
			b.EntityName, b.AnimationName, b.FrameNumber)
	}
	if e.dirty {
		info += "  *unsaved*"
	}
	ebitenutil.DebugPrintAt(screen, info, 8, screenHeight-36)

	if e.status != "" && time.Now().Before(e.statusUntil) {
		ebitenutil.DebugPrintAt(screen, e.status, 8, screenHeight-18)
	}
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
