package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io/fs"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.design/x/clipboard"

	"github.com/bytebuddy/platformer/sheetmeta"
)

func (e *Editor) loadMeta() error {
	meta, err := sheetmeta.Load(e.metaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// a fresh sheet with no metadata yet: start empty
			e.meta = &sheetmeta.Meta{}
			return nil
		}
		return err
	}
	e.meta = meta
	return nil
}

func (e *Editor) saveMeta() error {
	e.meta.ImagePath = filepath.Base(e.sheetPath)
	if err := os.MkdirAll(filepath.Dir(e.metaPath), 0755); err != nil {
		return err
	}
	return e.meta.Save(e.metaPath)
}

func (e *Editor) loadSheet() error {
	f, err := os.Open(e.sheetPath)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", e.sheetPath, err)
	}
	e.sheet = ebiten.NewImageFromImage(img)
	return nil
}

// sheetWatcher reports writes to one file, debounced, on a small channel.
type sheetWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan struct{}
	closeCh chan struct{}
	once    sync.Once
}

// watchSheet watches the sheet file's directory and signals when the file
// itself is rewritten. Watching the directory survives editors that replace
// the file instead of writing in place.
func watchSheet(path string) (*sheetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	sw := &sheetWatcher{
		watcher: w,
		Events:  make(chan struct{}, 1),
		closeCh: make(chan struct{}),
	}
	go sw.run(filepath.Base(path))
	return sw, nil
}

func (w *sheetWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *sheetWatcher) run(name string) {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case w.Events <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// store persists editor preferences (the last opened file pair) through
// gdata's per-user storage. All methods tolerate a nil receiver so a failed
// open degrades to no persistence.
type store struct {
	m *gdata.Manager
}

const (
	storeObject    = "editor"
	storePathsProp = "last_paths"
)

type lastPaths struct {
	Sheet string `json:"sheet"`
	Meta  string `json:"meta"`
}

func openStore() *store {
	m, err := gdata.Open(gdata.Config{AppName: "platformer_sheetedit"})
	if err != nil {
		log.Printf("preferences storage unavailable: %v", err)
		return nil
	}
	return &store{m: m}
}

func (s *store) rememberPaths(sheet, meta string) {
	if s == nil {
		return
	}
	data, err := json.Marshal(lastPaths{Sheet: sheet, Meta: meta})
	if err != nil {
		return
	}
	if err := s.m.SaveObjectProp(storeObject, storePathsProp, data); err != nil {
		log.Printf("save preferences: %v", err)
	}
}

func (s *store) recallPaths() (sheet, meta string, ok bool) {
	if s == nil || !s.m.ObjectPropExists(storeObject, storePathsProp) {
		return "", "", false
	}
	data, err := s.m.LoadObjectProp(storeObject, storePathsProp)
	if err != nil {
		return "", "", false
	}
	var lp lastPaths
	if err := json.Unmarshal(data, &lp); err != nil {
		return "", "", false
	}
	return lp.Sheet, lp.Meta, lp.Sheet != "" && lp.Meta != ""
}

// copySelected puts the selected box on the system clipboard as JSON.
func (e *Editor) copySelected() {
	b := e.selectedBox()
	if b == nil || !e.clipboardOK {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	e.setStatus("box copied")
}

// pasteBox appends a clipboard box, offset a little so it is visibly new.
func (e *Editor) pasteBox() {
	if !e.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	var b sheetmeta.Box
	if err := json.Unmarshal(data, &b); err != nil {
		e.setStatus("clipboard does not hold a box")
		return
	}
	b.Rect.X += 8
	b.Rect.Y += 8
	e.addBox(b.Rect, b.EntityName, b.AnimationName, b.FrameNumber)
	e.setStatus("box pasted")
}
