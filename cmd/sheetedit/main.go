// Command sheetedit is a GUI editor for spritesheet box metadata. It shows
// the sheet on a pan/zoom canvas with every frame box outlined; boxes can be
// created, moved, resized, and retagged, and saved back to the metadata JSON.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/bytebuddy/platformer/common"
)

func main() {
	sheetPath := flag.String("sheet", "", "spritesheet image to edit (default: last opened, then the generated sheet)")
	metaPath := flag.String("meta", "", "metadata JSON next to the sheet (default: last opened, then the generated metadata)")
	flag.Parse()

	sheet, meta := *sheetPath, *metaPath
	if sheet == "" || meta == "" {
		if s, m, ok := openStore().recallPaths(); ok {
			if sheet == "" {
				sheet = s
			}
			if meta == "" {
				meta = m
			}
		}
	}
	if sheet == "" || meta == "" {
		cfg := common.DefaultConfig()
		cfg.ResolveAssetPaths()
		if sheet == "" {
			sheet = cfg.SheetPath
		}
		if meta == "" {
			meta = cfg.MetaPath
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	editor, err := NewEditor(sheet, meta, clipboardOK)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if editor.watcher != nil {
			_ = editor.watcher.Close()
		}
	}()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sheetedit - " + sheet)

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
