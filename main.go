package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bytebuddy/platformer/common"
)

func loadConfig(path string) common.Config {
	if path == "" {
		return common.DefaultConfig()
	}
	cfg, err := common.LoadConfig(path)
	if err != nil {
		// LoadConfig returns the defaults overlaid with whatever parsed
		log.Printf("config: %v", err)
	}
	return cfg
}

func main() {
	configPath := flag.String("config", "", "YAML config file overlaid on the defaults")
	debug := flag.Bool("debug", false, "show the player state overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	cfg.ResolveAssetPaths()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(NewGame(cfg, *debug)); err != nil {
		log.Fatal(err)
	}
}
