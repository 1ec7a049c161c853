package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/bytebuddy/platformer/assetgen"
	"github.com/bytebuddy/platformer/assets"
	"github.com/bytebuddy/platformer/common"
	"github.com/bytebuddy/platformer/obj"
)

const clipFPS = 10

type Game struct {
	cfg    common.Config
	debug  bool
	frames int

	input  *obj.Input
	player *obj.Player
	level  *obj.Level
	camera *obj.Camera

	// zoom the camera is easing toward; keys step this, the camera tweens
	targetZoom float64
}

func NewGame(cfg common.Config, debug bool) *Game {
	input := obj.NewInput()
	level := obj.ParseTilemap(obj.DefaultTilemap, cfg.TileSize)

	var visual *obj.AnimSprite
	if cfg.UseSprites {
		sheet, err := assets.LoadOrGenerate(cfg.SheetPath, cfg.MetaPath)
		if err != nil {
			log.Printf("sprite sheet %s: %v (using in-memory fallback)", cfg.SheetPath, err)
		}
		entity, err := sheet.Meta.DefaultEntity()
		if err != nil {
			log.Printf("sheet metadata: %v", err)
		}
		clips := sheet.Clips(entity,
			obj.StateIdle, obj.StateRun, obj.StateJump, obj.StateFall,
			obj.StateAttack, obj.StateHurt)
		visual = obj.NewAnimSprite(clips, obj.StateIdle, clipFPS)

		if ts, err := assets.LoadTileset(cfg.TilesetPath); err == nil {
			// grass is the first tile of the generated tileset
			level.SetTileImage(assets.TileAt(ts, assetgen.DefaultTile, assetgen.DefaultPadding, 0, 0))
		} else {
			log.Printf("tileset %s: %v (using flat tiles)", cfg.TilesetPath, err)
		}
	}

	player := obj.NewPlayer(cfg, 100, 100, input, visual)

	camera := obj.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, 1.0)
	camera.SetWorldBounds(level.Width, level.Height)
	camera.SetMargin(cfg.CameraMargin)
	camera.SetEdgePad(cfg.CameraEdgePad)
	camera.SnapTo(playerCenter(player))

	return &Game{
		cfg:        cfg,
		debug:      debug,
		input:      input,
		player:     player,
		level:      level,
		camera:     camera,
		targetZoom: 1.0,
	}
}

func playerCenter(p *obj.Player) (float64, float64) {
	return float64(p.Rect.X) + float64(p.Rect.Width)/2,
		float64(p.Rect.Y) + float64(p.Rect.Height)/2
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.JumpPressed {
		g.player.QueueJump()
	}
	if g.input.DashPressed {
		g.player.QueueDash()
	}
	if g.input.ZoomOutPressed {
		g.targetZoom = common.Clamp(g.targetZoom*g.cfg.ZoomStep, g.cfg.MinZoom, g.cfg.MaxZoom)
		g.camera.ZoomTo(g.targetZoom)
	}
	if g.input.ZoomInPressed {
		g.targetZoom = common.Clamp(g.targetZoom/g.cfg.ZoomStep, g.cfg.MinZoom, g.cfg.MaxZoom)
		g.camera.ZoomTo(g.targetZoom)
	}

	g.player.Update(dt, g.level.Solids)

	cx, cy := playerCenter(g.player)
	g.camera.Update(dt, cx, cy)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	g.camera.Render(screen, func(world *ebiten.Image) {
		viewX, viewY := g.camera.ViewTopLeft()
		zoom := g.camera.Zoom()
		g.level.Draw(world, viewX, viewY, zoom)
		g.drawGrid(world, viewX, viewY, zoom)
		g.player.Draw(world, viewX, viewY, zoom)
	})

	g.drawHUD(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.player.Snapshot().String(), 8, 40)
	}
}

// drawGrid overlays tile grid lines across the visible part of the level.
func (g *Game) drawGrid(world *ebiten.Image, viewX, viewY, zoom float64) {
	tile := float64(g.cfg.TileSize)
	gridCol := color.RGBA{R: 255, G: 255, B: 255, A: 24}
	w, h := float64(g.level.Width), float64(g.level.Height)

	for x := 0.0; x <= w; x += tile {
		sx := float32((x - viewX) * zoom)
		y0 := float32((0 - viewY) * zoom)
		y1 := float32((h - viewY) * zoom)
		vector.StrokeLine(world, sx, y0, sx, y1, 1, gridCol, false)
	}
	for y := 0.0; y <= h; y += tile {
		sy := float32((y - viewY) * zoom)
		x0 := float32((0 - viewX) * zoom)
		x1 := float32((w - viewX) * zoom)
		vector.StrokeLine(world, x0, sy, x1, sy, 1, gridCol, false)
	}
}

// drawHUD shows FPS/TPS and a row of squares lighting up with the held
// movement keys and the two buffered actions.
func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS %.0f  TPS %.0f  zoom %.2f", ebiten.ActualFPS(), ebiten.ActualTPS(), g.camera.Zoom()),
		8, 8)
	ebitenutil.DebugPrintAt(screen,
		"arrows/AD move  space/W jump  S dash  -/= zoom  esc quit",
		8, 24)

	on := color.RGBA{R: 255, G: 255, B: 255, A: 230}
	off := color.RGBA{R: 255, G: 255, B: 255, A: 60}
	pick := func(active bool) color.RGBA {
		if active {
			return on
		}
		return off
	}

	const size, pad = 14, 4
	x := float32(8)
	y := float32(g.cfg.ScreenHeight - size - 8)
	for _, ind := range []bool{
		g.input.LeftHeld,
		g.input.RightHeld,
		g.player.JumpBufferTimer > 0,
		g.player.DashBufferTimer > 0,
	} {
		vector.DrawFilledRect(screen, x, y, size, size, pick(ind), false)
		x += size + pad
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
