package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/config"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ecs/render"
	"github.com/milk9111/ldtkscene/ecs/system"
	"github.com/milk9111/ldtkscene/ldtk"
	"github.com/milk9111/ldtkscene/plugin"
)

const (
	panSpeed = 6.0
	zoomStep = 1.1
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	server    *asset.Server
	renderer  *render.Renderer
	log       *zap.Logger

	project   ecs.Entity
	camera    ecs.Entity
	selection ldtk.Selection
	current   string
	status    string
	debug     bool
	clipboard bool

	width, height int
}

func NewGame(cfg *config.Config, server *asset.Server, log *zap.Logger, debug bool) (*Game, error) {
	g := &Game{
		world:     ecs.NewWorld(),
		scheduler: ecs.NewScheduler(),
		server:    server,
		renderer:  render.NewRenderer(server),
		log:       log,
		selection: cfg.InitialSelection(),
		debug:     debug,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
	}
	plugin.Install(g.scheduler, server, plugin.Options{
		Logger:           log,
		AbandonOnFailure: cfg.Spawn.AbandonOnFailure,
	})

	project, err := plugin.SpawnProject(g.world, server, cfg.Project)
	if err != nil {
		return nil, err
	}
	g.project = project
	if g.camera, err = system.SpawnCamera(g.world); err != nil {
		return nil, err
	}
	if err := system.SelectLevel(g.world, g.selection); err != nil {
		return nil, err
	}

	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", zap.Error(err))
	} else {
		g.clipboard = true
	}
	return g, nil
}

func (g *Game) Update() error {
	g.handleInput()
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch data := evt.Data.(type) {
		case system.LevelSpawnedEvent:
			g.current = data.IID
			g.status = fmt.Sprintf("level %s: %d layers, %d tiles", data.IID, data.Layers, data.Tiles)
		case system.WorldAbandoned:
			g.status = fmt.Sprintf("failed to load %s", data.Image)
		}
	}
	return nil
}

func (g *Game) handleInput() {
	if cam, ok := ecs.Get(g.world, g.camera, component.CameraComponent.Kind()); ok {
		g.moveCamera(cam)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyIID()
	}
}

// step selects the level delta positions away from the current one in
// document order, wrapping at both ends.
func (g *Game) step(delta int) {
	p, ok := ecs.Get(g.world, g.project, component.LDtkProjectComponent.Kind())
	if !ok {
		return
	}
	project, ok := g.server.Project(p.Handle)
	if !ok {
		return
	}
	refs := project.Doc.LevelRefs()
	if len(refs) == 0 {
		return
	}
	cur := 0
	for i, ref := range refs {
		if ref.Level.IID == g.current {
			cur = i
			break
		}
	}
	next := refs[((cur+delta)%len(refs)+len(refs))%len(refs)]
	g.selection = ldtk.ByIID(next.Level.IID)
	if err := system.SelectLevel(g.world, g.selection); err != nil {
		g.log.Error("select level", zap.Error(err))
	}
}

func (g *Game) reload() {
	if err := system.RequestDespawnAll(g.world); err != nil {
		g.log.Error("request despawn", zap.Error(err))
		return
	}
	if err := system.SelectLevel(g.world, g.selection); err != nil {
		g.log.Error("select level", zap.Error(err))
	}
}

func (g *Game) copyIID() {
	if !g.clipboard || g.current == "" {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.current))
	g.status = "copied " + g.current
}

// moveCamera pans and zooms from the keyboard. Panning stops the camera
// following the level until the next one spawns.
func (g *Game) moveCamera(cam *component.Camera) {
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panSpeed / zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panSpeed / zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy += panSpeed / zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy -= panSpeed / zoom
	}
	if dx != 0 || dy != 0 {
		cam.X += dx
		cam.Y += dy
		cam.Follow = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		cam.Zoom = zoom * zoomStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		cam.Zoom = zoom / zoomStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		cam.Follow = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	msg := g.status
	if g.debug {
		msg = fmt.Sprintf("%s\nFPS: %.1f  entities: %d  loads: %d\nN/P level  R reload  C copy iid  arrows pan  +/- zoom  F follow",
			g.status, ebiten.ActualFPS(), len(ecs.Entities(g.world)), g.server.InFlight())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
