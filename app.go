package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/game"
	"github.com/milk9111/hopper/prefabs"
)

var defaultBackground = color.RGBA{R: 0x1d, G: 0x23, B: 0x30, A: 0xff}

const fadeFrames = 20

type keyBinding struct {
	key    ebiten.Key
	cmd    game.Command
	repeat bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, game.CommandMoveLeft, true},
	{ebiten.KeyArrowRight, game.CommandMoveRight, true},
	{ebiten.KeySpace, game.CommandJump, true},
	{ebiten.KeyR, game.CommandReset, false},
}

// App adapts game.Game to ebiten: keyboard in, shapes and overlay out.
type App struct {
	game    *game.Game
	overlay *GameOverUI
	watcher *prefabs.Watcher

	levelName  string
	scriptName string
	debug      bool
	repeat     game.KeyRepeat

	frames int
	fade   int
}

func NewApp(levelName, scriptName string, debug bool) (*App, error) {
	a := &App{
		levelName:  levelName,
		scriptName: scriptName,
		debug:      debug,
		repeat:     game.DefaultKeyRepeat,
	}

	g, err := game.New(game.LoadConfig(levelName, scriptName))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	a.game = g

	w, h := a.Size()
	a.overlay = NewGameOverUI(w, h, func() {
		if err := a.game.Reset(); err != nil {
			log.Printf("app: reset: %v", err)
		}
	})
	g.SetOverlay(a.overlay)

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
		if err != nil {
			log.Printf("app: hot reload disabled: %v", err)
		} else {
			a.watcher = watcher
		}
	}
	return a, nil
}

func (a *App) Size() (int, int) {
	spec := a.game.Config().Game.Render
	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = 1200
	}
	if h <= 0 {
		h = 600
	}
	return w, h
}

func (a *App) Title() string {
	if name := a.game.Config().Game.Name; name != "" {
		return name
	}
	return "hopper"
}

func (a *App) Close() {
	a.game.Close()
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

func (a *App) Update() error {
	a.frames++
	a.reloadChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.debug = !a.debug
	}
	for _, b := range keyBindings {
		d := inpututil.KeyPressDuration(b.key)
		if (b.repeat && a.repeat.Fires(d)) || (!b.repeat && d == 1) {
			if err := a.game.Handle(b.cmd); err != nil {
				log.Printf("app: %s: %v", b.cmd, err)
			}
		}
	}

	a.game.Tick()
	a.overlay.Update()

	for _, evt := range a.game.World().Events().Drain() {
		if change, ok := evt.Data.(game.StatusChange); ok && evt.Type == game.EventStatus {
			a.fade = 0
			if change.To == game.StatusGameOver {
				a.fade = 1
			}
		}
	}
	if a.fade > 0 && a.fade < fadeFrames {
		a.fade++
	}
	return nil
}

// reloadChanged drains the watcher without blocking and rebuilds the game
// once if anything changed.
func (a *App) reloadChanged() {
	if a.watcher == nil {
		return
	}
	changed := ""
drain:
	for {
		select {
		case name, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			changed = name
		case err, ok := <-a.watcher.Errors:
			if ok {
				log.Printf("app: watcher: %v", err)
			}
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}
	log.Printf("app: %s changed, reloading", changed)
	if err := a.game.Reload(game.LoadConfig(a.levelName, a.scriptName)); err != nil {
		log.Printf("app: reload: %v", err)
		return
	}
	a.fade = 0
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.game.Config().Game.Render.Background.RGBA(defaultBackground))

	minX, _ := a.game.View()
	drawWorld(screen, a.game.World(), a.game.Physics(), minX)

	if a.debug {
		drawPhysicsDebug(screen, a.game.Physics().Space(), minX)
		x, y := a.game.Player().Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f    Status: %s    JumpsUsed: %d/%d    Pos: %.1f,%.1f    Resets: %d",
			ebiten.ActualFPS(), a.game.Status(), a.game.Player().JumpBudget(), a.game.Player().MaxJumps(), x, y, a.game.Resets(),
		))
	}

	if a.fade > 0 {
		w, h := a.Size()
		alpha := common.Lerp(0, 160, float32(a.fade)/fadeFrames)
		fillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(alpha)})
	}
	a.overlay.Draw(screen)
}

func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := a.Size()
	return float64(w), float64(h)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
