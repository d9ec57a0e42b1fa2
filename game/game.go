package game

import (
	"fmt"
	"log"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
)

// Overlay is the UI shown when a run ends.
type Overlay interface {
	Show(title, detail string)
	Hide()
}

// Config is everything a Game is built from.
type Config struct {
	Game   prefabs.GameSpec
	Player prefabs.PlayerSpec
	Level  *levels.Level
	Hooks  *StatusHooks
}

// DefaultConfig reproduces the embedded prefabs without touching the disk.
func DefaultConfig() Config {
	return Config{
		Game: prefabs.GameSpec{
			Name:   "hopper",
			Render: prefabs.RenderSpec{Width: 1200, Height: 600},
			Camera: prefabs.CameraSpec{CenterOffset: 300},
			Physics: prefabs.PhysicsSpec{
				Gravity:    1000,
				Damping:    0.55,
				Iterations: 10,
				TimeStep:   1.0 / 60.0,
			},
		},
		Player: entity.DefaultPlayerSpec(),
		Level:  levels.Default(),
	}
}

// LoadConfig reads game.yaml, player.yaml, the level and the status script.
// A non-empty levelName or scriptName overrides the one named in game.yaml.
// Pieces that fail to load are logged and replaced by defaults.
func LoadConfig(levelName, scriptName string) Config {
	cfg := DefaultConfig()

	if spec, err := prefabs.LoadGameSpec(); err != nil {
		log.Printf("game: %v, using defaults", err)
	} else {
		cfg.Game = *spec
	}
	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("game: %v, using defaults", err)
	} else {
		cfg.Player = *spec
	}

	if levelName == "" {
		levelName = cfg.Game.Level
	}
	if levelName != "" {
		if lvl, err := levels.Load(levelName); err != nil {
			log.Printf("game: %v, using built-in stage", err)
		} else {
			cfg.Level = lvl
		}
	}

	if scriptName == "" {
		scriptName = cfg.Game.Script
	}
	if scriptName != "" {
		if hooks, err := LoadStatusHooks(scriptName); err != nil {
			log.Printf("game: %v, using built-in overlay text", err)
		} else {
			cfg.Hooks = hooks
		}
	}
	return cfg
}

func (c Config) renderWidth() float64 {
	if c.Game.Render.Width <= 0 {
		return 1200
	}
	return float64(c.Game.Render.Width)
}

func (c Config) renderHeight() float64 {
	if c.Game.Render.Height <= 0 {
		return 600
	}
	return float64(c.Game.Render.Height)
}

func (c Config) physics() system.PhysicsConfig {
	pc := system.DefaultPhysicsConfig()
	p := c.Game.Physics
	if p.Gravity != 0 {
		pc.Gravity = p.Gravity
	}
	if p.Damping > 0 {
		pc.Damping = p.Damping
	}
	if p.Iterations > 0 {
		pc.Iterations = p.Iterations
	}
	if p.TimeStep > 0 {
		pc.TimeStep = p.TimeStep
	}
	return pc
}

type Option func(*Game)

func WithOverlay(o Overlay) Option {
	return func(g *Game) {
		g.overlay = o
	}
}

// Game owns the world, the physics listeners and the run status.
type Game struct {
	cfg Config

	world     *ecs.World
	physics   *system.PhysicsSystem
	camera    *system.CameraSystem
	scheduler *ecs.Scheduler

	player    *Player
	stage     *Stage
	camEntity ecs.Entity

	status  Status
	cause   Cause
	text    OverlayText
	overlay Overlay
	subs    []*system.Subscription
	resets  int
	closed  bool
}

func New(cfg Config, opts ...Option) (*Game, error) {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.init(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) init(cfg Config) error {
	g.cfg = cfg
	g.world = ecs.NewWorld()
	g.physics = system.NewPhysicsSystem(cfg.physics())
	g.camera = system.NewCameraSystem()
	g.scheduler = ecs.NewScheduler(g.physics)
	g.stage = NewStage(cfg.Level)

	cam, err := entity.NewCamera(g.world, cfg.Game.Camera.CenterOffset, cfg.renderWidth())
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.camEntity = cam

	if err := g.build(); err != nil {
		return err
	}
	g.subscribe()
	g.status = StatusReady
	g.cause = CauseNone
	g.text = OverlayText{}
	g.closed = false
	log.Printf("game: %s ready on stage %s", cfg.Game.Name, g.stage.Name())
	return nil
}

func (g *Game) build() error {
	pe, err := entity.NewPlayerFromSpec(g.world, g.cfg.Player)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.player = newPlayer(g.world, pe)
	if _, err := g.stage.Populate(g.world); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.physics.Sync(g.world)
	g.camera.Update(g.world)
	return nil
}

func (g *Game) subscribe() {
	g.subs = append(g.subs,
		g.physics.OnAfterStep(g.afterStep),
		g.physics.OnCollisionStart(g.collisionStart),
	)
}

func (g *Game) unsubscribe() {
	for _, sub := range g.subs {
		sub.Unsubscribe()
	}
	g.subs = g.subs[:0]
}

func (g *Game) afterStep(w *ecs.World) {
	g.camera.Update(w)
	if _, y := g.player.Position(); y > g.cfg.renderHeight() {
		g.gameOver(CauseFell)
	}
}

func (g *Game) collisionStart(w *ecs.World, pairs []ecs.ContactPair) {
	g.player.OnCollision(pairs)
	for _, pair := range pairs {
		if other, ok := pair.Other(g.player.Entity()); ok && other.Label.Lethal() {
			g.gameOver(CauseSpike)
			return
		}
	}
}

func (g *Game) gameOver(cause Cause) {
	if g.status == StatusGameOver {
		return
	}
	g.cause = cause
	g.setStatus(StatusGameOver)
}

func (g *Game) setStatus(s Status) {
	if g.status == s {
		return
	}
	log.Printf("game: %s -> %s (cause %s)", g.status, s, g.cause)
	g.world.Events().Push(ecs.Event{Type: EventStatus, Data: StatusChange{From: g.status, To: s, Cause: g.cause}})
	g.status = s

	text, err := g.cfg.Hooks.OnEnter(s, HookInfo{Cause: g.cause, Resets: g.resets})
	if err != nil {
		log.Printf("game: %v", err)
		text = DefaultOverlayText(s, HookInfo{Cause: g.cause, Resets: g.resets})
	}
	g.text = text
	if g.overlay == nil {
		return
	}
	if text.Title == "" {
		g.overlay.Hide()
		return
	}
	g.overlay.Show(text.Title, text.Detail)
}

// Handle applies one command. Movement keeps working after the game is over;
// only a reset leaves that status.
func (g *Game) Handle(cmd Command) error {
	if g.closed {
		return nil
	}
	switch cmd {
	case CommandNone:
		return nil
	case CommandReset:
		return g.Reset()
	case CommandMoveLeft, CommandMoveRight, CommandJump:
		if g.status == StatusReady {
			g.setStatus(StatusPlaying)
		}
		switch cmd {
		case CommandMoveLeft:
			g.player.MoveLeft()
		case CommandMoveRight:
			g.player.MoveRight()
		case CommandJump:
			g.player.Jump()
		}
		return nil
	}
	return fmt.Errorf("game: unknown command %s", cmd)
}

// Tick advances the simulation by one physics step.
func (g *Game) Tick() {
	if g.closed {
		return
	}
	g.scheduler.Update(g.world)
}

// Reset rebuilds the player and stage and starts a new run.
func (g *Game) Reset() error {
	if g.closed {
		return nil
	}
	g.unsubscribe()
	run := append(ecs.Query(g.world, component.PlayerTagComponent.Kind()), ecs.Query(g.world, component.ObstacleTagComponent.Kind())...)
	for _, e := range run {
		ecs.DestroyEntity(g.world, e)
	}
	if err := g.build(); err != nil {
		return err
	}
	g.subscribe()

	g.resets++
	g.cause = CauseNone
	g.player.SetJumpBudget(g.player.MaxJumps())
	g.setStatus(StatusReady)
	g.text = OverlayText{}
	if g.overlay != nil {
		g.overlay.Hide()
	}
	log.Printf("game: reset #%d", g.resets)
	return nil
}

// Reload rebuilds the whole world from cfg, keeping the overlay and reset count.
// A closed game stays closed.
func (g *Game) Reload(cfg Config) error {
	if g.closed {
		return nil
	}
	g.unsubscribe()
	prev := *g
	if err := g.init(cfg); err != nil {
		*g = prev
		g.subscribe()
		return err
	}
	if g.overlay != nil {
		g.overlay.Hide()
	}
	return nil
}

// Close detaches the game from the physics system. Later ticks are no-ops.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.unsubscribe()
	g.closed = true
}

func (g *Game) SetOverlay(o Overlay) {
	g.overlay = o
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Cause() Cause {
	return g.cause
}

func (g *Game) Player() *Player {
	return g.player
}

func (g *Game) World() *ecs.World {
	return g.world
}

func (g *Game) Physics() *system.PhysicsSystem {
	return g.physics
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Resets() int {
	return g.resets
}

// OverlayText is the text for the current status; Title is empty when no
// overlay should be visible.
func (g *Game) OverlayText() OverlayText {
	return g.text
}

// View returns the visible world X range.
func (g *Game) View() (float64, float64) {
	cam, ok := ecs.Get(g.world, g.camEntity, component.CameraComponent.Kind())
	if !ok {
		return 0, g.cfg.renderWidth()
	}
	return cam.MinX, cam.MaxX
}
