package main

import (
	"flag"
	"log"

	"github.com/milk9111/hopper/game"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of physics steps to run")
	keys := flag.String("keys", "", `commands, one per tick, e.g. "wait*60,right*30,jump,wait*20,jump"`)
	every := flag.Int("every", 30, "log the player state every N ticks (0 disables)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "", "status script in prefabs/scripts/")
	flag.Parse()

	commands, err := game.ParseScript(*keys)
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.New(game.LoadConfig(*levelName, *scriptName))
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	for tick := 0; tick < *ticks; tick++ {
		if tick < len(commands) {
			if err := g.Handle(commands[tick]); err != nil {
				log.Printf("tick %d: %s: %v", tick, commands[tick], err)
			}
		}
		g.Tick()

		for _, evt := range g.World().Events().Drain() {
			change, ok := evt.Data.(game.StatusChange)
			if evt.Type != game.EventStatus || !ok {
				continue
			}
			text := g.OverlayText()
			log.Printf("tick %d: status %s -> %s (cause %s) %s %s", tick, change.From, change.To, change.Cause, text.Title, text.Detail)
		}
		if *every > 0 && tick%*every == 0 {
			logState(tick, g)
		}
	}
	logState(*ticks, g)
}

func logState(tick int, g *game.Game) {
	x, y := g.Player().Position()
	minX, maxX := g.View()
	log.Printf("tick %d: status=%s jumps=%d/%d pos=(%.1f, %.1f) view=[%.1f, %.1f]",
		tick, g.Status(), g.Player().JumpBudget(), g.Player().MaxJumps(), x, y, minX, maxX)
}
