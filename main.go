package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (physics overlay, hot reload)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "", "status script in prefabs/scripts/ (overrides game.yaml)")
	flag.Parse()

	app, err := NewApp(*levelName, *scriptName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	w, h := app.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.Title())

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
