package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision shapes and combat areas")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("healthhammer")

	game, err := NewGame(GameOptions{Debug: *debug, Watch: *watch, Mute: *mute})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
