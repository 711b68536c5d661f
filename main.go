package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	startPlaying := flag.Bool("play", false, "start in play mode")
	startEditor := flag.Bool("editor", true, "start with the editor panel open")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Printf("%v (using defaults)", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TargetFPS)

	game := NewGame(cfg)
	game.playing = *startPlaying
	game.editorOpen = *startEditor

	// Window or graphics bring-up failure is the one fatal category.
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
