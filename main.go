package main

import (
	"flag"
	"log"

	"github.com/golangdaddy/pseudoroad/pkg/config"
	"github.com/golangdaddy/pseudoroad/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configFile := flag.String("config", "", "JSON config file (built-in defaults if empty)")
	trackFile := flag.String("track", "", "level file to drive, overrides the config's track")
	writeConfig := flag.String("write-config", "", "write the effective config to this file and exit")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadFromFile(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded config %s", *configFile)
	}
	if *trackFile != "" {
		cfg.TrackFile = *trackFile
		cfg.Track = nil
	}

	if *writeConfig != "" {
		// Inline the track so the written file does not depend on a
		// relative track path.
		if *trackFile != "" {
			t, err := cfg.LoadTrack()
			if err != nil {
				log.Fatal(err)
			}
			cfg.Track = config.FromTrack(t)
			cfg.TrackFile = ""
		}
		if err := cfg.SaveToFile(*writeConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote config to %s", *writeConfig)
		return
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
