// Command house-viewer browses generated houses floor by floor in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/housegen/config"
	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/house"
)

const (
	logDir      = "logs"
	logFileName = "house-viewer.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging sends log output to logs/house-viewer.log in debug mode; the
// terminal is never written to
func setupLogging(debug bool) *os.File {
	return core.SetupLogging(debug, logDir, logFileName, maxLogSize)
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	seed := flag.Int64("seed", 0, "starting seed")
	sound := flag.Bool("sound", false, "chime after each generation")
	debug := flag.Bool("debug", false, "write debug log to logs/")
	flag.Parse()

	if f := setupLogging(*debug); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "house-viewer: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.House.Seed, cfg.House.RandomSeed = *seed, false
		}
	})

	gen, err := house.NewGenerator(cfg.House)
	if err == nil {
		err = cfg.Apply(gen)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "house-viewer: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var c *chime
	if *sound {
		// Non-fatal, viewer runs without sound
		if c, err = newChime(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer c.close()
	}

	v := newViewer(screen, gen, c)
	v.generate(gen.Generate)
	v.run()
}
