package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/nevisdale/nescore/internal/nes"
	"github.com/nevisdale/nescore/internal/ui"
	"github.com/pkg/profile"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES (.nes) file")
	frames := flag.Int("frames", 60, "frames to run without the UI")
	withUI := flag.Bool("ui", false, "open the inspector window")
	profMode := flag.String("profile", "", "write a cpu or mem profile into the working directory")
	quiet := flag.Bool("quiet", false, "drop bus diagnostics")
	flag.Parse()

	if *romPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q\n", *profMode)
	}

	cart, err := nes.NewCartFromFile(*romPath)
	if err != nil {
		log.Fatalf("couldn't load cartridge: %s\n", err)
	}

	var opts []nes.Option
	if *quiet {
		opts = append(opts, nes.WithLogger(log.New(io.Discard, "", 0)))
	}
	console := nes.NewConsole(cart, opts...)

	if *withUI {
		if err := ui.RunUI(ui.New(console)); err != nil {
			log.Fatalf("ui: %s\n", err)
		}
		return
	}

	if err := run(console, *frames); err != nil {
		state := console.CPU()
		log.Printf("stopped at PC:%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
			state.PC, state.A, state.X, state.Y, state.P, state.SP, state.TotalCycles)
		log.Fatalf("emulation stopped: %s\n", err)
	}

	state := console.CPU()
	log.Printf("ran %d frames: PC:%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		*frames, state.PC, state.A, state.X, state.Y, state.P, state.SP, state.TotalCycles)
}

func run(console *nes.Console, frames int) error {
	for i := 0; i < frames; i++ {
		if err := console.StepFrame(); err != nil {
			if errors.Is(err, nes.ErrJammed) {
				log.Printf("cpu jammed in frame %d\n", i)
			}
			return err
		}
	}
	return nil
}
