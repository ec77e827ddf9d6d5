// Command famiko is a NES emulator: a 6502 CPU, a scanline-granularity PPU,
// a 4-channel APU, mapper 0/3 cartridges, and an OpenGL/PortAudio frontend.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/gamako/famiko/nes"
	"github.com/gamako/famiko/ui"
)

func main() {
	startAddr := flag.String("start-addr", "", "override the reset vector (hex), e.g. C000 for nestest")
	debug := flag.Bool("debug", false, "emit a nestest-style CPU trace on stdout")
	soundDebug := flag.Bool("sound-debug", false, "mirror emitted audio to rolling WAV files under test_output/")
	noSound := flag.Bool("no-sound", false, "suppress audio-device binding")
	showCHRTable := flag.Bool("show-chr-table", false, "open the CHR pattern table viewer")
	showNameTable := flag.Bool("show-name-table", false, "open the nametable viewer")
	showSprite := flag.Bool("show-sprite", false, "open the sprite (OAM) viewer")
	fps := flag.Bool("fps", false, "print a rolling frames-per-second gauge")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: famiko [flags] <rom path>")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	data, err := os.ReadFile(romPath)
	if err != nil {
		glog.Errorf("reading rom %s: %v", romPath, err)
		os.Exit(1)
	}
	cartridge, err := nes.NewCartridge(data)
	if err != nil {
		glog.Errorf("loading rom %s: %v", romPath, err)
		if errors.Is(err, nes.ErrMalformedRom) || errors.Is(err, nes.ErrUnsupportedMapper) {
			os.Exit(1)
		}
		os.Exit(1)
	}

	console, err := nes.NewConsole(cartridge)
	if err != nil {
		glog.Errorf("initializing console: %v", err)
		os.Exit(1)
	}

	if *startAddr != "" {
		var addr uint16
		if _, err := fmt.Sscanf(*startAddr, "%x", &addr); err != nil {
			glog.Errorf("parsing --start-addr %q: %v", *startAddr, err)
			os.Exit(1)
		}
		console.SetPC(addr)
	}
	if *debug {
		console.SetTraceSink(func(line string) {
			fmt.Println(line)
		})
	}

	opts := ui.Options{
		NoSound:       *noSound,
		SoundDebug:    *soundDebug,
		ShowCHRTable:  *showCHRTable,
		ShowNameTable: *showNameTable,
		ShowSprite:    *showSprite,
		FPS:           *fps,
	}
	if err := ui.Start(console, 256*2, 240*2, opts); err != nil {
		glog.Errorf("running: %v", err)
		os.Exit(1)
	}
}
