// Package ui is the external collaborator from spec.md §6: an OpenGL
// window pumping frames from the core, a PortAudio sink pulling samples,
// and the auxiliary debug-viewer windows.
package ui

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/gamako/famiko/nes"
)

// Options configures the frontend; each field mirrors a main.go flag.
type Options struct {
	NoSound       bool
	SoundDebug    bool
	ShowCHRTable  bool
	ShowNameTable bool
	ShowSprite    bool
	FPS           bool
}

func newDebugWindow(title string, width, height int) (*glfw.Window, uint32, error) {
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating %s window: %w", title, err)
	}
	window.MakeContextCurrent()
	program, err := newProgram()
	if err != nil {
		return nil, 0, fmt.Errorf("building %s shader program: %w", title, err)
	}
	return window, program, nil
}

// Start is the main entrypoint: it owns the single logical thread described
// in spec.md §5, stepping the CPU/PPU/APU lockstep and posting frames and
// samples to the GL texture and the audio ring buffer.
func Start(console nes.Console, width int, height int, opts Options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)

	window, err := glfw.CreateWindow(width, height, "famiko", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing opengl: %w", err)
	}
	program, err := newProgram()
	if err != nil {
		return fmt.Errorf("building shader program: %w", err)
	}
	gl.UseProgram(program)

	var a *audio
	if !opts.NoSound {
		mirrorDir := ""
		if opts.SoundDebug {
			mirrorDir = "test_output"
		}
		a = newAudio(mirrorDir)
		if err := a.start(); err != nil {
			return fmt.Errorf("starting audio: %w", err)
		}
		defer a.terminate()
		console.SetAudioOut(a.channel)
	}

	var chrWindow, nameWindow, spriteWindow *glfw.Window
	var chrProgram, nameProgram, spriteProgram uint32
	if opts.ShowCHRTable {
		chrWindow, chrProgram, err = newDebugWindow("CHR table", 256, 128)
		if err != nil {
			return err
		}
	}
	if opts.ShowNameTable {
		nameWindow, nameProgram, err = newDebugWindow("Name table", 256, 240)
		if err != nil {
			return err
		}
	}
	if opts.ShowSprite {
		spriteWindow, spriteProgram, err = newDebugWindow("Sprites", 256, 256)
		if err != nil {
			return err
		}
	}

	var frameCount int
	fpsWindowStart := time.Time{}

	// timeBase is fixed at start and elapsed is never reset, so emulated
	// time tracks the wall clock and transient stalls are caught up.
	timeBase := time.Now()
	var elapsed time.Duration

	for !window.ShouldClose() {
		if elapsed > time.Since(timeBase) {
			time.Sleep(1 * time.Millisecond)
			continue
		}
		cycles, err := console.Step()
		if err != nil {
			return fmt.Errorf("stepping console: %w", err)
		}
		elapsed += time.Duration(cycles) * time.Second / nes.CPUFrequency
		f, ok := console.Frame()
		if !ok {
			continue
		}
		window.MakeContextCurrent()
		gl.UseProgram(program)
		updateTexture(program, f)
		console.SetButtons(getKeys(window))
		window.SwapBuffers()

		if chrWindow != nil {
			chrWindow.MakeContextCurrent()
			gl.UseProgram(chrProgram)
			updateTexture(chrProgram, console.DebugCHRTable())
			chrWindow.SwapBuffers()
		}
		if nameWindow != nil {
			nameWindow.MakeContextCurrent()
			gl.UseProgram(nameProgram)
			updateTexture(nameProgram, console.DebugNameTable())
			nameWindow.SwapBuffers()
		}
		if spriteWindow != nil {
			spriteWindow.MakeContextCurrent()
			gl.UseProgram(spriteProgram)
			updateTexture(spriteProgram, console.DebugSprites())
			spriteWindow.SwapBuffers()
		}

		glfw.PollEvents()

		if opts.FPS {
			frameCount++
			if time.Since(fpsWindowStart) >= time.Second {
				glog.Infof("fps: %d", frameCount)
				frameCount = 0
				fpsWindowStart = time.Now()
			}
		}
	}
	return nil
}
