package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"
	"github.com/golang/glog"
)

const sampleRate = 44100

// wavMirrorSeconds is how much audio a --sound-debug file holds before it is
// closed and a fresh one is opened, per spec.md §6's "rolling 10-second WAV
// files".
const wavMirrorSeconds = 10

// audio is the PortAudio sink: it pulls from a bounded channel fed by the
// APU and optionally mirrors what it plays to rolling WAV files.
type audio struct {
	stream  *portaudio.Stream
	channel chan float32

	mirror    *wavMirror
	underflow uint64
}

func newAudio(mirrorDir string) *audio {
	a := &audio{}
	a.channel = make(chan float32, sampleRate)
	if mirrorDir != "" {
		a.mirror = newWavMirror(mirrorDir)
	}
	return a
}

func (a *audio) start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("Failed to initialize portaudio: %w", err)
	}
	cb := func(out []float32) {
		for i := range out {
			select {
			case x := <-a.channel:
				out[i] = x * 0.05
				// The stream is interleaved stereo and the APU sends each
				// sample twice; mirror only the left copy to the mono file.
				if a.mirror != nil && i%2 == 0 {
					a.mirror.write(x)
				}
			default:
				// AudioUnderflow: log and pad with silence.
				a.underflow++
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, cb)
	if err != nil {
		return fmt.Errorf("Failed to open the audio stream: %w", err)
	}
	a.stream = stream
	if err := stream.Start(); err != nil {
		return fmt.Errorf("Failed to start the audio stream: %w", err)
	}
	return nil
}

func (a *audio) terminate() {
	if a.underflow > 0 {
		glog.Infof("audio: %d underflowed samples padded with silence", a.underflow)
	}
	if a.mirror != nil {
		a.mirror.close()
	}
	a.stream.Close()
	portaudio.Terminate()
}

// wavMirror writes emitted samples into successive 10-second mono WAV files
// under test_output/, for offline inspection of --sound-debug sessions.
type wavMirror struct {
	dir      string
	enc      *wav.Encoder
	f        *os.File
	written  int
	fileNum  int
}

func newWavMirror(dir string) *wavMirror {
	if err := os.MkdirAll(dir, 0755); err != nil {
		glog.Errorf("sound-debug: creating %s: %v", dir, err)
		return nil
	}
	m := &wavMirror{dir: dir}
	m.rotate()
	return m
}

func (m *wavMirror) rotate() {
	if m.enc != nil {
		m.enc.Close()
		m.f.Close()
	}
	name := filepath.Join(m.dir, fmt.Sprintf("sound-debug-%s-%03d.wav", time.Now().Format("20060102-150405"), m.fileNum))
	f, err := os.Create(name)
	if err != nil {
		glog.Errorf("sound-debug: creating %s: %v", name, err)
		m.enc = nil
		return
	}
	m.f = f
	m.enc = wav.NewEncoder(f, sampleRate, 16, 1, 1)
	m.written = 0
	m.fileNum++
}

func (m *wavMirror) write(sample float32) {
	if m.enc == nil {
		return
	}
	if m.written >= wavMirrorSeconds*sampleRate {
		m.rotate()
	}
	v := int(sample * 32767)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           []int{v},
		SourceBitDepth: 16,
	}
	if err := m.enc.Write(buf); err != nil {
		glog.Errorf("sound-debug: writing sample: %v", err)
		return
	}
	m.written++
}

func (m *wavMirror) close() {
	if m.enc != nil {
		m.enc.Close()
		m.f.Close()
	}
}
