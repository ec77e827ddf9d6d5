package integration

import (
	"image/png"
	"os"
	"testing"

	"github.com/gamako/famiko/nes"
)

// TestHelloWorld is a golden-image test: it runs a minimal ROM to its first
// completed frame and compares the rendered picture pixel-for-pixel against
// a checked-in PNG. Skips if the ROM/PNG fixtures are not present in the
// checkout (spec.md §8 scenario assets are not part of the module itself).
func TestHelloWorld(t *testing.T) {
	f, err := os.Open("sample1.nes")
	if err != nil {
		t.Skipf("sample1.nes fixture not present: %v", err)
	}
	defer f.Close()
	b, err := os.ReadFile("sample1.nes")
	if err != nil {
		t.Fatalf("reading sample1.nes: %v", err)
	}
	cartridge, err := nes.NewCartridge(b)
	if err != nil {
		t.Fatalf("parsing sample1.nes: %v", err)
	}
	console, err := nes.NewConsole(cartridge)
	if err != nil {
		t.Fatalf("creating console: %v", err)
	}
	r, err := os.Open("helloworld.png")
	if err != nil {
		t.Skipf("helloworld.png fixture not present: %v", err)
	}
	defer r.Close()
	want, err := png.Decode(r)
	if err != nil {
		t.Fatalf("decoding helloworld.png: %v", err)
	}

	for i := 0; i < 2_000_000; i++ {
		if _, err := console.Step(); err != nil {
			t.Fatalf("console.Step: %v", err)
		}
		got, ok := console.Frame()
		if !ok {
			continue
		}
		for y := 0; y < got.Rect.Max.Y; y++ {
			for x := 0; x < got.Rect.Max.X; x++ {
				if got.At(x, y) != want.At(x, y) {
					t.Errorf("rendered color at (%d, %d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
				}
			}
		}
		return
	}
	t.Fatal("no frame completed within the cycle budget")
}
