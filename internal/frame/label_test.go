package frame

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFace_FallsBackToEmbedded(t *testing.T) {
	// None of these paths exist; the embedded face must be returned.
	missing := []string{
		filepath.Join(t.TempDir(), "nope.ttf"),
		"/definitely/not/a/font.ttf",
	}
	face := LoadFace(missing, 30)
	if face == nil {
		t.Fatal("LoadFace returned nil despite embedded fallback")
	}
}

func TestLoadFace_SkipsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "corrupt.ttf")
	if err := writeFile(bad, []byte("not a font")); err != nil {
		t.Fatal(err)
	}
	face := LoadFace([]string{bad}, 30)
	if face == nil {
		t.Fatal("LoadFace returned nil for corrupt candidate")
	}
}

func TestBand_DimsAndBackground(t *testing.T) {
	face := LoadFace(nil, 30)
	band := Band("Ground Truth", 512, 50, white, black, face)

	b := band.Bounds()
	if b.Dx() != 512 || b.Dy() != 50 {
		t.Fatalf("Band = %dx%d, want 512x50", b.Dx(), b.Dy())
	}
	// Corners stay background; text is centered and never reaches them.
	for _, p := range [][2]int{{0, 0}, {511, 0}, {0, 49}, {511, 49}} {
		if c := band.RGBAAt(p[0], p[1]); c != white {
			t.Errorf("corner (%d,%d) = %v, want white", p[0], p[1], c)
		}
	}
}

func TestBand_RendersInk(t *testing.T) {
	face := LoadFace(nil, 30)
	band := Band("GT", 250, 275, black, white, face)

	// Some pixel near the center must carry ink.
	found := false
	for y := 100; y < 175 && !found; y++ {
		for x := 80; x < 170; x++ {
			if c := band.RGBAAt(x, y); c.R > 64 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no text ink found near band center")
	}
}

func TestBand_MultiLine(t *testing.T) {
	face := LoadFace(nil, 30)
	band := Band("Vid2World\n(Ours)", 250, 275, black, white, face)
	if b := band.Bounds(); b.Dx() != 250 || b.Dy() != 275 {
		t.Fatalf("Band = %dx%d, want 250x275", b.Dx(), b.Dy())
	}
}

func TestBand_EmptyText(t *testing.T) {
	band := Band("", 100, 40, white, black, nil)
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if c := band.RGBAAt(x, y); c != white {
				t.Fatalf("pixel (%d,%d) = %v, want uniform white", x, y, c)
			}
		}
	}
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
