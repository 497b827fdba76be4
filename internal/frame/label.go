package frame

import (
	"image"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadFace returns a font face for label rendering. Each candidate path is
// tried in order; the first readable, parseable font wins. When none works
// the embedded Go Bold face is used, so label rendering never fails for a
// missing font.
func LoadFace(paths []string, size float64) font.Face {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if face := parseFace(data, size); face != nil {
			return face
		}
	}
	if face := parseFace(gobold.TTF, size); face != nil {
		return face
	}
	// Unreachable with a sane embedded font; kept so callers never see nil.
	return nil
}

func parseFace(data []byte, size float64) font.Face {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}

// Band renders text centered within a w x h strip of bg color. Lines are
// split on "\n" and centered individually. The band is stacked adjacent to a
// video tile rather than overlaid on its pixels.
func Band(text string, w, h int, bg, fg color.Color, face font.Face) *image.RGBA {
	band := Blank(w, h, bg)
	if text == "" || face == nil {
		return band
	}

	lines := strings.Split(text, "\n")
	m := face.Metrics()
	lineH := m.Height.Ceil()
	blockH := lineH * len(lines)

	// Baseline of the first line so the whole block is vertically centered.
	y := (h-blockH)/2 + m.Ascent.Ceil()

	d := font.Drawer{
		Dst:  band,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	for _, line := range lines {
		adv := d.MeasureString(line)
		x := (w - adv.Ceil()) / 2
		if x < 0 {
			x = 0
		}
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
		y += lineH
	}
	return band
}
