package frame

import (
	"image"
	"image/color"
	"image/draw"
)

// Layout is a fixed row-major grid of uniform tiles with fixed pixel spacing.
// Spacing pixels take the Background color.
type Layout struct {
	Rows, Cols   int
	TileW, TileH int
	Spacing      int
	Background   color.Color
}

// Width returns the invariant composite width:
// Cols*TileW + (Cols-1)*Spacing.
func (l Layout) Width() int {
	return l.Cols*l.TileW + (l.Cols-1)*l.Spacing
}

// Height returns the invariant composite height:
// Rows*TileH + (Rows-1)*Spacing.
func (l Layout) Height() int {
	return l.Rows*l.TileH + (l.Rows-1)*l.Spacing
}

// Assemble places tiles row-major onto the layout canvas. Every tile must be
// exactly TileW x TileH; a nil tile (or a short tiles slice) leaves the slot
// as background, i.e. a blank slot. Extra tiles beyond Rows*Cols are ignored.
// The result is always exactly Width() x Height().
func (l Layout) Assemble(tiles []*image.RGBA) *image.RGBA {
	canvas := Blank(l.Width(), l.Height(), l.Background)
	for i, tile := range tiles {
		if i >= l.Rows*l.Cols {
			break
		}
		if tile == nil {
			continue
		}
		row := i / l.Cols
		col := i % l.Cols
		x := col * (l.TileW + l.Spacing)
		y := row * (l.TileH + l.Spacing)
		r := image.Rect(x, y, x+l.TileW, y+l.TileH)
		draw.Draw(canvas, r, tile, tile.Bounds().Min, draw.Src)
	}
	return canvas
}

// StackH concatenates images left to right with the given spacing. Heights
// may differ; shorter images are top-aligned and the remainder filled with
// bg. Used for rows whose first cell (a label column) differs in width.
func StackH(bg color.Color, spacing int, imgs ...*image.RGBA) *image.RGBA {
	w, h := 0, 0
	for i, img := range imgs {
		b := img.Bounds()
		w += b.Dx()
		if i > 0 {
			w += spacing
		}
		if b.Dy() > h {
			h = b.Dy()
		}
	}
	canvas := Blank(w, h, bg)
	x := 0
	for _, img := range imgs {
		b := img.Bounds()
		r := image.Rect(x, 0, x+b.Dx(), b.Dy())
		draw.Draw(canvas, r, img, b.Min, draw.Src)
		x += b.Dx() + spacing
	}
	return canvas
}

// StackV concatenates images top to bottom with the given spacing. Widths may
// differ; narrower images are left-aligned and the remainder filled with bg.
func StackV(bg color.Color, spacing int, imgs ...*image.RGBA) *image.RGBA {
	w, h := 0, 0
	for i, img := range imgs {
		b := img.Bounds()
		h += b.Dy()
		if i > 0 {
			h += spacing
		}
		if b.Dx() > w {
			w = b.Dx()
		}
	}
	canvas := Blank(w, h, bg)
	y := 0
	for _, img := range imgs {
		b := img.Bounds()
		r := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(canvas, r, img, b.Min, draw.Src)
		y += b.Dy() + spacing
	}
	return canvas
}
