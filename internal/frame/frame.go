// Package frame is the shared composition geometry utility: center-crop,
// resize, label bands, stacking, and grid assembly over RGBA pixel buffers.
// It replaces the near-duplicated crop/resize/label/tile procedures of the
// original per-scenario scripts with one module driven by explicit geometry
// arguments.
//
// All functions are pure with respect to their inputs: sources are never
// mutated and returned images always have zero-based bounds.
package frame

import (
	"image"
	"image/color"
	"image/draw"
)

// Blank returns a w x h tile filled with a uniform color. Used for empty grid
// slots and spacing fillers.
func Blank(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// Clone returns an independent copy of src with zero-based bounds.
func Clone(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FromImage converts any image.Image into an *image.RGBA with zero-based
// bounds, copying pixels only when necessary.
func FromImage(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// PadTo centers src on a w x h canvas filled with bg. When src already
// exceeds the canvas in a dimension it is left-/top-aligned at 0 and cropped
// by the canvas edge.
func PadTo(src *image.RGBA, w, h int, bg color.Color) *image.RGBA {
	sb := src.Bounds()
	if sb.Dx() == w && sb.Dy() == h {
		return src
	}
	dst := Blank(w, h, bg)
	x := (w - sb.Dx()) / 2
	y := (h - sb.Dy()) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, r, src, sb.Min, draw.Src)
	return dst
}

// PadToEven grows src by at most one pixel per axis so both dimensions are
// even, filling with bg. H.264 4:2:0 output requires even dimensions.
func PadToEven(src *image.RGBA, bg color.Color) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w%2 == 0 && h%2 == 0 {
		return src
	}
	return PadTo(src, w+w%2, h+h%2, bg)
}
