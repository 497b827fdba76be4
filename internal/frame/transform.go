package frame

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// CenterCrop returns the largest centered region of src whose aspect ratio is
// aspectW:aspectH. The crop rectangle is clamped to the source bounds, so the
// call never fails; a target aspect wider or taller than the source simply
// yields the full source extent on that axis.
func CenterCrop(src *image.RGBA, aspectW, aspectH int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	cw := w
	ch := mulDiv(w, aspectH, aspectW)
	if ch > h {
		ch = h
		cw = mulDiv(h, aspectW, aspectH)
		if cw > w {
			cw = w
		}
	}
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	return CropRect(src, cw, ch)
}

// CropRect returns an exact-size centered crop of src. Dimensions larger than
// the source are clamped to the source bounds rather than erroring.
func CropRect(src *image.RGBA, w, h int) *image.RGBA {
	b := src.Bounds()
	if w > b.Dx() {
		w = b.Dx()
	}
	if h > b.Dy() {
		h = b.Dy()
	}
	x := b.Min.X + (b.Dx()-w)/2
	y := b.Min.Y + (b.Dy()-h)/2

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, image.Point{X: x, Y: y}, draw.Src)
	return dst
}

// Resize scales src to exactly w x h with Catmull-Rom interpolation. No
// aspect preservation happens here; callers pre-crop to the desired ratio.
func Resize(src *image.RGBA, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h && b.Min == (image.Point{}) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Fit center-crops src to the w:h aspect ratio and resizes the result to
// exactly w x h. The postcondition holds for any source of at least 1x1.
func Fit(src *image.RGBA, w, h int) *image.RGBA {
	return Resize(CenterCrop(src, w, h), w, h)
}

func mulDiv(v, num, den int) int {
	if den == 0 {
		return v
	}
	return v * num / den
}
