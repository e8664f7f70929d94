package imageproc

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// TargetSize computes the watermark size: its long edge becomes scale times the
// shorter side of the base, the aspect ratio is kept and no side drops below 1px.
func TargetSize(wm, base image.Point, scale float64) image.Point {
	if wm.X <= 0 || wm.Y <= 0 {
		return image.Pt(1, 1)
	}

	reference := min(base.X, base.Y)
	longEdge := math.Round(float64(reference) * scale)
	ratio := float64(wm.X) / float64(wm.Y)

	var w, h int
	if wm.X >= wm.Y {
		w = int(longEdge)
		h = int(math.Round(longEdge / ratio))
	} else {
		h = int(longEdge)
		w = int(math.Round(longEdge * ratio))
	}

	return image.Pt(max(w, 1), max(h, 1))
}

// ResizeWatermark resamples wm to size with a Lanczos filter.
func ResizeWatermark(wm image.Image, size image.Point) *image.NRGBA {
	return imaging.Resize(wm, size.X, size.Y, imaging.Lanczos)
}
