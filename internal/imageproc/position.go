package imageproc

import (
	"image"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
)

// ResolvePosition returns the top-left corner of a watermark of size wm inside a
// base of size base for the given anchor, margins and offsets. The result is
// not clamped and may lie outside the base.
func ResolvePosition(base, wm image.Point, anchor model.Anchor, margin, offset image.Point) image.Point {
	left := margin.X
	hcenter := floorHalf(base.X - wm.X)
	right := base.X - wm.X - margin.X

	top := margin.Y
	vcenter := floorHalf(base.Y - wm.Y)
	bottom := base.Y - wm.Y - margin.Y

	var p image.Point
	switch anchor {
	case model.TopLeft:
		p = image.Pt(left, top)
	case model.TopCenter:
		p = image.Pt(hcenter, top)
	case model.TopRight:
		p = image.Pt(right, top)
	case model.CenterLeft:
		p = image.Pt(left, vcenter)
	case model.Center:
		p = image.Pt(hcenter, vcenter)
	case model.CenterRight:
		p = image.Pt(right, vcenter)
	case model.BottomLeft:
		p = image.Pt(left, bottom)
	case model.BottomCenter:
		p = image.Pt(hcenter, bottom)
	default: // model.BottomRight и всё неизвестное
		p = image.Pt(right, bottom)
	}

	return p.Add(offset)
}

// ClampPosition moves p so that the watermark box starts inside the base on each
// axis independently. A watermark wider (taller) than the base ends up with a
// negative coordinate on that axis and gets cropped when pasted.
func ClampPosition(base, wm, p image.Point) image.Point {
	return image.Pt(clampAxis(p.X, wm.X, base.X), clampAxis(p.Y, wm.Y, base.Y))
}

func clampAxis(pos, size, limit int) int {
	switch {
	case pos < 0:
		return 0
	case pos+size > limit:
		return limit - size
	}
	return pos
}

// деление с округлением вниз, как для отрицательных так и для положительных
func floorHalf(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}
