// Package imageproc provides the watermark operations: loading, resizing, placement and alpha compositing.
package imageproc

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ApplyOpacity scales the alpha channel of wm by opacity, truncating to an integer.
// Color channels are left as is. With opacity >= 1 the watermark is returned unchanged.
func ApplyOpacity(wm *image.NRGBA, opacity float64) *image.NRGBA {
	if opacity >= 1 {
		return wm
	}
	if !(opacity >= 0) {
		opacity = 0
	}

	return imaging.AdjustFunc(wm, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(float64(c.A) * opacity)
		return c
	})
}

// Composite blends wm over base with its top-left corner at pos and returns a new
// NRGBA image the size of base. The watermark is first pasted onto a transparent
// canvas using its own alpha as the paste mask, so every channel of the canvas,
// alpha included, is scaled by that alpha. Watermark pixels falling outside base
// are cropped.
func Composite(base, wm image.Image, pos image.Point) *image.NRGBA {
	b := base.Bounds()

	// прозрачный холст размером с основу, на нём ватермарк на своём месте
	canvas := imaging.New(b.Dx(), b.Dy(), color.Transparent)
	canvas = imaging.Paste(canvas, maskedBySelf(wm), pos)

	// само наложение:
	return imaging.Overlay(base, canvas, b.Min, 1.0)
}

// maskedBySelf is wm blended onto a fully transparent pixel with wm's alpha as
// the mask: each channel c becomes c*a/255, rounded.
func maskedBySelf(wm image.Image) *image.NRGBA {
	return imaging.AdjustFunc(wm, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: mulDiv255(c.R, c.A),
			G: mulDiv255(c.G, c.A),
			B: mulDiv255(c.B, c.A),
			A: mulDiv255(c.A, c.A),
		}
	})
}

// mulDiv255 - round(a*b/255) на целых
func mulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8(((t >> 8) + t) >> 8)
}
