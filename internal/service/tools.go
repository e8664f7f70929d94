package service

import (
	"image"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
)

func sizeOf(img image.Image) image.Point {
	return img.Bounds().Size()
}

func marginOf(spec model.WatermarkSpec) image.Point {
	return image.Pt(spec.MarginX, spec.MarginY)
}

func offsetOf(spec model.WatermarkSpec) image.Point {
	return image.Pt(spec.OffsetX, spec.OffsetY)
}
