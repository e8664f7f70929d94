// Package tensor converts between the host's normalized float buffers and 8-bit NRGBA images
package tensor

import (
	"image"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/disintegration/imaging"
)

// ToImage decodes the first image of the batch into an 8-bit NRGBA image.
// Buffers whose maximum is at most 1 are treated as normalized and scaled by 255,
// anything larger is taken as byte-scale already. Values are truncated, not rounded.
func ToImage(t model.Tensor) (*image.NRGBA, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	src := t.First().Data

	scale := 1.0
	if maxValue(src) <= 1 {
		scale = 255
	}

	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+t.Width*4]
		in := src[y*t.Width*t.Channels : (y+1)*t.Width*t.Channels]
		for x := 0; x < t.Width; x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			vals := in[x*t.Channels : (x+1)*t.Channels]
			px[0] = toByte(vals[0], scale)
			px[1] = toByte(vals[1], scale)
			px[2] = toByte(vals[2], scale)
			if t.Channels == 4 {
				px[3] = toByte(vals[3], scale)
			} else {
				px[3] = 255
			}
		}
	}
	return img, nil
}

// FromImage encodes img as a normalized buffer with batch 1.
// For 3 channels the alpha channel is discarded.
func FromImage(img image.Image, channels int) model.Tensor {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	t := model.Tensor{
		Batch:    1,
		Height:   h,
		Width:    w,
		Channels: channels,
		Data:     make([]float32, h*w*channels),
	}

	i := 0
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				t.Data[i] = float32(row[x*4+c]) / 255
				i++
			}
		}
	}
	return t
}

func maxValue(data []float32) float32 {
	var m float32
	for i, v := range data {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// truncEps absorbs float32 error so k/255 maps back to k instead of k-1
const truncEps = 1e-4

// значения вне [0,255] прижимаем к границам, а не заворачиваем по модулю
func toByte(v float32, scale float64) uint8 {
	f := float64(v)*scale + truncEps
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
