package tensor

import (
	"image"
	"image/color"
	"testing"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/stretchr/testify/require"
)

const quantStep = 1.0/255 + 1e-6

func gradientTensor(h, w, c int) model.Tensor {
	t := model.Tensor{Batch: 1, Height: h, Width: w, Channels: c, Data: make([]float32, h*w*c)}
	for i := range t.Data {
		t.Data[i] = float32(i%97) / 96
	}
	return t
}

func TestToImage_Normalized(t *testing.T) {
	tn := model.Tensor{Batch: 1, Height: 1, Width: 2, Channels: 3, Data: []float32{
		0, 0.5, 1,
		0.2, 0.4, 0.6,
	}}

	img, err := ToImage(tn)
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())
	require.Equal(t, color.NRGBA{R: 0, G: 127, B: 255, A: 255}, img.NRGBAAt(0, 0))
	require.Equal(t, color.NRGBA{R: 51, G: 102, B: 153, A: 255}, img.NRGBAAt(1, 0))
}

func TestToImage_ByteScale(t *testing.T) {
	tn := model.Tensor{Batch: 1, Height: 1, Width: 1, Channels: 4, Data: []float32{10, 200, 300, 128}}

	img, err := ToImage(tn)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 10, G: 200, B: 255, A: 128}, img.NRGBAAt(0, 0))
}

func TestToImage_UsesFirstOfBatch(t *testing.T) {
	tn := model.Tensor{Batch: 2, Height: 1, Width: 1, Channels: 3, Data: []float32{
		1, 0, 0,
		0, 0, 1,
	}}

	img, err := ToImage(tn)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(0, 0))
}

func TestToImage_Invalid(t *testing.T) {
	_, err := ToImage(model.Tensor{Batch: 1, Height: 1, Width: 1, Channels: 2, Data: []float32{0, 0}})
	require.ErrorIs(t, err, model.ErrInvalidImage)
}

func TestFromImage_Channels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 102})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})

	rgb := FromImage(img, 3)
	require.Equal(t, model.Tensor{Batch: 1, Height: 1, Width: 2, Channels: 3, Data: []float32{
		1, 0, 0.2,
		0, 1, 0,
	}}, rgb)

	rgba := FromImage(img, 4)
	require.Equal(t, 4, rgba.Channels)
	require.Len(t, rgba.Data, 8)
	require.InDelta(t, 0.4, rgba.Data[3], 1e-6)
	require.InDelta(t, 1.0, rgba.Data[7], 1e-6)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []int{3, 4} {
		in := gradientTensor(7, 5, c)

		img, err := ToImage(in)
		require.NoError(t, err)
		out := FromImage(img, c)

		require.Equal(t, in.Height, out.Height)
		require.Equal(t, in.Width, out.Width)
		require.Equal(t, c, out.Channels)
		for i := range in.Data {
			require.InDelta(t, in.Data[i], out.Data[i], quantStep, "channels=%d index=%d", c, i)
		}
	}
}

func TestByteValuesSurviveConversion(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 1))
	for x := 0; x < 256; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: uint8(x), G: uint8(255 - x), B: uint8(x / 2), A: 255})
	}

	back, err := ToImage(FromImage(img, 4))
	require.NoError(t, err)
	require.Equal(t, img.Pix, back.Pix)
}

// k/255 сохраняет k, а всё, что заметно ниже k/255, усекается до k-1
func TestToImage_TruncationBoundary(t *testing.T) {
	const n = 255
	tn := model.Tensor{Batch: 1, Height: 1, Width: n, Channels: 4, Data: make([]float32, n*4)}
	for k := 1; k <= n; k++ {
		px := tn.Data[(k-1)*4 : k*4]
		px[0] = float32(k) / 255
		px[1] = (float32(k) - 0.01) / 255
		px[2] = (float32(k) - 0.5) / 255
		px[3] = float32(k-1) / 255
	}

	img, err := ToImage(tn)
	require.NoError(t, err)
	for k := 1; k <= n; k++ {
		px := img.NRGBAAt(k-1, 0)
		require.Equal(t, uint8(k), px.R, "k=%d", k)
		require.Equal(t, uint8(k-1), px.G, "k=%d", k)
		require.Equal(t, uint8(k-1), px.B, "k=%d", k)
		require.Equal(t, uint8(k-1), px.A, "k=%d", k)
	}
}
