// Package service provides business-logic for the app: the watermark pipeline and its fail-soft boundary
package service

import (
	"context"
	"fmt"
	"image"

	"github.com/UnendingLoop/ImageWatermarker/internal/imageproc"
	"github.com/UnendingLoop/ImageWatermarker/internal/logger"
	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/UnendingLoop/ImageWatermarker/internal/tensor"
)

// WatermarkLoader - контракт для загрузки ватермарка
type WatermarkLoader interface {
	Load(path string) (*image.NRGBA, error)
}

type WatermarkService struct {
	loader WatermarkLoader
}

func NewWatermarkService(loader WatermarkLoader) *WatermarkService {
	if loader == nil {
		loader = imageproc.FileLoader{}
	}
	return &WatermarkService{loader: loader}
}

// Outcome describes one invocation. Image is always usable: on failure it is the
// unmodified input and Err tells why.
type Outcome struct {
	Image    model.Tensor
	Applied  bool
	Position image.Point
	Size     image.Point
	Err      error
}

// Apply overlays the watermark described by spec onto the first image of img.
// It never fails: any problem is logged and img is returned unchanged.
func (s WatermarkService) Apply(ctx context.Context, img model.Tensor, spec model.WatermarkSpec) model.Tensor {
	return s.Process(ctx, img, spec).Image
}

// Process is Apply with a report of what happened.
func (s WatermarkService) Process(ctx context.Context, img model.Tensor, spec model.WatermarkSpec) Outcome {
	if !logger.HasInvocation(ctx) {
		ctx = logger.WithInvocation(ctx, "service")
	}
	log := logger.FromContext(ctx)

	res, err := s.apply(img, spec)
	if err != nil {
		log.Error().Err(err).
			Str("watermark_path", spec.Path).
			Msg("Failed to apply watermark, returning original image")
		return Outcome{Image: img, Err: err}
	}

	log.Debug().
		Str("anchor", string(spec.Anchor)).
		Int("x", res.Position.X).
		Int("y", res.Position.Y).
		Int("width", res.Size.X).
		Int("height", res.Size.Y).
		Msg("Watermark applied")
	res.Applied = true
	return res
}

// apply - единственное место где ошибки пайплайна превращаются в fail-soft, паники тоже ловим здесь
func (s WatermarkService) apply(img model.Tensor, spec model.WatermarkSpec) (res Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Outcome{}, fmt.Errorf("%w: panic: %v", model.ErrCompositingFailure, r)
		}
	}()

	if err := spec.Validate(); err != nil {
		return Outcome{}, err
	}

	base, err := tensor.ToImage(img)
	if err != nil {
		return Outcome{}, err
	}

	wm, err := s.loader.Load(spec.Path)
	if err != nil {
		return Outcome{}, err
	}
	if wm == nil || wm.Bounds().Empty() {
		return Outcome{}, fmt.Errorf("%w: empty watermark %q", model.ErrUnreadableWatermarkFile, spec.Path)
	}

	baseSize := sizeOf(base)
	wmSize := imageproc.TargetSize(sizeOf(wm), baseSize, spec.Scale)
	wm = imageproc.ResizeWatermark(wm, wmSize)

	pos := imageproc.ResolvePosition(baseSize, wmSize, spec.Anchor, marginOf(spec), offsetOf(spec))
	pos = imageproc.ClampPosition(baseSize, wmSize, pos)

	wm = imageproc.ApplyOpacity(wm, spec.Opacity)
	result := imageproc.Composite(base, wm, pos)
	if !result.Bounds().Size().Eq(baseSize) {
		return Outcome{}, fmt.Errorf("%w: result is %v, base is %v", model.ErrCompositingFailure, result.Bounds().Size(), baseSize)
	}

	return Outcome{
		Image:    tensor.FromImage(result, img.Channels),
		Position: pos,
		Size:     wmSize,
	}, nil
}
