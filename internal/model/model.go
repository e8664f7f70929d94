// Package model provides data-structs for internal app-usage
package model

import (
	"errors"
	"fmt"
)

// Anchor names one of nine placement points of the watermark on the base image
type Anchor string

const (
	TopLeft      Anchor = "top_left"
	TopCenter    Anchor = "top_center"
	TopRight     Anchor = "top_right"
	CenterLeft   Anchor = "center_left"
	Center       Anchor = "center"
	CenterRight  Anchor = "center_right"
	BottomLeft   Anchor = "bottom_left"
	BottomCenter Anchor = "bottom_center"
	BottomRight  Anchor = "bottom_right"
)

// Anchors lists every supported anchor in table order
var Anchors = []Anchor{
	TopLeft, TopCenter, TopRight,
	CenterLeft, Center, CenterRight,
	BottomLeft, BottomCenter, BottomRight,
}

// AnchorMap - множество допустимых якорей для быстрой проверки
var AnchorMap = map[Anchor]bool{
	TopLeft:      true,
	TopCenter:    true,
	TopRight:     true,
	CenterLeft:   true,
	Center:       true,
	CenterRight:  true,
	BottomLeft:   true,
	BottomCenter: true,
	BottomRight:  true,
}

// ParseAnchor - неизвестное имя превращается в bottom_right
func ParseAnchor(s string) Anchor {
	if a := Anchor(s); AnchorMap[a] {
		return a
	}
	return BottomRight
}

//---------------------

const (
	DefaultOpacity = 0.8
	DefaultScale   = 0.1
	DefaultMargin  = 20

	MaxMargin = 500
	MaxOffset = 500
)

// WatermarkSpec - параметры одного вызова, живут только в его рамках
type WatermarkSpec struct {
	Path    string
	Anchor  Anchor
	Opacity float64
	Scale   float64
	MarginX int
	MarginY int
	OffsetX int
	OffsetY int
}

// DefaultSpec returns the spec used when the caller sets nothing: bottom right, 0.8 opacity, 0.1 scale, 20px margins
func DefaultSpec() WatermarkSpec {
	return WatermarkSpec{
		Anchor:  BottomRight,
		Opacity: DefaultOpacity,
		Scale:   DefaultScale,
		MarginX: DefaultMargin,
		MarginY: DefaultMargin,
	}
}

// Validate checks numeric ranges and wraps ErrInvalidSpec on failure. NaN fails every range.
func (s WatermarkSpec) Validate() error {
	switch {
	case !(s.Opacity >= 0 && s.Opacity <= 1):
		return fmt.Errorf("%w: opacity %v is out of [0,1]", ErrInvalidSpec, s.Opacity)
	case !(s.Scale > 0 && s.Scale <= 1):
		return fmt.Errorf("%w: scale %v is out of (0,1]", ErrInvalidSpec, s.Scale)
	case s.MarginX < 0 || s.MarginX > MaxMargin || s.MarginY < 0 || s.MarginY > MaxMargin:
		return fmt.Errorf("%w: margins (%d, %d) are out of [0,%d]", ErrInvalidSpec, s.MarginX, s.MarginY, MaxMargin)
	case abs(s.OffsetX) > MaxOffset || abs(s.OffsetY) > MaxOffset:
		return fmt.Errorf("%w: offsets (%d, %d) are out of [-%d,%d]", ErrInvalidSpec, s.OffsetX, s.OffsetY, MaxOffset, MaxOffset)
	}
	return nil
}

//-------------------

// Tensor is the host's normalized image buffer laid out as batch×height×width×channels.
type Tensor struct {
	Batch    int
	Height   int
	Width    int
	Channels int
	Data     []float32
}

// Validate checks the shape against the data length and wraps ErrInvalidImage on mismatch
func (t Tensor) Validate() error {
	if t.Batch < 1 || t.Height < 1 || t.Width < 1 {
		return fmt.Errorf("%w: shape %dx%dx%dx%d", ErrInvalidImage, t.Batch, t.Height, t.Width, t.Channels)
	}
	if t.Channels != 3 && t.Channels != 4 {
		return fmt.Errorf("%w: %d channels, want 3 or 4", ErrInvalidImage, t.Channels)
	}
	if len(t.Data) != t.Batch*t.ImageLen() {
		return fmt.Errorf("%w: buffer holds %d values, shape needs %d", ErrInvalidImage, len(t.Data), t.Batch*t.ImageLen())
	}
	return nil
}

// ImageLen - количество значений в одном изображении батча
func (t Tensor) ImageLen() int {
	return t.Height * t.Width * t.Channels
}

// First returns the first image of the batch as a batch of one. Data is shared.
func (t Tensor) First() Tensor {
	first := t
	first.Batch = 1
	first.Data = t.Data[:t.ImageLen()]
	return first
}

// ------------------

var (
	ErrMissingWatermarkFile    error = errors.New("watermark file not found")
	ErrUnreadableWatermarkFile error = errors.New("watermark file cannot be decoded")
	ErrCompositingFailure      error = errors.New("failed to composite watermark")
	ErrInvalidImage            error = errors.New("incorrect image buffer provided")
	ErrInvalidSpec             error = errors.New("incorrect watermark parameters provided")
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
