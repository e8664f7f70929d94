package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAnchor(t *testing.T) {
	for _, a := range Anchors {
		require.Equal(t, a, ParseAnchor(string(a)))
	}
	require.Equal(t, BottomRight, ParseAnchor("middle"))
	require.Equal(t, BottomRight, ParseAnchor(""))
	require.Len(t, AnchorMap, len(Anchors))
}

func TestWatermarkSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *WatermarkSpec)
		wantErr bool
	}{
		{"defaults", func(s *WatermarkSpec) {}, false},
		{"zero opacity", func(s *WatermarkSpec) { s.Opacity = 0 }, false},
		{"full scale", func(s *WatermarkSpec) { s.Scale = 1 }, false},
		{"extreme offsets", func(s *WatermarkSpec) { s.OffsetX, s.OffsetY = -500, 500 }, false},
		{"opacity above 1", func(s *WatermarkSpec) { s.Opacity = 1.01 }, true},
		{"negative opacity", func(s *WatermarkSpec) { s.Opacity = -0.1 }, true},
		{"zero scale", func(s *WatermarkSpec) { s.Scale = 0 }, true},
		{"NaN opacity", func(s *WatermarkSpec) { s.Opacity = math.NaN() }, true},
		{"NaN scale", func(s *WatermarkSpec) { s.Scale = math.NaN() }, true},
		{"infinite scale", func(s *WatermarkSpec) { s.Scale = math.Inf(1) }, true},
		{"scale above 1", func(s *WatermarkSpec) { s.Scale = 1.5 }, true},
		{"negative margin", func(s *WatermarkSpec) { s.MarginX = -1 }, true},
		{"huge margin", func(s *WatermarkSpec) { s.MarginY = 501 }, true},
		{"huge offset", func(s *WatermarkSpec) { s.OffsetX = -501 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSpec()
			tt.modify(&s)

			err := s.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSpec)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTensor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tensor  Tensor
		wantErr bool
	}{
		{"rgb", Tensor{Batch: 1, Height: 2, Width: 3, Channels: 3, Data: make([]float32, 18)}, false},
		{"rgba batch", Tensor{Batch: 2, Height: 2, Width: 2, Channels: 4, Data: make([]float32, 32)}, false},
		{"empty batch", Tensor{Batch: 0, Height: 2, Width: 2, Channels: 3}, true},
		{"grayscale", Tensor{Batch: 1, Height: 2, Width: 2, Channels: 1, Data: make([]float32, 4)}, true},
		{"short buffer", Tensor{Batch: 1, Height: 2, Width: 2, Channels: 3, Data: make([]float32, 11)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tensor.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidImage)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTensor_First(t *testing.T) {
	tn := Tensor{Batch: 2, Height: 1, Width: 2, Channels: 3, Data: []float32{
		0.1, 0.2, 0.3, 0.4, 0.5, 0.6,
		0.7, 0.8, 0.9, 1.0, 0.0, 0.1,
	}}

	first := tn.First()
	require.Equal(t, 1, first.Batch)
	require.Equal(t, tn.Data[:6], first.Data)
	require.NoError(t, first.Validate())
}
