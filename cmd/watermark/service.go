package main

import (
	"context"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/UnendingLoop/ImageWatermarker/internal/service"
)

type WatermarkService interface {
	Process(ctx context.Context, img model.Tensor, spec model.WatermarkSpec) service.Outcome
}
