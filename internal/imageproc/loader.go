package imageproc

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/disintegration/imaging"

	// webp нет среди форматов imaging - регистрируем декодер отдельно
	_ "golang.org/x/image/webp"
)

// FileLoader reads watermarks from the local filesystem
type FileLoader struct{}

func (FileLoader) Load(path string) (*image.NRGBA, error) {
	return LoadWatermark(path)
}

// LoadWatermark opens and decodes the watermark at path, normalizing it to NRGBA.
// Images without alpha come back fully opaque.
func LoadWatermark(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", model.ErrMissingWatermarkFile, path)
		}
		return nil, fmt.Errorf("%w: %q: %w", model.ErrUnreadableWatermarkFile, path, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", model.ErrUnreadableWatermarkFile, path, err)
	}

	return imaging.Clone(img), nil
}
