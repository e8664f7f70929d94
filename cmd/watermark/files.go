package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/UnendingLoop/ImageWatermarker/internal/tensor"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

// readBase - непрозрачная картинка идёт как RGB, с альфой - как RGBA
func readBase(path string) (model.Tensor, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return model.Tensor{}, err
	}

	nrgba := imaging.Clone(img)
	channels := 4
	if nrgba.Opaque() {
		channels = 3
	}
	return tensor.FromImage(nrgba, channels), nil
}

func writeResult(path string, t model.Tensor) error {
	img, err := tensor.ToImage(t)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer closeFile(f)

		return webp.Encode(f, img, &webp.Options{Lossless: true})
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("output %q: %w", path, err)
	}
	return imaging.Save(img, path)
}

func defaultOutputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_watermarked" + ext
}

func closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		log.Println("Failed to close output file:", err)
	}
}
