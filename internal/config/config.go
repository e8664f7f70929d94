// Package config reads watermark defaults from the environment and .env files
package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/UnendingLoop/ImageWatermarker/internal/model"
	"github.com/wb-go/wbf/config"
)

const (
	KeyPath     = "WATERMARK_PATH"
	KeyPosition = "WATERMARK_POSITION"
	KeyOpacity  = "WATERMARK_OPACITY"
	KeyScale    = "WATERMARK_SCALE"
	KeyMarginX  = "WATERMARK_MARGIN_X"
	KeyMarginY  = "WATERMARK_MARGIN_Y"
	KeyOffsetX  = "WATERMARK_OFFSET_X"
	KeyOffsetY  = "WATERMARK_OFFSET_Y"
	KeyLogLevel = "LOG_LEVEL"

	DefaultLogLevel = "info"
)

// Getter - всё что нужно от конфига, *config.Config подходит
type Getter interface {
	GetString(key string) string
}

// New - конфиг из энвов, .env-файлы опциональны
func New(envFiles ...string) *config.Config {
	appConfig := config.New()
	appConfig.EnableEnv("")
	for _, f := range envFiles {
		if err := appConfig.LoadEnvFiles(f); err != nil {
			log.Printf("Failed to load env file %q: %v. Using environment only...", f, err)
		}
	}
	return appConfig
}

// LoadSpec builds a WatermarkSpec from configuration, falling back to defaults
// for every empty key.
func LoadSpec(cfg Getter) (model.WatermarkSpec, error) {
	spec := model.DefaultSpec()
	spec.Path = strings.TrimSpace(cfg.GetString(KeyPath))

	if v := strings.TrimSpace(cfg.GetString(KeyPosition)); v != "" {
		spec.Anchor = model.ParseAnchor(strings.ToLower(v))
	}

	var err error
	if spec.Opacity, err = getFloat(cfg, KeyOpacity, spec.Opacity); err != nil {
		return model.WatermarkSpec{}, err
	}
	if spec.Scale, err = getFloat(cfg, KeyScale, spec.Scale); err != nil {
		return model.WatermarkSpec{}, err
	}

	ints := []struct {
		key string
		dst *int
	}{
		{KeyMarginX, &spec.MarginX},
		{KeyMarginY, &spec.MarginY},
		{KeyOffsetX, &spec.OffsetX},
		{KeyOffsetY, &spec.OffsetY},
	}
	for _, v := range ints {
		if *v.dst, err = getInt(cfg, v.key, *v.dst); err != nil {
			return model.WatermarkSpec{}, err
		}
	}

	return spec, nil
}

func LogLevel(cfg Getter) string {
	if v := strings.TrimSpace(cfg.GetString(KeyLogLevel)); v != "" {
		return strings.ToLower(v)
	}
	return DefaultLogLevel
}

func getFloat(cfg Getter, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(cfg.GetString(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("incorrect %s value %q: %w", key, raw, err)
	}
	return v, nil
}

func getInt(cfg Getter, key string, def int) (int, error) {
	raw := strings.TrimSpace(cfg.GetString(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("incorrect %s value %q: %w", key, raw, err)
	}
	return v, nil
}
