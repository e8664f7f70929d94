package service

import (
	"image"
)

// MOCK LOADER

type mockLoader struct {
	loadFn func(path string) (*image.NRGBA, error)
}

func (m *mockLoader) Load(path string) (*image.NRGBA, error) {
	return m.loadFn(path)
}
