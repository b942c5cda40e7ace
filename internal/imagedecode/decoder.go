// Package imagedecode превращает байты изображения в PixelGrid.
// Форматы: jpeg, png, gif, bmp, tiff (через imaging) и webp.
package imagedecode

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/Totarae/QRDecoder/internal/model"
)

// DefaultMaxPixels лимит площади изображения по умолчанию (4000x4000).
const DefaultMaxPixels int64 = 16_000_000

var (
	// ErrEmpty пустой буфер.
	ErrEmpty = errors.New("empty image data")
	// ErrTooManyPixels заголовок объявляет изображение больше лимита.
	ErrTooManyPixels = errors.New("image dimensions exceed limit")
)

// Decoder декодирует изображение с учётом EXIF-ориентации.
type Decoder struct {
	maxPixels int64
}

// New создаёт Decoder с лимитом DefaultMaxPixels.
func New() *Decoder {
	return NewWithMaxPixels(DefaultMaxPixels)
}

// NewWithMaxPixels создаёт Decoder с заданным лимитом Width*Height.
// Неположительный лимит заменяется значением по умолчанию.
func NewWithMaxPixels(maxPixels int64) *Decoder {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Decoder{maxPixels: maxPixels}
}

// Decode определяет формат по содержимому и возвращает RGBA-буфер.
// Размеры читаются из заголовка до выделения памяти под пиксели.
func (d *Decoder) Decode(data []byte) (*model.PixelGrid, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > d.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return ToPixelGrid(img), nil
}

// ToPixelGrid приводит любое image.Image к NRGBA с началом координат в (0, 0).
func ToPixelGrid(img image.Image) *model.PixelGrid {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &model.PixelGrid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}
