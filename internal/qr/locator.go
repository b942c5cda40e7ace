// Package qr ищет и декодирует QR-код в PixelGrid с помощью gozxing.
package qr

import (
	"errors"
	"fmt"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/Totarae/QRDecoder/internal/model"
)

var (
	// ErrNotFound на изображении нет читаемого QR-кода.
	ErrNotFound = errors.New("no QR code found in the image")
	// ErrInvalidGrid размеры не сходятся с длиной буфера.
	ErrInvalidGrid = errors.New("invalid pixel grid")
)

// Locator ищет QR-код сначала в прямой полярности, затем в инвертированной.
type Locator struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// New создаёт Locator.
func New() *Locator {
	return &Locator{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Locate возвращает текст QR-кода как есть, без проверок содержимого.
func (l *Locator) Locate(grid *model.PixelGrid) (string, error) {
	if !grid.Valid() {
		return "", ErrInvalidGrid
	}

	src := gozxing.NewLuminanceSourceFromImage(grid.Image())

	text, err := l.decode(src)
	if errors.Is(err, ErrNotFound) {
		// светлый код на тёмном фоне
		text, err = l.decode(src.Invert())
	}
	return text, err
}

func (l *Locator) decode(src gozxing.LuminanceSource) (string, error) {
	bmp, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(src))
	if err != nil {
		return "", fmt.Errorf("binarize: %w", err)
	}

	// Reader хранит состояние между вызовами, поэтому создаём на каждый запрос.
	result, err := qrcode.NewQRCodeReader().Decode(bmp, l.hints)
	if err != nil {
		var re gozxing.ReaderException
		if errors.As(err, &re) {
			return "", fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return "", fmt.Errorf("decode qr: %w", err)
	}
	return result.GetText(), nil
}
