// Package qrtest генерирует изображения с QR-кодами для тестов.
package qrtest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Image возвращает QR-код с текстом text размером size×size.
func Image(t testing.TB, text string, size int) image.Image {
	t.Helper()

	matrix, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, size, size, nil)
	if err != nil {
		t.Fatalf("encode qr %q: %v", text, err)
	}
	return matrix
}

// PNG возвращает QR-код в виде PNG.
func PNG(t testing.TB, text string, size int) []byte {
	t.Helper()
	return encodePNG(t, Image(t, text, size))
}

// InvertedPNG возвращает QR-код со светлыми модулями на тёмном фоне.
func InvertedPNG(t testing.TB, text string, size int) []byte {
	t.Helper()

	src := Image(t, text, size)
	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			dst.SetGray(x, y, color.Gray{Y: 255 - g.Y})
		}
	}
	return encodePNG(t, dst)
}

// BlankPNG возвращает белое изображение без кода.
func BlankPNG(t testing.TB, size int) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return encodePNG(t, img)
}

func encodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
