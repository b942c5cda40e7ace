package model

import "image"

// PixelGrid — декодированное изображение: RGBA без премультипликации,
// построчно, по 4 байта на пиксель. len(Pix) == Width*Height*4.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []byte
}

// Valid проверяет согласованность размеров и буфера.
func (g *PixelGrid) Valid() bool {
	return g != nil && g.Width > 0 && g.Height > 0 && len(g.Pix) == g.Width*g.Height*4
}

// Image оборачивает буфер в image.NRGBA без копирования.
func (g *PixelGrid) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.Pix,
		Stride: g.Width * 4,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}
