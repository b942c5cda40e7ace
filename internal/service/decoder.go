package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Totarae/QRDecoder/internal/model"
	"github.com/Totarae/QRDecoder/internal/qr"
)

//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks

// ImageFetcher скачивает изображение.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// ImageDecoder превращает байты в PixelGrid.
type ImageDecoder interface {
	Decode(data []byte) (*model.PixelGrid, error)
}

// QRLocator ищет QR-код; если его нет — возвращает qr.ErrNotFound.
type QRLocator interface {
	Locate(grid *model.PixelGrid) (string, error)
}

// QRService конвейер URL -> байты -> пиксели -> текст.
type QRService struct {
	Fetcher ImageFetcher
	Images  ImageDecoder
	Locator QRLocator
	Logger  *zap.Logger
}

func NewQRService(fetcher ImageFetcher, images ImageDecoder, locator QRLocator, logger *zap.Logger) *QRService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QRService{
		Fetcher: fetcher,
		Images:  images,
		Locator: locator,
		Logger:  logger,
	}
}

// Decode проверяет URL и прогоняет его через конвейер.
// Ошибки всегда *Error; текст кода возвращается без изменений.
func (s *QRService) Decode(ctx context.Context, imageURL string) (string, error) {
	if _, err := ValidateImageURL(imageURL); err != nil {
		return "", err
	}

	data, err := s.Fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return "", &Error{Kind: KindFetch, Message: "failed to fetch image", Err: err}
	}
	s.Logger.Debug("image fetched", zap.String("url", imageURL), zap.Int("bytes", len(data)))

	// дальше контекст не нужен: декодирование идёт до конца
	grid, err := s.Images.Decode(data)
	if err != nil {
		return "", &Error{Kind: KindImageDecode, Message: "failed to decode image", Err: err}
	}

	text, err := s.Locator.Locate(grid)
	if err != nil {
		if errors.Is(err, qr.ErrNotFound) {
			return "", &Error{Kind: KindNotFound, Message: MsgNotFound, Err: err}
		}
		return "", &Error{Kind: KindUnclassified, Message: "failed to decode QR code", Err: err}
	}
	return text, nil
}
