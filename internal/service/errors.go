package service

import (
	"errors"

	"github.com/Totarae/QRDecoder/internal/fetcher"
)

// Kind тип ошибки конвейера. По нему граница (HTTP, gRPC) выбирает код ответа.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindNotFound
	KindFetch
	KindImageDecode
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindFetch:
		return "fetch"
	case KindImageDecode:
		return "image_decode"
	default:
		return "unclassified"
	}
}

// Сообщения, которые уходят клиенту как есть.
const (
	MsgImageURLRequired = "imageUrl is required in request body"
	MsgInvalidURL       = "Invalid URL format"
	MsgInvalidScheme    = "URL must use HTTP or HTTPS protocol"
	MsgNotFound         = "No QR code found in the image"
)

// Error ошибка конвейера с типом.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает тип ошибки; всё, что не *Error, считается KindUnclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

// IsFetchUnavailable сообщает, что картинку не удалось скачать
// из-за недоступного хоста или таймаута.
func IsFetchUnavailable(err error) bool {
	if KindOf(err) != KindFetch {
		return false
	}
	switch fetcher.KindOf(err) {
	case fetcher.KindUnreachable, fetcher.KindTimeout:
		return true
	default:
		return false
	}
}
