package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Kind классифицирует неудачную загрузку изображения.
type Kind int

const (
	// KindOther любая другая ошибка транспорта, включая не-2xx ответ.
	KindOther Kind = iota
	// KindUnreachable DNS не разрешился или соединение не установлено.
	KindUnreachable
	// KindTimeout истекло время ожидания.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "network_unreachable"
	case KindTimeout:
		return "timeout"
	default:
		return "other_fetch_error"
	}
}

var (
	// ErrTooLarge тело ответа превысило лимит.
	ErrTooLarge = errors.New("image exceeds size limit")
	// ErrBadStatus сервер ответил не-2xx статусом.
	ErrBadStatus = errors.New("unexpected response status")
)

// Error ошибка загрузки с классификацией.
type Error struct {
	Kind Kind
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает классификацию ошибки загрузки; для чужих ошибок — KindOther.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindOther
}

// classify определяет тип транспортной ошибки.
// Таймаут проверяется первым: DNS и dial тоже умеют истекать по времени.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	// клиент ушёл сам
	if errors.Is(err, context.Canceled) {
		return KindOther
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindUnreachable
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return KindUnreachable
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindUnreachable
	}
	return KindOther
}
