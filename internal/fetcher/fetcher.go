// Package fetcher загружает изображение по URL одним GET-запросом
// с ограничением по времени и по размеру тела.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "QR-Code-Decoder/1.0"
	DefaultMaxBytes  = 20 << 20
)

// Options параметры загрузчика. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
}

// Fetcher выполняет ограниченный по времени GET без повторов.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
}

// New создаёт Fetcher с собственным транспортом.
func New(opts Options) *Fetcher {
	return NewWithClient(newHTTPClient(), opts)
}

// NewWithClient создаёт Fetcher поверх переданного клиента.
func NewWithClient(client *http.Client, opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	return &Fetcher{
		client:    client,
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		maxBytes:  opts.MaxBytes,
	}
}

// Fetch возвращает тело ответа целиком, не глядя на Content-Type.
// Таймаут покрывает и соединение, и чтение тела.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindOther, URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: classify(err), URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindOther, URL: rawURL, Err: fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &Error{Kind: classify(err), URL: rawURL, Err: err}
	}
	if int64(len(body)) > f.maxBytes {
		return nil, &Error{Kind: KindOther, URL: rawURL, Err: ErrTooLarge}
	}
	return body, nil
}

func newHTTPClient() *http.Client {
	d := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           d.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: tr}
}
