package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/QRDecoder/internal/model"
	"github.com/Totarae/QRDecoder/internal/service"
)

// Сообщения для клиента. Клиенты сравнивают их строками, менять нельзя.
const (
	MsgInvalidJSON  = "Invalid JSON in request body"
	MsgBodyTooLarge = "Request body too large"
	MsgNoQRCode     = "No QR code found in the provided image"
	MsgFetchFailed  = "Failed to fetch image from the provided URL"
	MsgInternal     = "Internal server error while processing QR code"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// MaxBodyBytes лимит тела запроса декодирования (100 KiB).
const MaxBodyBytes = 100 << 10

// QRDecoder конвейер декодирования.
type QRDecoder interface {
	Decode(ctx context.Context, imageURL string) (string, error)
}

// Handler HTTP-обработчики API.
type Handler struct {
	Decoder QRDecoder
	Logger  *zap.Logger
	now     func() time.Time
}

// NewHandler создаёт обработчик.
func NewHandler(decoder QRDecoder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Decoder: decoder,
		Logger:  logger,
		now:     time.Now,
	}
}

// DecodeQR обрабатывает POST /api/decode-qr.
func (h *Handler) DecodeQR(res http.ResponseWriter, req *http.Request) {
	body, status, err := readDecodeRequest(res, req)
	if err != nil {
		h.Logger.Debug("bad request body", zap.Int("status", status), zap.Error(err))
		msg := MsgInvalidJSON
		if status == http.StatusRequestEntityTooLarge {
			msg = MsgBodyTooLarge
		}
		writeJSON(res, status, model.NewDecodeFailure(msg))
		return
	}

	imageURL, err := imageURLFrom(body.ImageURL)
	if err == nil {
		_, err = service.ValidateImageURL(imageURL)
	}
	if err != nil {
		h.Logger.Debug("validation failed", zap.ByteString("imageUrl", body.ImageURL), zap.Error(err))
		writeJSON(res, http.StatusBadRequest, model.NewDecodeFailure(validationMessage(err)))
		return
	}

	text, err := h.Decoder.Decode(req.Context(), imageURL)
	if err != nil {
		status, msg := statusFor(err)
		h.logFailure(imageURL, status, err)
		writeJSON(res, status, model.NewDecodeFailure(msg))
		return
	}

	writeJSON(res, http.StatusOK, model.NewDecodeSuccess(text, imageURL))
}

// readDecodeRequest читает ровно один JSON-объект не длиннее MaxBodyBytes.
// Пустое тело допустимо и даёт пустой запрос.
func readDecodeRequest(res http.ResponseWriter, req *http.Request) (model.DecodeRequest, int, error) {
	var body model.DecodeRequest

	req.Body = http.MaxBytesReader(res, req.Body, MaxBodyBytes)
	dec := json.NewDecoder(req.Body)

	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, http.StatusOK, nil
		}
		return body, bodyErrorStatus(err), err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after JSON object")
		}
		return body, bodyErrorStatus(err), err
	}
	return body, http.StatusOK, nil
}

func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// imageURLFrom достаёт imageUrl из сырого JSON-значения.
// Отсутствие, null, false, 0 и "" считаются пустым значением,
// прочие не-строки заведомо не являются URL.
func imageURLFrom(raw json.RawMessage) (string, error) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) || bytes.Equal(v, []byte("false")) {
		return "", nil
	}

	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", &service.Error{Kind: service.KindValidation, Message: service.MsgInvalidURL, Err: err}
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n float64
		if err := json.Unmarshal(v, &n); err == nil && n == 0 {
			return "", nil
		}
	}
	return "", &service.Error{Kind: service.KindValidation, Message: service.MsgInvalidURL}
}

// Health обрабатывает GET /health.
func (h *Handler) Health(res http.ResponseWriter, _ *http.Request) {
	writeJSON(res, http.StatusOK, model.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}

// Info обрабатывает GET / и отдаёт описание API.
func (h *Handler) Info(res http.ResponseWriter, _ *http.Request) {
	writeJSON(res, http.StatusOK, model.NewInfoResponse())
}

// statusFor сопоставляет ошибку конвейера с HTTP-кодом и сообщением.
// Недоступный хост и таймаут отдаются как 400, а не 502/504: на это завязаны клиенты.
func statusFor(err error) (int, string) {
	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest, validationMessage(err)
	case service.KindNotFound:
		return http.StatusNotFound, MsgNoQRCode
	case service.KindFetch:
		if service.IsFetchUnavailable(err) {
			return http.StatusBadRequest, MsgFetchFailed
		}
		return http.StatusInternalServerError, MsgInternal
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

func validationMessage(err error) string {
	var e *service.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return service.MsgInvalidURL
}

func (h *Handler) logFailure(imageURL string, status int, err error) {
	fields := []zap.Field{
		zap.String("imageUrl", imageURL),
		zap.String("kind", service.KindOf(err).String()),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.Logger.Error("Error decoding QR code", fields...)
		return
	}
	h.Logger.Warn("Error decoding QR code", fields...)
}

func writeJSON(res http.ResponseWriter, status int, v interface{}) {
	res.Header().Set("Content-Type", "application/json; charset=utf-8")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(v)
}
