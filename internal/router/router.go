package router

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/QRDecoder/internal/handlers"
	"github.com/Totarae/QRDecoder/internal/middleware"
)

// Options настройки маршрутизатора.
type Options struct {
	RateLimit float64
	RateBurst int
}

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие
	// восстановление внутри gzip: ответ 500 тоже уходит сжатым одним телом
	r.Use(middleware.RecoverMiddleware(logger, handlers.MsgInternal))

	r.Get("/", handler.Info)
	r.Get("/health", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(opts.RateLimit, opts.RateBurst, logger))
		r.Post("/api/decode-qr", handler.DecodeQR)
	})
	return r
}
