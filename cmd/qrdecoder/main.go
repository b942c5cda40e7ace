package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	"github.com/Totarae/QRDecoder/internal/config"
	"github.com/Totarae/QRDecoder/internal/fetcher"
	grpcv1 "github.com/Totarae/QRDecoder/internal/grpc/v1"
	"github.com/Totarae/QRDecoder/internal/handlers"
	"github.com/Totarae/QRDecoder/internal/imagedecode"
	"github.com/Totarae/QRDecoder/internal/qr"
	"github.com/Totarae/QRDecoder/internal/router"
	"github.com/Totarae/QRDecoder/internal/service"
)

func main() {
	// Инициализация конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// newDecoder собирает конвейер декодирования.
func newDecoder(cfg *config.Config, logger *zap.Logger) *service.QRService {
	return service.NewQRService(
		fetcher.New(fetcher.Options{
			Timeout:   cfg.FetchTimeout,
			UserAgent: cfg.UserAgent,
			MaxBytes:  cfg.MaxImageBytes,
		}),
		imagedecode.NewWithMaxPixels(cfg.MaxPixels),
		qr.New(),
		logger,
	)
}

func newHTTPServer(cfg *config.Config, decoder handlers.QRDecoder, logger *zap.Logger) *http.Server {
	handler := handlers.NewHandler(decoder, logger)
	r := router.NewRouter(handler, logger, router.Options{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		// запас поверх таймаута загрузки на декодирование
		WriteTimeout: cfg.FetchTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	decoder := newDecoder(cfg, logger)
	srv := newHTTPServer(cfg, decoder, logger)

	errCh := make(chan error, 2)

	var grpcSrv *grpc.Server
	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return err
		}
		grpcSrv = grpcv1.NewServer(decoder, logger)
		go func() {
			logger.Info("gRPC сервер запущен", zap.String("address", cfg.GRPCAddress))
			errCh <- grpcSrv.Serve(lis)
		}()
	}

	go func() {
		base := "http://localhost" + cfg.Addr()
		if cfg.EnableHTTPS {
			base = "https://localhost" + cfg.Addr()
		}
		logger.Info("QR Code Decoder API is running", zap.String("address", cfg.Addr()))
		logger.Info("Health check", zap.String("url", base+"/health"))
		logger.Info("API endpoint", zap.String("url", base+"/api/decode-qr"))

		var err error
		if cfg.EnableHTTPS {
			err = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Остановка сервера")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	return srv.Shutdown(shutdownCtx)
}
