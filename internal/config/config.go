package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config хранит конфигурацию сервера
type Config struct {
	Port          string        `json:"port"`
	ServerAddress string        `json:"server_address"`
	FetchTimeout  time.Duration `json:"fetch_timeout"`
	UserAgent     string        `json:"user_agent"`
	MaxImageBytes int64         `json:"max_image_bytes"`
	MaxPixels     int64         `json:"max_image_pixels"`
	RateLimit     float64       `json:"rate_limit"`
	RateBurst     int           `json:"rate_burst"`
	LogLevel      string        `json:"log_level"`
	EnableHTTPS   bool          `json:"enable_https"`
	TLSCertPath   string        `json:"tls_cert_path"`
	TLSKeyPath    string        `json:"tls_key_path"`
	GRPCAddress   string        `json:"grpc_address"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("SERVER_ADDRESS", "")
	v.SetDefault("FETCH_TIMEOUT", "10s")
	v.SetDefault("USER_AGENT", "QR-Code-Decoder/1.0")
	v.SetDefault("MAX_IMAGE_BYTES", 20<<20)
	v.SetDefault("MAX_IMAGE_PIXELS", 16_000_000)
	v.SetDefault("RATE_LIMIT", 0)
	v.SetDefault("RATE_BURST", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_HTTPS", false)
	v.SetDefault("TLS_CERT_PATH", "cert.pem")
	v.SetDefault("TLS_KEY_PATH", "key.pem")
	v.SetDefault("GRPC_ADDRESS", "")
}

// NewConfig инициализирует конфигурацию из аргументов командной строки процесса.
func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load собирает конфигурацию. Приоритет: флаги > переменные окружения > .env >
// JSON-файл конфигурации > значения по умолчанию.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("qrdecoder", flag.ContinueOnError)
	port := fs.String("p", "", "listen port")
	serverAddress := fs.String("a", "", "server address (host:port), overrides -p")
	fetchTimeout := fs.Duration("timeout", 0, "image fetch timeout")
	rateLimit := fs.Float64("r", 0, "requests per second for /api/decode-qr, 0 disables")
	logLevel := fs.String("l", "", "log level")
	enableHTTPS := fs.Bool("s", false, "enable HTTPS")
	tlsCertPath := fs.String("cert", "", "path to TLS certificate")
	tlsKeyPath := fs.String("key", "", "path to TLS key")
	grpcAddress := fs.String("g", "", "gRPC listen address")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	// JSON-файл: флаг, иначе переменная CONFIG
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", *configPath, err)
		}
	}

	// .env, если есть (не переопределяет переменные окружения!)
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetString("PORT"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		FetchTimeout:  v.GetDuration("FETCH_TIMEOUT"),
		UserAgent:     v.GetString("USER_AGENT"),
		MaxImageBytes: v.GetInt64("MAX_IMAGE_BYTES"),
		MaxPixels:     v.GetInt64("MAX_IMAGE_PIXELS"),
		RateLimit:     v.GetFloat64("RATE_LIMIT"),
		RateBurst:     v.GetInt("RATE_BURST"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		EnableHTTPS:   v.GetBool("ENABLE_HTTPS"),
		TLSCertPath:   v.GetString("TLS_CERT_PATH"),
		TLSKeyPath:    v.GetString("TLS_KEY_PATH"),
		GRPCAddress:   v.GetString("GRPC_ADDRESS"),
	}

	// Если флаг передан — он главнее всего
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = *port
		case "a":
			cfg.ServerAddress = *serverAddress
		case "timeout":
			cfg.FetchTimeout = *fetchTimeout
		case "r":
			cfg.RateLimit = *rateLimit
		case "l":
			cfg.LogLevel = *logLevel
		case "s":
			cfg.EnableHTTPS = *enableHTTPS
		case "cert":
			cfg.TLSCertPath = *tlsCertPath
		case "key":
			cfg.TLSKeyPath = *tlsKeyPath
		case "g":
			cfg.GRPCAddress = *grpcAddress
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}
	return cfg, nil
}

// Addr адрес, на котором слушает HTTP-сервер.
func (cfg *Config) Addr() string {
	if cfg.ServerAddress != "" {
		return cfg.ServerAddress
	}
	return ":" + cfg.Port
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		p, err := strconv.Atoi(cfg.Port)
		if err != nil || p < 1 || p > 65535 {
			return fmt.Errorf("некорректный порт %q", cfg.Port)
		}
	}
	if cfg.FetchTimeout <= 0 {
		return errors.New("таймаут загрузки должен быть положительным")
	}
	if cfg.MaxImageBytes <= 0 {
		return errors.New("лимит размера изображения должен быть положительным")
	}
	if cfg.MaxPixels <= 0 {
		return errors.New("лимит числа пикселей должен быть положительным")
	}
	if cfg.RateLimit < 0 {
		return errors.New("лимит запросов не может быть отрицательным")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("некорректный уровень логирования: %w", err)
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("для HTTPS нужны сертификат и ключ")
	}
	return nil
}
