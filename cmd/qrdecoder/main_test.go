package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/QRDecoder/internal/config"
	"github.com/Totarae/QRDecoder/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:          "3000",
		FetchTimeout:  time.Second,
		UserAgent:     "QR-Code-Decoder/1.0",
		MaxImageBytes: 1 << 20,
		MaxPixels:     1 << 20,
		LogLevel:      "info",
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig()
	srv := newHTTPServer(cfg, newDecoder(cfg, zap.NewNop()), zap.NewNop())

	assert.Equal(t, ":3000", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/decode-qr", strings.NewReader(`{}`))
	srv.Handler.ServeHTTP(rec, req)

	var out model.DecodeFailure
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "imageUrl is required in request body", out.Error)
}
