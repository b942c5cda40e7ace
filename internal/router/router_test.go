package router_test

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/QRDecoder/internal/fetcher"
	"github.com/Totarae/QRDecoder/internal/handlers"
	"github.com/Totarae/QRDecoder/internal/imagedecode"
	"github.com/Totarae/QRDecoder/internal/model"
	"github.com/Totarae/QRDecoder/internal/qr"
	"github.com/Totarae/QRDecoder/internal/qr/qrtest"
	"github.com/Totarae/QRDecoder/internal/router"
	"github.com/Totarae/QRDecoder/internal/service"
)

const payload = "https://example.com/event/2024?seat=A17"

// newImageServer отдаёт картинки для сквозных тестов.
func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	qrPNG := qrtest.PNG(t, payload, 300)
	blank := qrtest.BlankPNG(t, 200)

	mux := http.NewServeMux()
	mux.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(qrPNG)
	})
	mux.HandleFunc("/qr.bin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(qrPNG)
	})
	mux.HandleFunc("/blank.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(blank)
	})
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not an image</html>"))
	})
	mux.HandleFunc("/slow.png", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	svc := service.NewQRService(
		fetcher.New(fetcher.Options{Timeout: 200 * time.Millisecond}),
		imagedecode.New(),
		qr.New(),
		logger,
	)
	h := handlers.NewHandler(svc, logger)

	api := httptest.NewServer(router.NewRouter(h, logger, router.Options{}))
	t.Cleanup(api.Close)
	return api
}

// decodeResponse объединяет успешный ответ и ответ с ошибкой.
type decodeResponse struct {
	Success  bool   `json:"success"`
	Data     string `json:"data"`
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error"`
}

func decode(t *testing.T, api *httptest.Server, imageURL string) (int, decodeResponse) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"imageUrl": imageURL})
	require.NoError(t, err)

	resp, err := http.Post(api.URL+"/api/decode-qr", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out decodeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestDecodeQR_EndToEnd(t *testing.T) {
	images := newImageServer(t)
	api := newAPI(t)

	t.Run("decodes qr", func(t *testing.T) {
		status, out := decode(t, api, images.URL+"/qr.png")
		assert.Equal(t, http.StatusOK, status)
		assert.True(t, out.Success)
		assert.Equal(t, payload, out.Data)
		assert.Equal(t, images.URL+"/qr.png", out.ImageURL)
	})

	t.Run("ignores content type", func(t *testing.T) {
		status, out := decode(t, api, images.URL+"/qr.bin")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, payload, out.Data)
	})

	t.Run("idempotent", func(t *testing.T) {
		_, first := decode(t, api, images.URL+"/qr.png")
		_, second := decode(t, api, images.URL+"/qr.png")
		assert.Equal(t, first.Data, second.Data)
	})

	t.Run("no qr code", func(t *testing.T) {
		status, out := decode(t, api, images.URL+"/blank.png")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "No QR code found in the provided image", out.Error)
	})

	t.Run("not an image", func(t *testing.T) {
		status, out := decode(t, api, images.URL+"/text")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error while processing QR code", out.Error)
	})

	t.Run("upstream 404", func(t *testing.T) {
		status, _ := decode(t, api, images.URL+"/missing.png")
		assert.Equal(t, http.StatusInternalServerError, status)
	})

	t.Run("timeout", func(t *testing.T) {
		start := time.Now()
		status, out := decode(t, api, images.URL+"/slow.png")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Failed to fetch image from the provided URL", out.Error)
		assert.Less(t, time.Since(start), 3*time.Second)
	})
}

func TestDecodeQR_UnreachableHost(t *testing.T) {
	api := newAPI(t)

	closed := httptest.NewServer(http.NotFoundHandler())
	addr := closed.URL
	closed.Close()

	status, out := decode(t, api, addr+"/qr.png")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Failed to fetch image from the provided URL", out.Error)
}

func TestRoutes(t *testing.T) {
	api := newAPI(t)

	resp, err := http.Get(api.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health model.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
	_, err = time.Parse(time.RFC3339Nano, health.Timestamp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	info, err := http.Get(api.URL + "/")
	require.NoError(t, err)
	defer info.Body.Close()
	assert.Equal(t, http.StatusOK, info.StatusCode)

	wrongMethod, err := http.Get(api.URL + "/api/decode-qr")
	require.NoError(t, err)
	defer wrongMethod.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, wrongMethod.StatusCode)
}

type panicDecoder struct{}

func (panicDecoder) Decode(context.Context, string) (string, error) {
	panic("decoder exploded")
}

func TestDecodeQR_PanicWithGzip(t *testing.T) {
	logger := zap.NewNop()
	r := router.NewRouter(handlers.NewHandler(panicDecoder{}, logger), logger, router.Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/decode-qr", strings.NewReader(`{"imageUrl":"http://example.com/qr.png"}`))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)

	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	// ровно один JSON-документ, без пустого тела 200 перед ним
	var out model.DecodeFailure
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Internal server error while processing QR code", out.Error)
}
