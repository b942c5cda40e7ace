package model

// HealthResponse ответ GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// UsageBody пример тела запроса в описании API.
type UsageBody struct {
	ImageURL string `json:"imageUrl"`
}

// Usage описывает, как вызывать основной эндпоинт.
type Usage struct {
	Endpoint string    `json:"endpoint"`
	Method   string    `json:"method"`
	Body     UsageBody `json:"body"`
}

// InfoResponse статическое описание API, отдаётся на GET /.
type InfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Usage     Usage             `json:"usage"`
}

const (
	APIName    = "QR Code Decoder API"
	APIVersion = "1.0.0"
)

// NewInfoResponse возвращает описание API.
func NewInfoResponse() InfoResponse {
	return InfoResponse{
		Name:    APIName,
		Version: APIVersion,
		Endpoints: map[string]string{
			"POST /api/decode-qr": "Decode QR code from image URL",
			"GET /health":         "Health check",
			"GET /":               "API information",
		},
		Usage: Usage{
			Endpoint: "/api/decode-qr",
			Method:   "POST",
			Body:     UsageBody{ImageURL: "http://example.com/qrcode.png"},
		},
	}
}
