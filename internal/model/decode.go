package model

import "encoding/json"

// DecodeRequest представляет тело запроса POST /api/decode-qr.
// imageUrl хранится как есть: клиенты присылают не только строки.
type DecodeRequest struct {
	ImageURL json.RawMessage `json:"imageUrl"`
}

// DecodeSuccess успешный ответ. data отдаётся всегда, даже пустой.
type DecodeSuccess struct {
	Success  bool   `json:"success"`
	Data     string `json:"data"`
	ImageURL string `json:"imageUrl"`
}

// DecodeFailure ответ с ошибкой.
type DecodeFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewDecodeSuccess собирает успешный ответ.
func NewDecodeSuccess(data, imageURL string) DecodeSuccess {
	return DecodeSuccess{Success: true, Data: data, ImageURL: imageURL}
}

// NewDecodeFailure собирает ответ с ошибкой.
func NewDecodeFailure(msg string) DecodeFailure {
	return DecodeFailure{Success: false, Error: msg}
}
