package a

import (
	"net/http"
	"time"
)

func bad() {
	_, _ = http.Get("http://example.com")                 // want `net/http.Get использует http.DefaultClient без таймаута`
	_, _ = http.DefaultClient.Get("http://example.com")   // want `http.DefaultClient не имеет таймаута`
	_, _ = http.Post("http://example.com", "a/b", nil)    // want `net/http.Post использует http.DefaultClient без таймаута`
}

func good() {
	c := &http.Client{Timeout: 10 * time.Second}
	_, _ = c.Get("http://example.com")
	_, _ = http.NewRequest(http.MethodGet, "http://example.com", nil)
}
