package utils

import (
	"net/http"
	"time"
)

const (
	UserAgent = "steammini/1.0 (+https://github.com/marcus-crane/steammini)"
)

type UARoundtripper struct {
	RT http.RoundTripper
}

func (uart *UARoundtripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := uart.RT
	if rt == nil {
		rt = http.DefaultTransport
	}
	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return rt.RoundTrip(req)
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &UARoundtripper{RT: http.DefaultTransport},
	}
}
