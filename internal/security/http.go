package security

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClientConfig holds configuration for the clients used by in-process tools.
type HTTPClientConfig struct {
	Timeout            time.Duration
	InsecureSkipVerify bool  // Scan targets often serve self-signed certificates
	MaxResponseSize    int64 // Maximum response body size in bytes
	MinTLSVersion      uint16
}

// DefaultHTTPClientConfig returns the configuration used for scan targets.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:            30 * time.Second,
		InsecureSkipVerify: true,
		MaxResponseSize:    10 * 1024 * 1024, // 10MB
		MinTLSVersion:      tls.VersionTLS12,
	}
}

// NewHTTPClient creates an HTTP client with bounded timeouts and connection reuse.
func NewHTTPClient(config HTTPClientConfig) *http.Client {
	return &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.InsecureSkipVerify,
				MinVersion:         config.MinTLSVersion,
			},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 15 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
			IdleConnTimeout:       30 * time.Second,
		},
	}
}

// LimitedReadAll reads body up to maxSize bytes and closes it.
func LimitedReadAll(body io.ReadCloser, maxSize int64) ([]byte, error) {
	defer body.Close()
	return io.ReadAll(io.LimitReader(body, maxSize))
}

// Do sends req and reads at most maxSize bytes of the response body.
// Responses outside the 2xx range are returned together with an error.
func Do(client *http.Client, req *http.Request, maxSize int64) (*http.Response, []byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	body, err := LimitedReadAll(resp.Body, maxSize)
	if err != nil {
		return resp, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, body, fmt.Errorf("%s %s: unexpected status %s", req.Method, req.URL.Redacted(), resp.Status)
	}

	return resp, body, nil
}
