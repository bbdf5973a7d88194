package httpclient

import (
	"time"
)

// DefaultConnectTimeout bounds connection establishment for every request.
const DefaultConnectTimeout = 15 * time.Second

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	ConnectTimeout      time.Duration // Connection dial timeout
	Timeout             time.Duration // Overall request timeout, 0 for none
	TLSHandshakeTimeout time.Duration // TLS handshake timeout
	KeepAlive           time.Duration // Keep-alive duration
	InsecureSkipVerify  bool          // Skip TLS verification
	FollowRedirects     bool          // Whether to follow redirects
	MaxRedirects        int           // Maximum number of redirects to follow, 0 keeps the net/http policy
	Proxy               string        // Proxy URL, empty uses the environment
	MaxBodyBytes        int64         // Maximum body size to read, 0 for no limit
	EnableHTTP2         bool          // Enable HTTP/2 support
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		ConnectTimeout:      DefaultConnectTimeout,
		Timeout:             0,
		TLSHandshakeTimeout: 10 * time.Second,
		KeepAlive:           30 * time.Second,
		InsecureSkipVerify:  false,
		FollowRedirects:     true,
		MaxRedirects:        0,
		MaxBodyBytes:        0,
		EnableHTTP2:         true,
	}
}
