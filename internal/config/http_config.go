package config

import (
	"time"

	"github.com/aleister1102/httpget/internal/httpclient"
)

// HTTPConfig defines configuration for the outbound request
type HTTPConfig struct {
	ConnectTimeoutSecs int    `json:"connect_timeout_secs,omitempty" yaml:"connect_timeout_secs,omitempty" validate:"min=1"`
	TimeoutSecs        int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=0"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	FollowRedirects    bool   `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"min=0"`
	Proxy              string `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	MaxBodyBytes       int64  `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty" validate:"min=0"`
	EnableHTTP2        bool   `json:"enable_http2" yaml:"enable_http2"`
}

// NewDefaultHTTPConfig creates default HTTP configuration
func NewDefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		ConnectTimeoutSecs: DefaultHTTPConnectTimeoutSecs,
		TimeoutSecs:        DefaultHTTPTimeoutSecs,
		FollowRedirects:    DefaultHTTPFollowRedirects,
		MaxRedirects:       DefaultHTTPMaxRedirects,
		EnableHTTP2:        DefaultHTTPEnableHTTP2,
	}
}

// ClientConfig converts to the httpclient configuration
func (c HTTPConfig) ClientConfig() httpclient.HTTPClientConfig {
	cfg := httpclient.DefaultHTTPClientConfig()
	cfg.ConnectTimeout = time.Duration(c.ConnectTimeoutSecs) * time.Second
	cfg.Timeout = time.Duration(c.TimeoutSecs) * time.Second
	cfg.InsecureSkipVerify = c.InsecureSkipVerify
	cfg.FollowRedirects = c.FollowRedirects
	cfg.MaxRedirects = c.MaxRedirects
	cfg.Proxy = c.Proxy
	cfg.MaxBodyBytes = c.MaxBodyBytes
	cfg.EnableHTTP2 = c.EnableHTTP2
	return cfg
}
