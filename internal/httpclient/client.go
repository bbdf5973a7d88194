package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPResponse is the captured result of one request.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// BodyText returns the body as text, replacing invalid UTF-8 sequences.
func (r *HTTPResponse) BodyText() string {
	return DecodeBody(r.Body)
}

// HTTPClient wraps net/http.Client with the connect timeout and body handling
// used by every fetch.
type HTTPClient struct {
	client     *http.Client
	config     HTTPClientConfig
	logger     zerolog.Logger
	bufferPool sync.Pool
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.ConnectTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, common.WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Debug().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("connect_timeout", config.ConnectTimeout).
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger,
		bufferPool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 32*1024)
				return &b
			},
		},
	}, nil
}

// Get issues exactly one GET to rawURL with headers attached. Any failure
// before a response is fully read is returned as *common.RequestFailedError.
func (c *HTTPClient) Get(ctx context.Context, rawURL string, headers map[string]string) (*HTTPResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, common.NewRequestFailedError(rawURL, err)
	}

	for key, value := range headers {
		// net/http ignores Host in the header map
		if strings.EqualFold(key, "Host") {
			httpReq.Host = value
			continue
		}
		httpReq.Header.Set(key, value)
	}

	c.logger.Debug().Str("url", rawURL).Int("headers", len(headers)).Msg("Sending GET request")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, common.NewRequestFailedError(rawURL, err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, common.NewRequestFailedError(rawURL, err)
	}

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    make(map[string]string),
		Body:       body,
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			httpResp.Headers[key] = values[0]
		}
	}

	c.logger.Debug().
		Str("url", rawURL).
		Int("status_code", resp.StatusCode).
		Int("content_size", len(body)).
		Msg("Received response")

	return httpResp, nil
}

// readBody copies the body through a pooled buffer and returns an owned copy.
func (c *HTTPClient) readBody(r io.Reader) ([]byte, error) {
	if c.config.MaxBodyBytes > 0 {
		r = io.LimitReader(r, c.config.MaxBodyBytes)
	}

	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := bytes.NewBuffer((*bufPtr)[:0])

	if _, err := io.Copy(buf, r); err != nil {
		return nil, common.WrapError(err, "failed to read response body")
	}

	body := make([]byte, buf.Len())
	copy(body, buf.Bytes())
	return body, nil
}
