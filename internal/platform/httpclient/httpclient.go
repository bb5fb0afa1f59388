// Package httpclient es el cliente JSON compartido por los adapters que llaman
// servicios externos (hoy: el verificador Odin).
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "pet-explorer"

	maxBody = 1 << 20
)

type Client struct {
	HTTP      *http.Client
	BaseURL   string // vacío => DoJSON solo acepta URLs absolutas
	UserAgent string
}

type Option func(*Client)

// WithTimeout: <= 0 deja DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTP.Timeout = d
		}
	}
}

// WithTransport para tests o proxies.
func WithTransport(tr http.RoundTripper) Option {
	return func(c *Client) {
		if tr != nil {
			c.HTTP.Transport = tr
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = strings.TrimSpace(ua) }
}

// New valida baseURL (si viene) y aplica las opciones.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		UserAgent: DefaultUserAgent,
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HTTPError es una respuesta no-2xx; Body va recortado.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Unauthorized agrupa 401 y 403, que los verificadores tratan igual.
func (e *HTTPError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DoJSON envía in como JSON (si no es nil) y decodifica la respuesta en out (si no es nil).
// Un status fuera de 2xx vuelve como *HTTPError.
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, headers map[string]string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	target, err := c.target(pathOrURL)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, target, in)
	if err != nil {
		return err
	}
	for k, v := range headers {
		if strings.TrimSpace(k) != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, target string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return req, nil
}

func (c *Client) target(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	switch {
	case pathOrURL == "":
		return "", errors.New("httpclient: empty url")
	case strings.HasPrefix(pathOrURL, "http://"), strings.HasPrefix(pathOrURL, "https://"):
		return pathOrURL, nil
	case c.BaseURL == "":
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	return c.BaseURL + "/" + strings.TrimLeft(pathOrURL, "/"), nil
}
