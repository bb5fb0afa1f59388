package odin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-explorer/internal/platform/httpclient"
	"pet-explorer/internal/ports/auth"
)

var (
	ErrOdinNotConfigured = errors.New("odin client not configured")
	ErrOdinUnauthorized  = errors.New("odin unauthorized")
	ErrOdinUpstream      = errors.New("odin upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Config del cliente Odin (IAM remoto). Viene de ODIN_BASE_URL / ODIN_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	hc, err := httpclient.New(cfg.BaseURL, httpclient.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// VerifyToken llama a Odin para verificar un token y traer claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrOdinNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrOdinUnauthorized
	}

	headers := map[string]string{
		c.apiKeyHeader:  c.apiKey,
		"Authorization": "Bearer " + token,
	}

	var out verifyResponse
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath, headers, map[string]string{"token": token}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.Unauthorized() {
			return auth.Claims{}, ErrOdinUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrOdinUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrOdinUpstream)
	}

	return auth.Claims{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
		Role:   strings.TrimSpace(out.Role),
	}, nil
}
