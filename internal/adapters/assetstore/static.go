package assetstore

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"pet-explorer/internal/ports/assets"
)

var ErrEmptyRef = errors.New("asset ref is empty")

var (
	_ assets.Resolver = (*Static)(nil)
	_ assets.Resolver = (*S3)(nil)
)

// Static arma URLs con un BaseURL fijo: <base>/<ref><ext>.
type Static struct {
	BaseURL string
	Ext     string // default ".png"
}

func NewStatic(baseURL string) (*Static, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return nil, err
		}
	}
	return &Static{BaseURL: strings.TrimRight(baseURL, "/"), Ext: ".png"}, nil
}

func (s *Static) URL(_ context.Context, ref string) (string, error) {
	key, err := objectKey(ref, s.Ext)
	if err != nil {
		return "", err
	}
	if s.BaseURL == "" {
		return "/assets/" + key, nil
	}
	return s.BaseURL + "/" + key, nil
}

func objectKey(ref, ext string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrEmptyRef
	}
	if ext == "" {
		ext = ".png"
	}
	return url.PathEscape(ref) + ext, nil
}
