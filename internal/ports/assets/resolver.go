package assets

import "context"

// Resolver traduce un ImageRef opaco (p.ej. "dog1") a una URL renderizable.
type Resolver interface {
	URL(ctx context.Context, ref string) (string, error)
}
