package ports

import "context"

// RenderTarget is the mount point a renderer draws into.
// Replace discards whatever was drawn before.
type RenderTarget interface {
	Replace(content string)
}

// Renderer turns a diagram definition into visual output on a target
type Renderer interface {
	Render(ctx context.Context, definition string, target RenderTarget) error
}
