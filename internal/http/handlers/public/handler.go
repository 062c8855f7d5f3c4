package public

import "github.com/flightbase-api/internal/provider"

// Handler serves unauthenticated endpoints: login, registration, the
// read-only catalog, sensor readings and the weather proxy.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
