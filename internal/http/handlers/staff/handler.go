package staff

import "github.com/flightbase-api/internal/provider"

// Handler serves authenticated staff endpoints: catalog writes, staff
// management and login log queries.
type Handler struct {
	*provider.Container
}

// New creates the staff handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
