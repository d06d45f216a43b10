// Package v1 registers the HTTP API surface.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/cinemind/cinechat/internal/profile"
	"github.com/cinemind/cinechat/plugin/ai/router"
)

// APIV1Service holds the collaborators for the v1 API.
type APIV1Service struct {
	Profile *profile.Profile
	Router  router.RouterService
}

// NewAPIV1Service creates the v1 API service.
func NewAPIV1Service(profile *profile.Profile, routerService router.RouterService) *APIV1Service {
	return &APIV1Service{
		Profile: profile,
		Router:  routerService,
	}
}

// Register wires the v1 routes into the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/chat", s.Chat)
}
