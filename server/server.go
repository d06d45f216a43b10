// Package server hosts the HTTP front-end.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cinemind/cinechat/internal/profile"
	"github.com/cinemind/cinechat/plugin/ai/router"
	apiv1 "github.com/cinemind/cinechat/server/router/api/v1"
)

// Server is the cinechat HTTP server.
type Server struct {
	e       *echo.Echo
	profile *profile.Profile
}

// New creates the HTTP server and registers the API routes.
func New(profile *profile.Profile, routerService router.RouterService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	apiv1.NewAPIV1Service(profile, routerService).Register(e)

	return &Server{
		e:       e,
		profile: profile,
	}
}

// Start runs the server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
	slog.Info("server started", "address", address, "mode", s.profile.Mode)

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	if err := s.e.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.e.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
}
