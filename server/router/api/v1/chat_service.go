package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatRequest is one user message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the single text answer. Failures are embedded in the
// response text; there is no separate error shape on this surface.
type ChatResponse struct {
	Response string `json:"response"`
}

// Chat answers one chat message.
func (s *APIV1Service) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	answer := s.Router.Handle(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, ChatResponse{Response: answer})
}
