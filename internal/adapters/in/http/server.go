// Package http is the inbound HTTP adapter: session-based login and the
// order-status dashboard endpoint.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/snapshot"

	"github.com/labstack/echo/v4"
)

// sessionCookieName carries the session token between requests.
const sessionCookieName = "session_token"

// DefaultSnapshotMaxAge is how old a cached dashboard snapshot may be before
// a request recomputes it live.
const DefaultSnapshotMaxAge = 15 * time.Minute

// DashboardHandler is the dashboard query use case the server depends on.
type DashboardHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
}

// AuthHandler is the authentication query use case the server depends on.
type AuthHandler interface {
	Handle(ctx context.Context, query queries.AuthenticateUserQuery) (queries.AuthenticateUserQueryResponse, error)
}

// Config carries the server's dashboard settings.
type Config struct {
	// WindowHours is the creation-time window a dashboard request covers,
	// counted back from the request time.
	WindowHours int

	// SnapshotMaxAge bounds how stale a cached snapshot may be served;
	// zero selects DefaultSnapshotMaxAge.
	SnapshotMaxAge time.Duration
}

// Server coordinates between HTTP handlers and application use cases.
// Dashboard requests prefer the snapshot the background refresh job keeps in
// the cache and fall back to a live computation when it is stale or absent.
type Server struct {
	dashboardHandler DashboardHandler
	authHandler      AuthHandler
	sessions         *SessionStore
	cache            *snapshot.Cache[queries.GetDashboardQueryResponse]

	windowHours    int
	snapshotMaxAge time.Duration
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	dashboardHandler DashboardHandler,
	authHandler AuthHandler,
	sessions *SessionStore,
	cache *snapshot.Cache[queries.GetDashboardQueryResponse],
	cfg Config,
) (*Server, error) {
	if dashboardHandler == nil {
		return nil, errs.NewValueIsRequiredError("dashboardHandler")
	}
	if authHandler == nil {
		return nil, errs.NewValueIsRequiredError("authHandler")
	}
	if sessions == nil {
		return nil, errs.NewValueIsRequiredError("sessions")
	}
	if cache == nil {
		return nil, errs.NewValueIsRequiredError("cache")
	}
	if cfg.WindowHours <= 0 {
		return nil, errs.NewValueIsInvalidError("WindowHours")
	}

	maxAge := cfg.SnapshotMaxAge
	if maxAge <= 0 {
		maxAge = DefaultSnapshotMaxAge
	}

	return &Server{
		dashboardHandler: dashboardHandler,
		authHandler:      authHandler,
		sessions:         sessions,
		cache:            cache,
		windowHours:      cfg.WindowHours,
		snapshotMaxAge:   maxAge,
	}, nil
}

// RegisterRoutes attaches the server's routes to an Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/login", s.Login)
	e.POST("/logout", s.Logout)
	e.GET("/api/v1/dashboard", s.GetDashboard, s.requireSession)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /login - verifies credentials and issues a session cookie.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewAuthenticateUserQuery(request.Username, request.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Username and password are required",
		})
	}

	user, err := s.authHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid credentials",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to verify credentials",
		})
	}

	token := s.sessions.Issue(user.ID, user.Username)
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, loginResponse{Username: user.Username})
}

// Logout handles POST /logout - revokes the current session.
// Logging out without a session succeeds silently.
func (s *Server) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
		s.sessions.Revoke(cookie.Value)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard - serves the order-status
// dashboard for the configured creation-time window.
func (s *Server) GetDashboard(ctx echo.Context) error {
	now := time.Now()

	if cached, ok := s.cache.GetFresh(now, s.snapshotMaxAge); ok {
		_, computedAt, _ := s.cache.Get()
		return ctx.JSON(http.StatusOK, toDashboardResponse(cached, computedAt))
	}

	query, err := queries.NewGetDashboardQuery(now.Add(-time.Duration(s.windowHours)*time.Hour), now)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build dashboard query",
		})
	}

	result, err := s.dashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrUpstreamUnavailable) {
			return ctx.JSON(http.StatusBadGateway, errorResponse{
				Code:    http.StatusBadGateway,
				Message: "Order source is unavailable",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build dashboard",
		})
	}

	s.cache.Store(result, now)
	return ctx.JSON(http.StatusOK, toDashboardResponse(result, now))
}

// requireSession rejects requests without a valid session cookie.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(sessionCookieName)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Login required",
			})
		}

		if _, ok := s.sessions.Get(cookie.Value); !ok {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Session expired",
			})
		}

		return next(ctx)
	}
}
