// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and page handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, response
// compression, and security headers, and owns the declarative table of
// static pages.
//
// Design goals:
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Session-gated group for everything behind the login
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/config"
	"github.com/tbourn/go-hosting-portal/internal/domain"
	"github.com/tbourn/go-hosting-portal/internal/http/handlers"
	"github.com/tbourn/go-hosting-portal/internal/http/middleware"
	"github.com/tbourn/go-hosting-portal/internal/render"
	"github.com/tbourn/go-hosting-portal/internal/repo"
	"github.com/tbourn/go-hosting-portal/internal/services"
	"github.com/tbourn/go-hosting-portal/internal/session"
)

// userRepoShim adapts the repository free functions to the
// services.UserRepo interface expected by the AuthService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type userRepoShim struct{}

// GetUserByUsername proxies repo.GetUserByUsername.
func (userRepoShim) GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.GetUserByUsername(ctx, db, username)
}

// serviceRepoShim adapts the repository free functions to services.ServiceRepo.
type serviceRepoShim struct{}

// ListServices proxies repo.ListServices.
func (serviceRepoShim) ListServices(ctx context.Context, db *gorm.DB) ([]domain.Service, error) {
	return repo.ListServices(ctx, db)
}

// GetServiceByTitle proxies repo.GetServiceByTitle.
func (serviceRepoShim) GetServiceByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.Service, error) {
	return repo.GetServiceByTitle(ctx, db, title)
}

// messageRepoShim adapts the repository free functions to services.MessageRepo.
type messageRepoShim struct{}

// CreateMessage proxies repo.CreateMessage.
func (messageRepoShim) CreateMessage(ctx context.Context, db *gorm.DB, name, email, body, topics string) (*domain.Message, error) {
	return repo.CreateMessage(ctx, db, name, email, body, topics)
}

// staticPages is the declarative {path → template} table consumed by one
// generic handler. Adding a page is one line here plus its template file.
var staticPages = []struct {
	Path     string
	Template string
	Title    string
}{
	{"/about", "about.html", "Sobre nosotros"},
	{"/vps", "vps.html", "Servidores VPS"},
	{"/dedicados", "dedicados.html", "Servidores dedicados"},
	{"/dominios", "dominios.html", "Registro de dominios"},
	{"/ssl", "ssl.html", "Certificados SSL"},
	{"/backup", "backup.html", "Copias de seguridad"},
	{"/correo", "correo.html", "Correo corporativo"},
	{"/seguridad", "seguridad.html", "Seguridad"},
	{"/monitoreo", "monitoreo.html", "Monitoreo"},
	{"/creador", "creador.html", "Creador de sitios"},
}

// RegisterRoutes attaches all middleware and endpoints to the given Gin
// engine, then mounts the public login routes and the session-gated pages.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression for the rendered pages
//  7. Metrics
//  8. Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, rnd render.Renderer, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery (after logger so panics carry the request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (64 KiB covers every form on the site)
	r.Use(limitBody(64 << 10))

	// 6) Compress rendered HTML
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Security headers; authenticated pages must not be cached
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		NoStore:    true,
	}))

	// Dependency injection: services ← repo/db, handlers ← services
	authSvc := services.NewAuthService(db, userRepoShim{}, sessions)
	catalogSvc := services.NewCatalogService(db, serviceRepoShim{})
	contactSvc := services.NewContactService(db, messageRepoShim{})
	h := handlers.New(authSvc, catalogSvc, contactSvc, sessions, rnd, handlers.CookieOptions{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	})

	// Fallbacks
	r.NoRoute(h.NotFound)
	r.NoMethod(h.NotFound)

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Root: send browsers to the dashboard; the auth gate takes it from there.
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/dashboard") })

	// Public entry point
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)

	// Everything else sits behind the session gate.
	auth := r.Group("", middleware.RequireSession(sessions, cfg.Session.CookieName))
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/dashboard", h.Dashboard)
		auth.GET("/hosting", h.Hosting)
		auth.GET("/contact", h.ShowContact)
		auth.POST("/contact", h.SubmitContact)

		for _, p := range staticPages {
			auth.GET(p.Path, h.StaticPage(p.Template, p.Title))
		}
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
