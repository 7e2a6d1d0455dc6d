// Package webserver provides the web frontend HTTP server implementation
package webserver

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/resepmakanan/v1/internal/application/chat"
	"github.com/resepmakanan/v1/internal/application/timer"
	"github.com/resepmakanan/v1/internal/domain/recipe"
	"github.com/resepmakanan/v1/internal/infrastructure/config"
	"github.com/resepmakanan/v1/internal/infrastructure/images"
	"github.com/resepmakanan/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// WebServer represents the web frontend HTTP server
type WebServer struct {
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
	router    *chi.Mux
	recipes   inbound.RecipeService
	chat      *chat.Service
	countdown *timer.Countdown
	resolver  *images.Resolver
	validate  *validator.Validate

	templateMu sync.RWMutex
	templates  *template.Template

	// builder draft: transient authoring state, never persisted
	draftMu sync.Mutex
	draft   *recipe.Draft

	watcher *fsnotify.Watcher
}

// NewWebServer creates a new web frontend server instance
func NewWebServer(
	cfg *config.Config,
	log *zap.Logger,
	recipes inbound.RecipeService,
	chatService *chat.Service,
	countdown *timer.Countdown,
	resolver *images.Resolver,
) (*WebServer, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	server := &WebServer{
		config:    cfg,
		logger:    log,
		recipes:   recipes,
		chat:      chatService,
		countdown: countdown,
		resolver:  resolver,
		validate:  validator.New(),
		templates: templates,
		draft:     recipe.NewDraft(),
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server, nil
}

// setupRoutes configures the web frontend routes
func (s *WebServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.securityHeaders)
	if s.config.Server.EnableCompression {
		r.Use(compressionMiddleware)
	}
	if s.config.Monitoring.EnableMetrics {
		r.Use(metricsMiddleware)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)
	r.Get(s.config.Monitoring.ReadinessPath, s.handleReadinessCheck)

	// Static assets
	staticContent, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))

	// Full pages. Leaving a page tears down its view; any running
	// cook timer is cancelled, not just ignored.
	r.Group(func(r chi.Router) {
		r.Use(s.stopTimerOnNavigation)
		r.Get("/", s.handleHome)
		r.Get("/recipes", s.handleRecipeList)
		r.Get("/recipe/{id}", s.handleRecipeDetail)
		r.Get("/builder", s.handleBuilderPage)
	})

	r.NotFound(s.handleNotFound)

	// HTMX fragments
	r.Route("/htmx", func(r chi.Router) {
		r.Get("/recipes/search", s.handleHTMXRecipeSearch)
		r.Post("/timer/start", s.handleHTMXTimerStart)
		r.Post("/timer/stop", s.handleHTMXTimerStop)
		r.Get("/timer", s.handleHTMXTimerStatus)
		r.Get("/chat", s.handleHTMXChatTranscript)
		r.Post("/chat", s.handleHTMXChatSend)
		// removals go over POST so the form state rides in the body
		r.Post("/builder/ingredients", s.handleHTMXBuilderAddIngredient)
		r.Post("/builder/ingredients/{index}/remove", s.handleHTMXBuilderRemoveIngredient)
		r.Post("/builder/instructions", s.handleHTMXBuilderAddInstruction)
		r.Post("/builder/instructions/{index}/remove", s.handleHTMXBuilderRemoveInstruction)
		r.Post("/builder/estimate", s.handleHTMXBuilderEstimate)
		r.Post("/builder/publish", s.handleHTMXBuilderPublish)
	})

	return r
}

// Start begins listening and, in development with hot reload enabled,
// watches the on-disk template directory for changes.
func (s *WebServer) Start() error {
	if s.config.Server.HotReload && s.config.Server.TemplateDir != "" {
		if err := s.watchTemplates(); err != nil {
			s.logger.Warn("template hot reload unavailable", zap.Error(err))
		}
	}

	s.logger.Info("web server listening",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server and cancels the cook timer
func (s *WebServer) Shutdown(ctx context.Context) error {
	s.countdown.Stop()
	if s.watcher != nil {
		s.watcher.Close()
	}
	return s.server.Shutdown(ctx)
}

// watchTemplates re-parses the on-disk templates whenever they change.
func (s *WebServer) watchTemplates() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.config.Server.TemplateDir); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				parsed, err := parseTemplatesFromDir(s.config.Server.TemplateDir)
				if err != nil {
					s.logger.Error("template reload failed", zap.Error(err))
					continue
				}
				s.templateMu.Lock()
				s.templates = parsed
				s.templateMu.Unlock()
				s.logger.Info("templates reloaded", zap.String("file", event.Name))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Error("template watcher error", zap.Error(err))
			}
		}
	}()

	s.logger.Info("watching templates for changes",
		zap.String("dir", s.config.Server.TemplateDir))
	return nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2 Jan 2006")
		},
		"formatAmount": func(v float64) string {
			out := fmt.Sprintf("%.1f", v)
			out = strings.TrimSuffix(out, ".0")
			return out
		},
		"formatTimer": timer.Format,
	}
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
}

func parseTemplatesFromDir(dir string) (*template.Template, error) {
	return template.New("").Funcs(templateFuncs()).ParseGlob(dir + "/*.html")
}

// renderTemplate executes a named template with common fields filled in
func (s *WebServer) renderTemplate(w http.ResponseWriter, name string, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if data == nil {
		data = make(map[string]interface{})
	}
	if data["Title"] == nil {
		data["Title"] = s.config.App.Name
	}
	if data["AppName"] == nil {
		data["AppName"] = s.config.App.Name
	}
	if data["FallbackImage"] == nil {
		data["FallbackImage"] = s.resolver.FallbackURL()
	}

	s.templateMu.RLock()
	templates := s.templates
	s.templateMu.RUnlock()

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("failed to execute template",
			zap.String("template", name),
			zap.Error(err))
	}
}

func (s *WebServer) renderError(w http.ResponseWriter, message string, err error) {
	s.logger.Error(message, zap.Error(err))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	s.renderTemplate(w, "error", map[string]interface{}{
		"Title":   "Terjadi Kesalahan - " + s.config.App.Name,
		"Message": message,
	})
}

// securityHeaders adds standard security headers to all responses
func (s *WebServer) securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request with zap
func (s *WebServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// stopTimerOnNavigation cancels the cook timer on any full page
// navigation; the countdown's lifetime is tied to the detail view.
func (s *WebServer) stopTimerOnNavigation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("HX-Request") != "true" {
			s.countdown.Stop()
		}
		next.ServeHTTP(w, r)
	})
}
