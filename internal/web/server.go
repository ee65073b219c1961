package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/abhisek/quizview/internal/quiz"
)

const sessionCookie = "quizview_session"

// DefaultSessionTTL applies when Options.SessionTTL is not positive.
const DefaultSessionTTL = 30 * time.Minute

//go:embed templates/page.html
var templatesFS embed.FS

// Options configures the HTTP surface.
type Options struct {
	// Questions is the shared, read-only question set. Ignored when
	// LoadErr is set.
	Questions []quiz.Question
	// LoadErr is the startup load failure, if any. Every session then
	// shows the load-failure view.
	LoadErr error
	Logger  *zap.Logger
	// AllowedOrigins enables CORS on /api. Empty serves same-origin
	// clients only. Explicit origins get credentialed CORS and a
	// SameSite=None session cookie; "*" allows any origin without
	// credentials.
	AllowedOrigins []string
	SessionTTL     time.Duration
}

// Server renders the quiz over HTTP, one controller per browser session.
type Server struct {
	opts        Options
	credentials bool
	log         *zap.Logger
	page        *template.Template
	sessions    *sessionStore
}

// New builds a Server.
func New(opts Options) (*Server, error) {
	page, err := template.New("page.html").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templatesFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}

	s := &Server{opts: opts, log: log, page: page, credentials: credentialedOrigins(opts.AllowedOrigins)}
	s.sessions = newSessionStore(opts.SessionTTL, s.newController)
	return s, nil
}

// newController returns a controller in the startup load outcome.
func (s *Server) newController() *quiz.Controller {
	c := quiz.NewController()
	if s.opts.LoadErr != nil {
		c.Fail(s.opts.LoadErr)
	} else {
		c.Ready(s.opts.Questions)
	}
	return c
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handlePage)
	r.Post("/select", s.handleSelect(false))
	r.Post("/prev", s.handleNavigate(false, (*quiz.Controller).Previous))
	r.Post("/next", s.handleNavigate(false, (*quiz.Controller).Next))

	r.Route("/api", func(ar chi.Router) {
		if len(s.opts.AllowedOrigins) > 0 {
			ar.Use(cors.Handler(cors.Options{
				AllowedOrigins:   s.opts.AllowedOrigins,
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"Content-Type"},
				AllowCredentials: s.credentials,
				MaxAge:           300,
			}))
		}
		ar.Get("/view", s.handleView)
		ar.Post("/select", s.handleSelect(true))
		ar.Post("/prev", s.handleNavigate(true, (*quiz.Controller).Previous))
		ar.Post("/next", s.handleNavigate(true, (*quiz.Controller).Next))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}

// requestLogger logs each request with zap.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// session resolves the caller's session, issuing a cookie for new ones.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess, created := s.sessions.get(id)
	if created {
		c := &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		// Cross-site fetches only carry SameSite=None cookies, which
		// browsers accept only when Secure.
		if s.credentials {
			c.SameSite = http.SameSiteNoneMode
			c.Secure = true
		}
		http.SetCookie(w, c)
		s.log.Info("session started", zap.String("session", sess.id))
	}
	return sess
}

// credentialedOrigins reports whether origins names explicit origins only.
// Browsers refuse credentialed responses for a wildcard origin.
func credentialedOrigins(origins []string) bool {
	if len(origins) == 0 {
		return false
	}
	for _, o := range origins {
		if o == "*" {
			return false
		}
	}
	return true
}
