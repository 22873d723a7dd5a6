package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"ukmprhub/internal/apperr"
	"ukmprhub/internal/config"
	handlers "ukmprhub/internal/handler"
	"ukmprhub/internal/service"
)

type Middleware func(http.Handler) http.Handler

// SessionMiddleware resolves the session cookie and attaches the member to
// the request context. It never rejects a request; routes that need a
// member are wrapped in RequireAuthMiddleware.
func SessionMiddleware(authService service.AuthService, cfg config.Session) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.SessionCookie(r, cfg)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			member, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				if apperr.Is(err, apperr.KindAuth) {
					// expired, revoked or forged: drop it so the browser stops sending it
					handlers.ClearSessionCookie(w, cfg)
				} else {
					log.Printf("Session lookup failed: %v", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithMember(r.Context(), member)))
		})
	}
}

func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := handlers.CurrentMember(r.Context()); !ok {
			handlers.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RoleMiddleware(allowedRoles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			member, ok := handlers.CurrentMember(r.Context())
			if !ok {
				handlers.WriteError(w, "authentication required", http.StatusUnauthorized)
				return
			}

			if !slices.Contains(allowedRoles, member.Role) {
				handlers.WriteError(w, "access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware echoes the caller's origin so the session cookie can be
// sent cross-site.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				handlers.WriteError(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Chain wraps h so the last middleware runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
