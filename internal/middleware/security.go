package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// SecurityConfig controls the response headers set by Security.
type SecurityConfig struct {
	// IsDevelopment disables HSTS so plain-http local setups keep working.
	IsDevelopment bool
	// HSTSMaxAge defaults to one year.
	HSTSMaxAge time.Duration
	// CrossOriginImages relaxes Cross-Origin-Resource-Policy so a web client
	// on another origin can embed downloaded photos with <img>.
	CrossOriginImages bool
}

// staticSecurityHeaders apply to every response. The API never serves HTML,
// so the content security policy forbids everything.
var staticSecurityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; sandbox"},
	{"Permissions-Policy", "camera=(), geolocation=(), microphone=()"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
}

// Security returns a middleware that applies security headers. Responses
// default to Cache-Control: no-store; handlers that serve image bytes may
// override it after this middleware runs.
func Security(cfg SecurityConfig) func(http.Handler) http.Handler {
	maxAge := cfg.HSTSMaxAge
	if maxAge <= 0 {
		maxAge = 365 * 24 * time.Hour
	}
	hsts := fmt.Sprintf("max-age=%d; includeSubDomains", int64(maxAge.Seconds()))

	corp := "same-origin"
	if cfg.CrossOriginImages {
		corp = "cross-origin"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range staticSecurityHeaders {
				h.Set(kv[0], kv[1])
			}
			h.Set("Cross-Origin-Resource-Policy", corp)
			h.Set("Cache-Control", "no-store")
			if !cfg.IsDevelopment {
				h.Set("Strict-Transport-Security", hsts)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MaxBodySize rejects requests whose declared length exceeds maxBytes and
// caps the body reader for the rest. Upload handlers apply tighter limits
// of their own.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
					fmt.Sprintf("Request body exceeds %d bytes", maxBytes))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
