// Package cors implements the gateway's origin policy: a small allow-list of
// exact origins and preview-deployment patterns, with every response carrying
// the same header set. Disallowed origins are not refused outright; the
// response falls back to the production origin, which the browser will then
// refuse to match against the real caller.
package cors

import (
	"net/http"
	"regexp"

	"github.com/vam-insurance/insurance-api/internal/config"
)

var (
	// Vercel preview deployments of this app, then any Vercel subdomain.
	previewOriginRe = regexp.MustCompile(`^https://vam-insurance-.*\.vercel\.app$`)
	vercelOriginRe  = regexp.MustCompile(`^https://.*\.vercel\.app$`)
)

var devOrigins = []string{
	"http://localhost:5173",
	"http://localhost:4173",
	"http://127.0.0.1:5173",
}

// Policy evaluates Origin headers against the configured allow-list.
type Policy struct {
	frontendURL string
	production  bool
}

func NewPolicy(cfg config.ServerConfig) *Policy {
	return &Policy{
		frontendURL: cfg.FrontendURL,
		production:  cfg.IsProduction(),
	}
}

// IsOriginAllowed reports whether origin exactly matches the allow-list.
// No substring or partial matching.
func (p *Policy) IsOriginAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	if origin == p.frontendURL {
		return true
	}
	if previewOriginRe.MatchString(origin) || vercelOriginRe.MatchString(origin) {
		return true
	}
	if !p.production {
		for _, dev := range devOrigins {
			if origin == dev {
				return true
			}
		}
	}
	return false
}

// SetHeaders attaches the cross-origin header set for the given request.
// Allowed origins are echoed back; anything else gets the production origin.
func (p *Policy) SetHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	allowed := p.frontendURL
	if p.IsOriginAllowed(origin) {
		allowed = origin
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", allowed)
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	h.Set("Access-Control-Max-Age", "86400")
	h.Set("Access-Control-Allow-Credentials", "true")
}

// Middleware attaches the policy headers to every response and terminates
// preflight requests with 204 before they reach the router.
func (p *Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.SetHeaders(w, r)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
