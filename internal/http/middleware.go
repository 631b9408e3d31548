package http

import (
	"fmt"
	"net/http"

	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/logging"
)

// Recoverer converts handler panics into the uniform 500 envelope instead of
// letting them tear down the connection. It runs inside the CORS middleware
// so even these responses carry policy headers.
func Recoverer(logger *logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						// The connection is gone; nothing useful to write.
						panic(rvr)
					}

					logger.Error("handler panic",
						"method", r.Method,
						"path", r.URL.Path,
						"panic", fmt.Sprintf("%v", rvr),
					)
					httputil.RespondInternalError(w, fmt.Sprintf("%v", rvr))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
