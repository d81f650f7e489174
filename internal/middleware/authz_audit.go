package middleware

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/audit"
)

// AuthzAuditMiddleware records where a request came from so authorization
// audit entries can carry it.
func AuthzAuditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithRequestInfo(r.Context(), audit.RequestInfo{
			ClientIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
