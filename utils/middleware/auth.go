package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/model"
	"github.com/sahilchouksey/todo-graphql-api/utils/auth"
)

type contextKey int

const (
	viewerKey contextKey = iota
	clientIPKey
)

// WithViewer resolves the Authorization header into the authenticated user
// and stores it on the request context, along with the client IP. Anonymous
// and invalid-token requests pass through without a viewer; each resolver
// decides whether one is required.
//
// The GraphQL handler is a net/http handler (mounted in Fiber through the
// adaptor middleware), so viewer resolution lives at the net/http layer.
func WithViewer(store database.Storage, jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithClientIP(r.Context(), remoteIP(r))
			if user := resolveViewer(store, jwtManager, r.Header.Get("Authorization")); user != nil {
				ctx = NewViewerContext(ctx, user)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveViewer(store database.Storage, jwtManager *auth.JWTManager, authHeader string) *model.User {
	if authHeader == "" {
		return nil
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}

	claims, err := jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil
	}

	user, err := store.GetUserByID(claims.UserID)
	if err != nil {
		return nil
	}

	// Tokens issued before the last password change carry a stale version.
	if user.TokenVersion != claims.TokenVersion {
		return nil
	}

	return user
}

// NewViewerContext returns a context carrying the authenticated user
func NewViewerContext(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, viewerKey, user)
}

// ViewerFromContext extracts the authenticated user, if any
func ViewerFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(viewerKey).(*model.User)
	return user, ok
}

// WithClientIP returns a context carrying the client IP
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromContext extracts the client IP, if any
func ClientIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPKey).(string)
	return ip, ok
}

func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
