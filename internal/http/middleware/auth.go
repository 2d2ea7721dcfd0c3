package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aea-eng/aea-backend/internal/domain"
)

// Key for storing the authenticated admin in context
type contextKey string

const AdminKey contextKey = "auth_admin"

// AuthServiceInterface defines the interface for token verification
type AuthServiceInterface interface {
	VerifyToken(ctx context.Context, token string) (*domain.Admin, error)
}

// AuthMiddleware guards admin routes with bearer-token authentication
type AuthMiddleware struct {
	authService AuthServiceInterface
}

// NewAuthMiddleware creates a new auth middleware backed by the given service
func NewAuthMiddleware(authService AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth creates a middleware that verifies the bearer token and puts
// the resolved admin into the request context
func (m *AuthMiddleware) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			admin, err := m.authService.VerifyToken(r.Context(), parts[1])
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the authenticated admin stored by RequireAuth.
func AdminFromContext(ctx context.Context) (*domain.Admin, bool) {
	admin, ok := ctx.Value(AdminKey).(*domain.Admin)
	return admin, ok
}
