package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/azgroup/delega/internal/domain"
	"github.com/azgroup/delega/internal/repository"
)

type contextKey string

const (
	// ContextKeyActor is the key for storing the actor in request context.
	ContextKeyActor contextKey = "actor"
)

// AuthMiddleware handles Bearer token authentication. The token is the
// opaque identity issued by the external identity provider; the actor
// record (including its role level) is trusted verbatim.
type AuthMiddleware struct {
	actorRepo *repository.ActorRepository
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(actorRepo *repository.ActorRepository) *AuthMiddleware {
	return &AuthMiddleware{
		actorRepo: actorRepo,
	}
}

// Authenticate validates the Bearer token and adds the actor to the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		token := parts[1]
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		actor, err := m.actorRepo.GetByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrActorNotFound) {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if !actor.IsActive {
			http.Error(w, "actor inactive", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyActor, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorFromContext retrieves the authenticated actor from request context.
func GetActorFromContext(ctx context.Context) (*domain.Actor, error) {
	actor, ok := ctx.Value(ContextKeyActor).(*domain.Actor)
	if !ok || actor == nil {
		return nil, domain.ErrActorNotFound
	}
	return actor, nil
}
