package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck-go/internal/crypto"
	"github.com/jobdeck/jobdeck-go/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// UserResolver looks up the user a verified token belongs to. Satisfied by
// repository.UserRepository.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// BearerAuth returns middleware that validates a Bearer token from the
// Authorization header and resolves it to a user record. Requests with a
// missing or malformed header, an invalid or expired token, or a subject that
// no longer resolves to a user are rejected with 401 before any handler runs.
func BearerAuth(secret string, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized, no token provided")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized, no token provided")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized, invalid token")
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "User not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// ContextWithUser attaches a resolved user to the context, as BearerAuth does
// after verification.
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
