package api

import (
	"context"
	"net/http"
	"strconv"
)

// Identity is the verified caller forwarded by the authentication
// gateway. The engine never authenticates; it only consumes the
// (user id, admin flag) pair.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

type identityKey struct{}

// RequireIdentity extracts the gateway-set X-User-Id and X-User-Admin
// headers into the request context, rejecting requests without them.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get("X-User-Id")

		userID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || userID <= 0 {
			writeError(w, http.StatusUnauthorized, "missing or invalid identity")
			return
		}

		isAdmin, _ := strconv.ParseBool(r.Header.Get("X-User-Admin"))

		ctx := context.WithValue(r.Context(), identityKey{}, Identity{
			UserID:  userID,
			IsAdmin: isAdmin,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(r *http.Request) Identity {
	id, _ := r.Context().Value(identityKey{}).(Identity)
	return id
}
