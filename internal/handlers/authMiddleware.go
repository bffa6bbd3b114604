package handlers

import (
	"context"
	"net/http"
	"strings"

	utility "elastica/internal/utility"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return header
}

// AuthenticationMiddleware guards user endpoints; unauthenticated
// mutation requests get a 401 the client surfaces as "please login".
func AuthenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, errMsg := utility.ValidateToken(tokenString)
		if errMsg != "" {
			http.Error(w, errMsg, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "email", claims.Email)
		ctx = context.WithValue(ctx, "first_name", claims.First_name)
		ctx = context.WithValue(ctx, "last_name", claims.Last_name)
		ctx = context.WithValue(ctx, "uid", claims.Uid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AdminAuthenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, errMsg := utility.ValidateAdminToken(tokenString)
		if errMsg != "" {
			http.Error(w, errMsg, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "email", claims.Email)
		ctx = context.WithValue(ctx, "first_name", claims.First_name)
		ctx = context.WithValue(ctx, "uid", claims.Uid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
