package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func VideoCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			videoID := chi.URLParam(r, "videoID")

			ctx := context.WithValue(r.Context(), "videoID", videoID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := chi.URLParam(r, "userID")

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
