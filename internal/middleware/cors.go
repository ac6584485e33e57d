package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORSMiddleware создает middleware, разрешающий запросы фронтенда с указанных origin.
// Значение "*" в списке разрешает любой origin, при этом в ответ возвращается сам origin,
// чтобы браузер принимал ответы с credentials.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			opts.AllowedOrigins = nil
			opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
			break
		}
		if origin != "" {
			opts.AllowedOrigins = append(opts.AllowedOrigins, origin)
		}
	}

	return cors.Handler(opts)
}
