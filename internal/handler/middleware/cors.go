package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"roomfinder/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the browser policy from config. Authorization and the admin
// token header are always allowed, whatever CORS_ALLOW_HEADERS says.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := withRequiredHeaders(cfg.AllowHeaders, "Authorization", AdminTokenHeader)

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_headers", headers,
		"allow_credentials", cfg.AllowCredentials)

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withRequiredHeaders(configured []string, required ...string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool {
			return http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(h)
		}) {
			out = append(out, h)
		}
	}
	return out
}
