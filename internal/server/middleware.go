package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/sparklearn/internal/auth"
	"github.com/abhisek/sparklearn/internal/llm"
	"github.com/abhisek/sparklearn/internal/logger"
)

// CORS allows the configured browser origins.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RequestLogger writes one line per request, leveled by status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []any{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if user := auth.UserFrom(c.Request.Context()); user != "" {
			fields = append(fields, "user_id", user)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// Identity resolves the bearer token, if any, into the request context.
// Requests without a token continue anonymously; a bad token is rejected.
func Identity(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		user, err := tokens.Verify(tokenString)
		if err != nil {
			RespondError(c, http.StatusUnauthorized, CodeUnauthorized, err)
			return
		}
		ctx := auth.WithUser(c.Request.Context(), user)
		ctx = llm.WithUser(ctx, user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireUser rejects anonymous requests.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.UserFrom(c.Request.Context()) == "" {
			RespondError(c, http.StatusUnauthorized, CodeUnauthorized, errors.New("missing or invalid token"))
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if qToken := c.Query("token"); qToken != "" {
		return qToken
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

func userID(c *gin.Context) string {
	return auth.UserFrom(c.Request.Context())
}
