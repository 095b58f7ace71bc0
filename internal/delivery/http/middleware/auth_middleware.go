package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthCookieName carries the token for browser clients.
const AuthCookieName = "auth_token"

var (
	errMissingToken = errors.New("missing token")
	errRevoked      = errors.New("token revoked")
)

// ExtractToken reads the bearer token from the Authorization header, falling
// back to the auth_token cookie.
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// Authenticate validates the request token and, on success, stores the caller
// identity in both the gin context and the request context.
func Authenticate(c *gin.Context, tokens *auth.TokenManager) (*auth.Claims, error) {
	tokenString := ExtractToken(c)
	if tokenString == "" {
		return nil, errMissingToken
	}

	claims, err := tokens.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := tokens.IsRevoked(c.Request.Context(), claims)
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("Revocation check failed", "error", err)
	}
	if revoked {
		return nil, errRevoked
	}

	c.Set(string(domain.KeyUserID), claims.Subject)
	c.Set(string(domain.KeyUserEmail), claims.Email)
	c.Set(string(domain.KeyClaims), claims)

	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.Subject)
	c.Request = c.Request.WithContext(logger.WithUserID(ctx, claims.Subject))
	return claims, nil
}

// SetAuthCookie stores the token in an HttpOnly cookie that expires with it.
func SetAuthCookie(c *gin.Context, token string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, token, maxAge, "/", "", secure, true)
}

func ClearAuthCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookieName, "", -1, "/", "", secure, true)
}

func unauthorizedReason(err error) string {
	switch {
	case errors.Is(err, errMissingToken):
		return "missing_token"
	case errors.Is(err, errRevoked):
		return "revoked_token"
	}
	return "invalid_token"
}

// LogUnauthorized records a rejected request in the security log.
func LogUnauthorized(c *gin.Context, err error) {
	security.DefaultLogger().LogUnauthorized(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("User-Agent"),
		GetRequestID(c),
		c.Request.URL.Path,
		unauthorizedReason(err),
	)
}

func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := Authenticate(c, tokens); err != nil {
			LogUnauthorized(c, err)
			message := "Invalid or expired token"
			if errors.Is(err, errMissingToken) {
				message = "Authorization header or auth_token cookie required"
			}
			response.Error(c, http.StatusUnauthorized, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
