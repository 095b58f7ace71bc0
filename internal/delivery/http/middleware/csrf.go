package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header API clients echo the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden form field used by server-rendered pages
	CSRFTokenFormField = "_csrf"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "csrf_token"
)

// CSRFConfig configures the double-submit cookie check.
type CSRFConfig struct {
	Secure bool
	// ExemptPaths skip validation but still receive a cookie.
	ExemptPaths []string
	// Reject renders the failure. Defaults to a JSON 403.
	Reject func(c *gin.Context, message string)
}

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFToken returns the token for the current request, for embedding in forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

// CSRFMiddleware implements the double-submit cookie pattern. Every response
// carries a csrf_token cookie; state-changing requests must echo it in the
// X-CSRF-Token header or the _csrf form field. Requests authenticated with a
// bearer header are not cookie-driven and are exempt.
func CSRFMiddleware(config CSRFConfig) gin.HandlerFunc {
	exempt := make(map[string]bool, len(config.ExemptPaths))
	for _, p := range config.ExemptPaths {
		exempt[p] = true
	}
	reject := config.Reject
	if reject == nil {
		reject = func(c *gin.Context, message string) {
			response.Error(c, http.StatusForbidden, message, nil)
		}
	}

	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFTokenCookieName, newToken, int(CSRFTokenExpiry.Seconds()), "/", "", config.Secure, false)
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if exempt[c.Request.URL.Path] || c.GetHeader("Authorization") != "" {
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			message := "Invalid CSRF token"
			if submitted == "" {
				message = "Missing CSRF token"
			}
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:     security.EventCSRFViolation,
				IP:        c.ClientIP(),
				UserAgent: c.GetHeader("User-Agent"),
				RequestID: GetRequestID(c),
				Details:   map[string]interface{}{"path": c.Request.URL.Path, "reason": message},
			})
			reject(c, message)
			c.Abort()
			return
		}

		c.Next()
	}
}
