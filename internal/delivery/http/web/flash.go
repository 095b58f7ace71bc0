package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "flash"
	flashMaxAge     = 60
)

// Flash survives exactly one redirect.
type Flash struct {
	Success string              `json:"success,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Old     map[string]string   `json:"old,omitempty"`
}

// FieldError returns the first message for field.
func (f *Flash) FieldError(field string) string {
	if f == nil || len(f.Errors[field]) == 0 {
		return ""
	}
	return f.Errors[field][0]
}

func (h *Handler) setFlash(c *gin.Context, f Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, base64.RawURLEncoding.EncodeToString(raw), flashMaxAge, "/", "", h.cookieSecure, true)
}

// takeFlash reads and clears the flash cookie. It never returns nil.
func (h *Handler) takeFlash(c *gin.Context) *Flash {
	f := &Flash{}
	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return f
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", h.cookieSecure, true)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return f
	}
	_ = json.Unmarshal(raw, f)
	return f
}

func (h *Handler) redirectWith(c *gin.Context, location string, f Flash) {
	h.setFlash(c, f)
	c.Redirect(http.StatusFound, location)
}
