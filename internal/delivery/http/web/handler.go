package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"money": func(f *float64) string {
		if f == nil {
			return ""
		}
		return strconv.FormatFloat(*f, 'f', 2, 64)
	},
	"activo": func(b *bool) string {
		if b != nil && *b {
			return "Activa"
		}
		return "Inactiva"
	},
	"siNo": func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	},
	"id": func(n int64) string {
		return strconv.FormatInt(n, 10)
	},
}

type Deps struct {
	AuthUC       domain.AuthUsecase
	VacanteUC    domain.VacanteUsecase
	ProspectoUC  domain.ProspectoUsecase
	EntrevistaUC domain.EntrevistaUsecase
	Tokens       *auth.TokenManager
	CookieSecure bool
	// LoginLimiter guards POST /login; nil disables it.
	LoginLimiter gin.HandlerFunc
}

// Handler serves the server-rendered pages. It calls the same usecases as
// the JSON API and maps their errors to redirects with flash messages.
type Handler struct {
	authUC       domain.AuthUsecase
	vacanteUC    domain.VacanteUsecase
	prospectoUC  domain.ProspectoUsecase
	entrevistaUC domain.EntrevistaUsecase
	tokens       *auth.TokenManager
	cookieSecure bool
	loginLimiter gin.HandlerFunc
}

func NewHandler(deps Deps) *Handler {
	limiter := deps.LoginLimiter
	if limiter == nil {
		limiter = func(c *gin.Context) { c.Next() }
	}
	return &Handler{
		authUC:       deps.AuthUC,
		vacanteUC:    deps.VacanteUC,
		prospectoUC:  deps.ProspectoUC,
		entrevistaUC: deps.EntrevistaUC,
		tokens:       deps.Tokens,
		cookieSecure: deps.CookieSecure,
		loginLimiter: limiter,
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// Register installs the templates and the page routes on r.
func (h *Handler) Register(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	pages := r.Group("/")
	pages.Use(middleware.CSRFMiddleware(middleware.CSRFConfig{
		Secure: h.cookieSecure,
		Reject: func(c *gin.Context, message string) {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Title": "Acceso denegado", "Message": message})
		},
	}))

	pages.GET("/login", h.LoginForm)
	pages.POST("/login", h.loginLimiter, h.Login)

	authed := pages.Group("")
	authed.Use(h.requireLogin)
	{
		authed.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/vacantes") })
		authed.POST("/logout", h.Logout)

		authed.GET("/vacantes", h.VacanteIndex)
		authed.GET("/vacantes/create", h.VacanteCreateForm)
		authed.POST("/vacantes", h.VacanteStore)
		authed.GET("/vacantes/:id", h.VacanteShow)
		authed.GET("/vacantes/:id/edit", h.VacanteEditForm)
		authed.POST("/vacantes/:id/update", h.VacanteUpdate)
		authed.POST("/vacantes/:id/delete", h.VacanteDelete)

		authed.GET("/prospectos", h.ProspectoIndex)
		authed.GET("/prospectos/create", h.ProspectoCreateForm)
		authed.POST("/prospectos", h.ProspectoStore)
		authed.GET("/prospectos/:id", h.ProspectoShow)
		authed.GET("/prospectos/:id/edit", h.ProspectoEditForm)
		authed.POST("/prospectos/:id/update", h.ProspectoUpdate)
		authed.POST("/prospectos/:id/delete", h.ProspectoDelete)

		authed.GET("/entrevistas", h.EntrevistaIndex)
		authed.GET("/entrevistas/create", h.EntrevistaCreateForm)
		authed.POST("/entrevistas", h.EntrevistaStore)
		authed.GET("/entrevistas/:vacante/:prospecto", h.EntrevistaShow)
		authed.GET("/entrevistas/:vacante/:prospecto/edit", h.EntrevistaEditForm)
		authed.POST("/entrevistas/:vacante/:prospecto/update", h.EntrevistaUpdate)
		authed.POST("/entrevistas/:vacante/:prospecto/delete", h.EntrevistaDelete)
	}
	return nil
}

func (h *Handler) requireLogin(c *gin.Context) {
	if _, err := middleware.Authenticate(c, h.tokens); err != nil {
		if middleware.ExtractToken(c) != "" {
			middleware.LogUnauthorized(c, err)
			middleware.ClearAuthCookie(c, h.cookieSecure)
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

func (h *Handler) render(c *gin.Context, name string, flash *Flash, data gin.H) {
	data["CSRF"] = middleware.CSRFToken(c)
	data["Flash"] = flash
	if claims, ok := c.Get(string(domain.KeyClaims)); ok {
		data["User"] = claims.(*auth.Claims).Name
	}
	c.HTML(http.StatusOK, name, data)
}

// formInput collects the posted fields, without the CSRF token.
func formInput(c *gin.Context) (map[string]any, map[string]string) {
	_ = c.Request.ParseForm()
	input := map[string]any{}
	old := map[string]string{}
	for key, values := range c.Request.PostForm {
		if key == middleware.CSRFTokenFormField || len(values) == 0 {
			continue
		}
		input[key] = values[0]
		old[key] = values[0]
	}
	return input, old
}

// fail maps a usecase error to a redirect: validation errors go back to the
// form with the old input, everything else to the listing.
func (h *Handler) fail(c *gin.Context, err error, form, listing string, old map[string]string) {
	appErr := apperror.As(err)
	if appErr.Code == http.StatusUnprocessableEntity {
		h.redirectWith(c, form, Flash{Error: appErr.Message, Errors: appErr.Fields, Old: old})
		return
	}
	if appErr.Code >= http.StatusInternalServerError {
		h.logFailure(c, err)
	}
	h.redirectWith(c, listing, Flash{Error: appErr.Message})
}

func (h *Handler) logFailure(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("Page request failed", "path", c.Request.URL.Path, "error", err)
}

// values overlays the old input from a failed submission on the record values.
func values(record map[string]string, flash *Flash) map[string]string {
	for k, v := range flash.Old {
		record[k] = v
	}
	return record
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) LoginForm(c *gin.Context) {
	if _, err := middleware.Authenticate(c, h.tokens); err == nil {
		c.Redirect(http.StatusFound, "/vacantes")
		return
	}
	flash := h.takeFlash(c)
	h.render(c, "login.html", flash, gin.H{"Title": "Iniciar sesión", "Values": values(map[string]string{}, flash)})
}

func (h *Handler) Login(c *gin.Context) {
	input, old := formInput(c)
	delete(old, "password")

	result, err := h.authUC.Login(c.Request.Context(), input, domain.ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: middleware.GetRequestID(c),
	})
	if err != nil {
		appErr := apperror.As(err)
		h.redirectWith(c, "/login", Flash{Error: appErr.Message, Errors: appErr.Fields, Old: old})
		return
	}

	middleware.SetAuthCookie(c, result.Token, result.ExpiresAt, h.cookieSecure)
	h.redirectWith(c, "/vacantes", Flash{Success: "Bienvenido, " + result.User.Nombre})
}

func (h *Handler) Logout(c *gin.Context) {
	err := h.authUC.Logout(c.Request.Context(), middleware.ExtractToken(c), domain.ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: middleware.GetRequestID(c),
	})
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("Logout failed", "error", err)
	}
	middleware.ClearAuthCookie(c, h.cookieSecure)
	h.redirectWith(c, "/login", Flash{Success: "Sesión cerrada"})
}
