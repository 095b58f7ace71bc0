package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-recruitment-tracker/config"
	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	router      *gin.Engine
	token       string
	tokens      *auth.TokenManager
	vacantes    *mockVacanteUC
	prospectos  *mockProspectoUC
	entrevistas *mockEntrevistaUC
	auth        *mockAuthUC
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		tokens:      auth.NewTokenManager("test-secret", time.Hour),
		vacantes:    new(mockVacanteUC),
		prospectos:  new(mockProspectoUC),
		entrevistas: new(mockEntrevistaUC),
		auth:        new(mockAuthUC),
	}
	token, _, err := f.tokens.Issue("u-1", "ana@example.com", "Ana")
	require.NoError(t, err)
	f.token = token

	f.router = NewRouter(RouterDeps{
		AuthUC:       f.auth,
		VacanteUC:    f.vacantes,
		ProspectoUC:  f.prospectos,
		EntrevistaUC: f.entrevistas,
		HealthUC:     stubHealthUC{healthy: true},
		Tokens:       f.tokens,
		Config:       &config.Config{Environment: "development", RateLimitWindowSeconds: 60},
	})
	return f
}

func (f *apiFixture) do(method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func input(match func(map[string]any) bool) interface{} {
	return mock.MatchedBy(match)
}

func TestHealth(t *testing.T) {
	f := newAPI(t)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newAPI(t)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/vacantes", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	f.vacantes.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestVacanteRoutes(t *testing.T) {
	f := newAPI(t)
	area := "Desarrollo"
	vacante := &domain.Vacante{ID: 1, Area: &area}

	f.vacantes.On("GetAll", mock.Anything).Return([]domain.Vacante{*vacante}, nil)
	w, env := f.do(http.MethodGet, "/v1/vacantes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)

	f.vacantes.On("Create", mock.Anything, input(func(in map[string]any) bool {
		return in["area"] == "Desarrollo" && in["sueldo"] == json.Number("45000")
	})).Return(vacante, nil)
	w, env = f.do(http.MethodPost, "/v1/vacantes", `{"area":"Desarrollo","sueldo":45000,"activo":true}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Vacante created successfully", env.Message)

	f.vacantes.On("Update", mock.Anything, int64(1), mock.Anything).Return(nil,
		apperror.Validation("The given data was invalid.", map[string][]string{"sueldo": {"The sueldo field must be a number."}}))
	w, env = f.do(http.MethodPut, "/v1/vacantes/1", `{"area":"Desarrollo","sueldo":"mucho","activo":true}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The sueldo field must be a number."}, env.Errors["sueldo"])

	f.vacantes.On("Delete", mock.Anything, int64(1)).Return(apperror.Conflict("Cannot delete the vacante because it has associated entrevistas"))
	w, _ = f.do(http.MethodDelete, "/v1/vacantes/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	f.vacantes.On("Get", mock.Anything, int64(9)).Return(nil, apperror.NotFound("Vacante not found"))
	w, env = f.do(http.MethodGet, "/v1/vacantes/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Vacante not found", env.Message)

	w, _ = f.do(http.MethodGet, "/v1/vacantes/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	f.vacantes.AssertNotCalled(t, "Get", mock.Anything, int64(0))
}

func TestSearchRequiresQuery(t *testing.T) {
	f := newAPI(t)

	w, _ := f.do(http.MethodGet, "/v1/vacantes/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.prospectos.On("Search", mock.Anything, "ana").Return([]domain.Prospecto{}, nil)
	w, _ = f.do(http.MethodGet, "/v1/prospectos/search?q=ana", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.prospectos.On("GetActive", mock.Anything).Return([]domain.Prospecto{}, nil)
	w, _ = f.do(http.MethodGet, "/v1/prospectos/activos", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedBody(t *testing.T) {
	f := newAPI(t)
	w, _ := f.do(http.MethodPost, "/v1/prospectos", `{"nombre":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.prospectos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmptyBodyReachesValidation(t *testing.T) {
	f := newAPI(t)
	f.prospectos.On("Create", mock.Anything, map[string]any{}).Return(nil,
		apperror.Validation("The given data was invalid.", map[string][]string{"nombre": {"The nombre field is required."}}))

	w, env := f.do(http.MethodPost, "/v1/prospectos", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Errors, "nombre")
}

func TestEntrevistaRoutes(t *testing.T) {
	f := newAPI(t)
	detail := &domain.EntrevistaDetail{Entrevista: domain.Entrevista{ID: 3, VacanteID: 1, ProspectoID: 2}}

	f.entrevistas.On("Get", mock.Anything, int64(1), int64(2)).Return(detail, nil)
	w, _ := f.do(http.MethodGet, "/v1/entrevistas/1/2", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.entrevistas.On("GetByVacante", mock.Anything, int64(1)).Return([]domain.EntrevistaDetail{*detail}, nil)
	w, _ = f.do(http.MethodGet, "/v1/entrevistas/vacante/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.entrevistas.On("GetByProspecto", mock.Anything, int64(2)).Return([]domain.EntrevistaDetail{}, nil)
	w, _ = f.do(http.MethodGet, "/v1/entrevistas/prospecto/2", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.entrevistas.On("Create", mock.Anything, mock.Anything).Return(nil,
		apperror.Conflict("An interview already exists for this vacancy and candidate"))
	w, env := f.do(http.MethodPost, "/v1/entrevistas", `{"vacante":1,"prospecto":2}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "An interview already exists for this vacancy and candidate", env.Message)

	f.entrevistas.On("Update", mock.Anything, int64(1), int64(2), mock.Anything).Return(detail, nil)
	w, _ = f.do(http.MethodPut, "/v1/entrevistas/1/2", `{"vacante":1,"prospecto":2}`)
	assert.Equal(t, http.StatusOK, w.Code)

	f.entrevistas.On("Delete", mock.Anything, int64(1), int64(2)).Return(nil)
	w, _ = f.do(http.MethodDelete, "/v1/entrevistas/1/2", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.entrevistas.On("GetFormData", mock.Anything).Return(&domain.EntrevistaFormData{}, nil)
	w, _ = f.do(http.MethodGet, "/v1/entrevistas/form-data", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEntrevistaExport(t *testing.T) {
	f := newAPI(t)
	f.entrevistas.On("Export", mock.Anything, "csv").Return([]byte("VACANTE\n"), "entrevistas_20240115_100000.csv", nil)
	f.entrevistas.On("Export", mock.Anything, "pdf").Return(nil, "", apperror.BadRequest("Unsupported export format: pdf"))

	w, _ := f.do(http.MethodGet, "/v1/entrevistas/export?format=csv", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "entrevistas_20240115_100000.csv")
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "VACANTE\n", w.Body.String())

	w, _ = f.do(http.MethodGet, "/v1/entrevistas/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSetsCookie(t *testing.T) {
	f := newAPI(t)
	result := &domain.AuthResult{Token: "tok", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour), User: &domain.User{ID: "u-1"}}
	f.auth.On("Login", mock.Anything, mock.Anything, mock.MatchedBy(func(ci domain.ClientInfo) bool {
		return ci.RequestID != "" && ci.IP != ""
	})).Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"secreto123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var authCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			authCookie = c
		}
	}
	require.NotNil(t, authCookie)
	assert.Equal(t, "tok", authCookie.Value)
	assert.True(t, authCookie.HttpOnly)
}

func TestLoginAcceptsFormPost(t *testing.T) {
	f := newAPI(t)
	f.auth.On("Login", mock.Anything, map[string]any{"email": "ana@example.com", "password": "x"}, mock.Anything).
		Return(nil, apperror.Unauthorized("Invalid credentials"))

	form := url.Values{"email": {"ana@example.com"}, "password": {"x"}}
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedAuthRoutes(t *testing.T) {
	f := newAPI(t)
	user := &domain.User{ID: "u-1", Nombre: "Ana", Email: "ana@example.com"}

	f.auth.On("GetCurrentUser", mock.Anything, "u-1").Return(user, nil)
	w, _ := f.do(http.MethodGet, "/v1/auth/me", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	f.auth.On("UpdateProfile", mock.Anything, "u-1", mock.Anything).Return(user, nil)
	w, _ = f.do(http.MethodPut, "/v1/auth/profile", `{"nombre":"Ana","email":"ana@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	f.auth.On("ChangePassword", mock.Anything, "u-1", mock.Anything).Return(nil)
	w, _ = f.do(http.MethodPut, "/v1/auth/password", `{"current_password":"a","password":"b","password_confirmation":"b"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	f.auth.On("Logout", mock.Anything, f.token, mock.Anything).Return(nil)
	w, _ = f.do(http.MethodPost, "/v1/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	f.auth.AssertExpectations(t)
}

func TestCookieSessionNeedsCSRF(t *testing.T) {
	f := newAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/vacantes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: f.token})
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	f.vacantes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
