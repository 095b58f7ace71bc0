package v1

import (
	"net/http"
	"strings"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const prospectoNotFound = "Prospecto not found"

type ProspectoHandler struct {
	prospectoUC domain.ProspectoUsecase
}

func NewProspectoHandler(protected *gin.RouterGroup, prospectoUC domain.ProspectoUsecase) {
	handler := &ProspectoHandler{prospectoUC: prospectoUC}

	prospectos := protected.Group("/prospectos")
	{
		prospectos.GET("", handler.List)
		prospectos.POST("", handler.Create)
		prospectos.GET("/activos", handler.ListActive)
		prospectos.GET("/search", handler.Search)
		prospectos.GET("/:id", handler.Get)
		prospectos.PUT("/:id", handler.Update)
		prospectos.DELETE("/:id", handler.Delete)
	}
}

// ProspectoRequest documents the accepted payload.
type ProspectoRequest struct {
	Nombre        string `json:"nombre" example:"Ana Lopez"`
	Correo        string `json:"correo" example:"ana@example.com"`
	FechaRegistro string `json:"fecha_registro" example:"2024-01-10"`
}

// ListProspectos godoc
// @Summary      List prospectos
// @Tags         prospectos
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Prospecto}
// @Failure      401  {object}  response.Response
// @Router       /prospectos [get]
// @Security     BearerAuth
func (h *ProspectoHandler) List(c *gin.Context) {
	prospectos, err := h.prospectoUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Prospectos retrieved successfully", prospectos)
}

// ListActiveProspectos godoc
// @Summary      List active prospectos
// @Tags         prospectos
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Prospecto}
// @Router       /prospectos/activos [get]
// @Security     BearerAuth
func (h *ProspectoHandler) ListActive(c *gin.Context) {
	prospectos, err := h.prospectoUC.GetActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Active prospectos retrieved successfully", prospectos)
}

// SearchProspectos godoc
// @Summary      Search prospectos by nombre or correo
// @Tags         prospectos
// @Produce      json
// @Param        q    query     string  true  "Substring of the nombre or correo"
// @Success      200  {object}  response.Response{data=[]domain.Prospecto}
// @Failure      400  {object}  response.Response
// @Router       /prospectos/search [get]
// @Security     BearerAuth
func (h *ProspectoHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.Error(apperror.BadRequest("The search query is required"))
		return
	}
	prospectos, err := h.prospectoUC.Search(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search completed", prospectos)
}

// GetProspecto godoc
// @Summary      Get a prospecto
// @Tags         prospectos
// @Produce      json
// @Param        id   path      int  true  "Prospecto ID"
// @Success      200  {object}  response.Response{data=domain.Prospecto}
// @Failure      404  {object}  response.Response
// @Router       /prospectos/{id} [get]
// @Security     BearerAuth
func (h *ProspectoHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", prospectoNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	prospecto, err := h.prospectoUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Prospecto retrieved successfully", prospecto)
}

// CreateProspecto godoc
// @Summary      Create a prospecto
// @Tags         prospectos
// @Accept       json
// @Produce      json
// @Param        prospecto  body      ProspectoRequest  true  "Prospecto JSON"
// @Success      201      {object}  response.Response{data=domain.Prospecto}
// @Failure      422      {object}  response.Response
// @Router       /prospectos [post]
// @Security     BearerAuth
func (h *ProspectoHandler) Create(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	prospecto, err := h.prospectoUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Prospecto created successfully", prospecto)
}

// UpdateProspecto godoc
// @Summary      Update a prospecto
// @Tags         prospectos
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Prospecto ID"
// @Param        prospecto  body      ProspectoRequest  true  "Prospecto JSON"
// @Success      200      {object}  response.Response{data=domain.Prospecto}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /prospectos/{id} [put]
// @Security     BearerAuth
func (h *ProspectoHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", prospectoNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	prospecto, err := h.prospectoUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Prospecto updated successfully", prospecto)
}

// DeleteProspecto godoc
// @Summary      Delete a prospecto
// @Description  Fails with 409 while entrevistas reference it
// @Tags         prospectos
// @Produce      json
// @Param        id   path      int  true  "Prospecto ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /prospectos/{id} [delete]
// @Security     BearerAuth
func (h *ProspectoHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", prospectoNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.prospectoUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Prospecto deleted successfully", nil)
}
