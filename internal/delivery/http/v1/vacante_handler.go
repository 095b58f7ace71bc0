package v1

import (
	"net/http"
	"strings"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const vacanteNotFound = "Vacante not found"

type VacanteHandler struct {
	vacanteUC domain.VacanteUsecase
}

func NewVacanteHandler(protected *gin.RouterGroup, vacanteUC domain.VacanteUsecase) {
	handler := &VacanteHandler{vacanteUC: vacanteUC}

	vacantes := protected.Group("/vacantes")
	{
		vacantes.GET("", handler.List)
		vacantes.POST("", handler.Create)
		vacantes.GET("/activas", handler.ListActive)
		vacantes.GET("/search", handler.Search)
		vacantes.GET("/:id", handler.Get)
		vacantes.PUT("/:id", handler.Update)
		vacantes.DELETE("/:id", handler.Delete)
	}
}

// VacanteRequest documents the accepted payload.
type VacanteRequest struct {
	Area   string  `json:"area" example:"Desarrollo"`
	Sueldo float64 `json:"sueldo" example:"45000"`
	Activo bool    `json:"activo" example:"true"`
}

// ListVacantes godoc
// @Summary      List vacantes
// @Tags         vacantes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Vacante}
// @Failure      401  {object}  response.Response
// @Router       /vacantes [get]
// @Security     BearerAuth
func (h *VacanteHandler) List(c *gin.Context) {
	vacantes, err := h.vacanteUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacantes retrieved successfully", vacantes)
}

// ListActiveVacantes godoc
// @Summary      List active vacantes
// @Tags         vacantes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Vacante}
// @Router       /vacantes/activas [get]
// @Security     BearerAuth
func (h *VacanteHandler) ListActive(c *gin.Context) {
	vacantes, err := h.vacanteUC.GetActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Active vacantes retrieved successfully", vacantes)
}

// SearchVacantes godoc
// @Summary      Search vacantes by area
// @Tags         vacantes
// @Produce      json
// @Param        q    query     string  true  "Substring of the area"
// @Success      200  {object}  response.Response{data=[]domain.Vacante}
// @Failure      400  {object}  response.Response
// @Router       /vacantes/search [get]
// @Security     BearerAuth
func (h *VacanteHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.Error(apperror.BadRequest("The search query is required"))
		return
	}
	vacantes, err := h.vacanteUC.Search(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search completed", vacantes)
}

// GetVacante godoc
// @Summary      Get a vacante
// @Tags         vacantes
// @Produce      json
// @Param        id   path      int  true  "Vacante ID"
// @Success      200  {object}  response.Response{data=domain.Vacante}
// @Failure      404  {object}  response.Response
// @Router       /vacantes/{id} [get]
// @Security     BearerAuth
func (h *VacanteHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", vacanteNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	vacante, err := h.vacanteUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacante retrieved successfully", vacante)
}

// CreateVacante godoc
// @Summary      Create a vacante
// @Tags         vacantes
// @Accept       json
// @Produce      json
// @Param        vacante  body      VacanteRequest  true  "Vacante JSON"
// @Success      201      {object}  response.Response{data=domain.Vacante}
// @Failure      422      {object}  response.Response
// @Router       /vacantes [post]
// @Security     BearerAuth
func (h *VacanteHandler) Create(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	vacante, err := h.vacanteUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacante created successfully", vacante)
}

// UpdateVacante godoc
// @Summary      Update a vacante
// @Tags         vacantes
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Vacante ID"
// @Param        vacante  body      VacanteRequest  true  "Vacante JSON"
// @Success      200      {object}  response.Response{data=domain.Vacante}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /vacantes/{id} [put]
// @Security     BearerAuth
func (h *VacanteHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", vacanteNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	vacante, err := h.vacanteUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacante updated successfully", vacante)
}

// DeleteVacante godoc
// @Summary      Delete a vacante
// @Description  Fails with 409 while entrevistas reference it
// @Tags         vacantes
// @Produce      json
// @Param        id   path      int  true  "Vacante ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /vacantes/{id} [delete]
// @Security     BearerAuth
func (h *VacanteHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", vacanteNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.vacanteUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacante deleted successfully", nil)
}
