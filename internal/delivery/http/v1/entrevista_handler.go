package v1

import (
	"net/http"

	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

const entrevistaNotFound = "Entrevista not found"

var exportContentTypes = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"csv":  "text/csv; charset=utf-8",
}

type EntrevistaHandler struct {
	entrevistaUC domain.EntrevistaUsecase
}

func NewEntrevistaHandler(protected *gin.RouterGroup, entrevistaUC domain.EntrevistaUsecase) {
	handler := &EntrevistaHandler{entrevistaUC: entrevistaUC}

	entrevistas := protected.Group("/entrevistas")
	{
		entrevistas.GET("", handler.List)
		entrevistas.POST("", handler.Create)
		entrevistas.GET("/form-data", handler.FormData)
		entrevistas.GET("/export", handler.Export)
		entrevistas.GET("/vacante/:vacante", handler.ListByVacante)
		entrevistas.GET("/prospecto/:prospecto", handler.ListByProspecto)
		entrevistas.GET("/:vacante/:prospecto", handler.Get)
		entrevistas.PUT("/:vacante/:prospecto", handler.Update)
		entrevistas.DELETE("/:vacante/:prospecto", handler.Delete)
	}
}

// EntrevistaRequest documents the accepted payload.
type EntrevistaRequest struct {
	Vacante         int64  `json:"vacante" example:"1"`
	Prospecto       int64  `json:"prospecto" example:"2"`
	FechaEntrevista string `json:"fecha_entrevista" example:"2024-01-15"`
	Notas           string `json:"notas" example:"Buen perfil tecnico"`
	Reclutado       bool   `json:"reclutado" example:"false"`
}

func pair(c *gin.Context) (int64, int64, error) {
	vacanteID, err := pathID(c, "vacante", entrevistaNotFound)
	if err != nil {
		return 0, 0, err
	}
	prospectoID, err := pathID(c, "prospecto", entrevistaNotFound)
	if err != nil {
		return 0, 0, err
	}
	return vacanteID, prospectoID, nil
}

// ListEntrevistas godoc
// @Summary      List entrevistas with their vacante and prospecto
// @Tags         entrevistas
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.EntrevistaDetail}
// @Router       /entrevistas [get]
// @Security     BearerAuth
func (h *EntrevistaHandler) List(c *gin.Context) {
	entrevistas, err := h.entrevistaUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entrevistas retrieved successfully", entrevistas)
}

// ListEntrevistasByVacante godoc
// @Summary      List entrevistas of a vacante
// @Tags         entrevistas
// @Produce      json
// @Param        vacante  path      int  true  "Vacante ID"
// @Success      200      {object}  response.Response{data=[]domain.EntrevistaDetail}
// @Router       /entrevistas/vacante/{vacante} [get]
// @Security     BearerAuth
func (h *EntrevistaHandler) ListByVacante(c *gin.Context) {
	id, err := pathID(c, "vacante", vacanteNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	entrevistas, err := h.entrevistaUC.GetByVacante(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entrevistas retrieved successfully", entrevistas)
}

// ListEntrevistasByProspecto godoc
// @Summary      List entrevistas of a prospecto
// @Tags         entrevistas
// @Produce      json
// @Param        prospecto  path      int  true  "Prospecto ID"
// @Success      200        {object}  response.Response{data=[]domain.EntrevistaDetail}
// @Router       /entrevistas/prospecto/{prospecto} [get]
// @Security     BearerAuth
func (h *EntrevistaHandler) ListByProspecto(c *gin.Context) {
	id, err := pathID(c, "prospecto", prospectoNotFound)
	if err != nil {
		c.Error(err)
		return
	}
	entrevistas, err := h.entrevistaUC.GetByProspecto(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entrevistas retrieved successfully", entrevistas)
}

// GetEntrevista godoc
// @Summary      Get an entrevista by vacante and prospecto
// @Tags         entrevistas
// @Produce      json
// @Param        vacante    path      int  true  "Vacante ID"
// @Param        prospecto  path      int  true  "Prospecto ID"
// @Success      200        {object}  response.Response{data=domain.EntrevistaDetail}
// @Failure      404        {object}  response.Response
// @Router       /entrevistas/{vacante}/{prospecto} [get]
// @Security     BearerAuth
func (h *EntrevistaHandler) Get(c *gin.Context) {
	vacanteID, prospectoID, err := pair(c)
	if err != nil {
		c.Error(err)
		return
	}
	entrevista, err := h.entrevistaUC.Get(c.Request.Context(), vacanteID, prospectoID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entrevista retrieved successfully", entrevista)
}

// CreateEntrevista godoc
// @Summary      Create an entrevista
// @Description  Fails with 409 when the vacante and prospecto already have one
// @Tags         entrevistas
// @Accept       json
// @Produce      json
// @Param        entrevista  body      EntrevistaRequest  true  "Entrevista JSON"
// @Success      201         {object}  response.Response{data=domain.EntrevistaDetail}
// @Failure      409         {object}  response.Response
// @Failure      422         {object}  response.Response
// @Router       /entrevistas [post]
// @Security     BearerAuth
func (h *EntrevistaHandler) Create(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	entrevista, err := h.entrevistaUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Entrevista created successfully", entrevista)
}

// UpdateEntrevista godoc
// @Summary      Update an entrevista
// @Description  The pair may change as long as the new pair is free
// @Tags         entrevistas
// @Accept       json
// @Produce      json
// @Param        vacante     path      int                true  "Vacante ID"
// @Param        prospecto   path      int                true  "Prospecto ID"
// @Param        entrevista  body      EntrevistaRequest  true  "Entrevista JSON"
// @Success      200         {object}  response.Response{data=domain.EntrevistaDetail}
// @Failure      404         {object}  response.Response
// @Failure      409         {object}  response.Response
// @Failure      422         {object}  response.Response
// @Router       /entrevistas/{vacante}/{prospecto} [put]
// @Security     BearerAuth
func (h *EntrevistaHandler) Update(c *gin.Context) {
	vacanteID, prospectoID, err := pair(c)
	if err != nil {
		c.Error(err)
		return
	}
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	entrevista, err := h.entrevistaUC.Update(c.Request.Context(), vacanteID, prospectoID, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entrevista updated successfully", entrevista)
}

// DeleteEntrevista godoc
// @Summary      Delete an entrevista
// @Tags         entrevistas
// @Produce      json
// @Param        vacante    path      int  true  "Vacante ID"
// @Param        prospecto  path      int  true  "Prospecto ID"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /entrevistas/{vacante}/{prospecto} [delete]
// @Security     BearerAuth
func (h *EntrevistaHandler) Delete(c *gin.Context) {
	vacanteID, prospectoID, err := pair(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.entrevistaUC.Delete(c.Request.Context(), vacanteID, prospectoID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Entrevista deleted successfully", nil)
}

// EntrevistaFormData godoc
// @Summary      Options for the entrevista form
// @Tags         entrevistas
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EntrevistaFormData}
// @Router       /entrevistas/form-data [get]
// @Security     BearerAuth
func (h *EntrevistaHandler) FormData(c *gin.Context) {
	data, err := h.entrevistaUC.GetFormData(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Form data retrieved successfully", data)
}

// ExportEntrevistas godoc
// @Summary      Export entrevistas
// @Description  Downloads every entrevista as an Excel workbook or CSV
// @Tags         entrevistas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format  query     string  false  "xlsx (default) or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /entrevistas/export [get]
// @Security     BearerAuth
func (h *EntrevistaHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	data, filename, err := h.entrevistaUC.Export(c.Request.Context(), format)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, exportContentTypes[format], data)
}
