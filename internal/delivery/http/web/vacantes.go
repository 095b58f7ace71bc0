package web

import (
	"net/http"
	"strconv"
	"strings"

	"go-recruitment-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

const vacanteNotFound = "Vacante not found"

func vacanteValues(v *domain.Vacante) map[string]string {
	values := map[string]string{"activo": "1"}
	if v == nil {
		return values
	}
	if v.Area != nil {
		values["area"] = *v.Area
	}
	if v.Sueldo != nil {
		values["sueldo"] = strconv.FormatFloat(*v.Sueldo, 'f', -1, 64)
	}
	if v.Activo != nil && !*v.Activo {
		values["activo"] = "0"
	}
	return values
}

func (h *Handler) VacanteIndex(c *gin.Context) {
	ctx := c.Request.Context()
	q := strings.TrimSpace(c.Query("q"))

	var (
		vacantes []domain.Vacante
		err      error
	)
	if q != "" {
		vacantes, err = h.vacanteUC.Search(ctx, q)
	} else {
		vacantes, err = h.vacanteUC.GetAll(ctx)
	}
	if err != nil {
		h.errorPage(c, err)
		return
	}

	h.render(c, "vacantes_index.html", h.takeFlash(c), gin.H{
		"Title":    "Vacantes",
		"Query":    q,
		"Vacantes": vacantes,
	})
}

func (h *Handler) VacanteShow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/vacantes", Flash{Error: vacanteNotFound})
		return
	}
	vacante, err := h.vacanteUC.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "/vacantes", "/vacantes", nil)
		return
	}
	entrevistas, err := h.entrevistaUC.GetByVacante(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, err)
		return
	}

	h.render(c, "vacantes_show.html", h.takeFlash(c), gin.H{
		"Title":       "Vacante",
		"Vacante":     vacante,
		"Entrevistas": entrevistas,
	})
}

func (h *Handler) VacanteCreateForm(c *gin.Context) {
	flash := h.takeFlash(c)
	h.render(c, "vacantes_form.html", flash, gin.H{
		"Title":  "Nueva vacante",
		"Action": "/vacantes",
		"Values": values(vacanteValues(nil), flash),
	})
}

func (h *Handler) VacanteStore(c *gin.Context) {
	input, old := formInput(c)
	if _, err := h.vacanteUC.Create(c.Request.Context(), input); err != nil {
		h.fail(c, err, "/vacantes/create", "/vacantes", old)
		return
	}
	h.redirectWith(c, "/vacantes", Flash{Success: "Vacante creada correctamente"})
}

func (h *Handler) VacanteEditForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/vacantes", Flash{Error: vacanteNotFound})
		return
	}
	vacante, err := h.vacanteUC.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "/vacantes", "/vacantes", nil)
		return
	}

	flash := h.takeFlash(c)
	h.render(c, "vacantes_form.html", flash, gin.H{
		"Title":  "Editar vacante",
		"Action": "/vacantes/" + strconv.FormatInt(id, 10) + "/update",
		"Values": values(vacanteValues(vacante), flash),
	})
}

func (h *Handler) VacanteUpdate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/vacantes", Flash{Error: vacanteNotFound})
		return
	}
	input, old := formInput(c)
	if _, err := h.vacanteUC.Update(c.Request.Context(), id, input); err != nil {
		h.fail(c, err, "/vacantes/"+strconv.FormatInt(id, 10)+"/edit", "/vacantes", old)
		return
	}
	h.redirectWith(c, "/vacantes", Flash{Success: "Vacante actualizada correctamente"})
}

func (h *Handler) VacanteDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/vacantes", Flash{Error: vacanteNotFound})
		return
	}
	if err := h.vacanteUC.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "/vacantes", "/vacantes", nil)
		return
	}
	h.redirectWith(c, "/vacantes", Flash{Success: "Vacante eliminada correctamente"})
}

// errorPage renders a failed listing instead of redirecting back to it.
func (h *Handler) errorPage(c *gin.Context, err error) {
	h.logFailure(c, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Error",
		"Message": "Ocurrió un error inesperado. Intenta de nuevo más tarde.",
	})
}
