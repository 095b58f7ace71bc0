package web

import (
	"strconv"

	"go-recruitment-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

const entrevistaNotFound = "Entrevista not found"

func entrevistaValues(e *domain.EntrevistaDetail) map[string]string {
	values := map[string]string{"reclutado": "0"}
	if e == nil {
		return values
	}
	values["vacante"] = strconv.FormatInt(e.VacanteID, 10)
	values["prospecto"] = strconv.FormatInt(e.ProspectoID, 10)
	values["fecha_entrevista"] = e.FechaEntrevista.String()
	if e.Notas != nil {
		values["notas"] = *e.Notas
	}
	if e.Reclutado {
		values["reclutado"] = "1"
	}
	return values
}

func entrevistaPath(vacanteID, prospectoID int64) string {
	return "/entrevistas/" + strconv.FormatInt(vacanteID, 10) + "/" + strconv.FormatInt(prospectoID, 10)
}

func (h *Handler) pair(c *gin.Context) (int64, int64, bool) {
	vacanteID, ok := pathID(c, "vacante")
	if !ok {
		return 0, 0, false
	}
	prospectoID, ok := pathID(c, "prospecto")
	return vacanteID, prospectoID, ok
}

// EntrevistaIndex lists every entrevista, or those of one vacante or
// prospecto when ?vacante= or ?prospecto= is given.
func (h *Handler) EntrevistaIndex(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		entrevistas []domain.EntrevistaDetail
		err         error
	)
	if id, convErr := strconv.ParseInt(c.Query("vacante"), 10, 64); convErr == nil {
		entrevistas, err = h.entrevistaUC.GetByVacante(ctx, id)
	} else if id, convErr := strconv.ParseInt(c.Query("prospecto"), 10, 64); convErr == nil {
		entrevistas, err = h.entrevistaUC.GetByProspecto(ctx, id)
	} else {
		entrevistas, err = h.entrevistaUC.GetAll(ctx)
	}
	if err != nil {
		h.errorPage(c, err)
		return
	}

	h.render(c, "entrevistas_index.html", h.takeFlash(c), gin.H{
		"Title":       "Entrevistas",
		"Entrevistas": entrevistas,
	})
}

func (h *Handler) EntrevistaShow(c *gin.Context) {
	vacanteID, prospectoID, ok := h.pair(c)
	if !ok {
		h.redirectWith(c, "/entrevistas", Flash{Error: entrevistaNotFound})
		return
	}
	entrevista, err := h.entrevistaUC.Get(c.Request.Context(), vacanteID, prospectoID)
	if err != nil {
		h.fail(c, err, "/entrevistas", "/entrevistas", nil)
		return
	}

	h.render(c, "entrevistas_show.html", h.takeFlash(c), gin.H{
		"Title":      "Entrevista",
		"Entrevista": entrevista,
		"Path":       entrevistaPath(vacanteID, prospectoID),
	})
}

func (h *Handler) EntrevistaCreateForm(c *gin.Context) {
	formData, err := h.entrevistaUC.GetFormData(c.Request.Context())
	if err != nil {
		h.errorPage(c, err)
		return
	}

	flash := h.takeFlash(c)
	h.render(c, "entrevistas_form.html", flash, gin.H{
		"Title":      "Nueva entrevista",
		"Action":     "/entrevistas",
		"Vacantes":   formData.Vacantes,
		"Prospectos": formData.Prospectos,
		"Values":     values(entrevistaValues(nil), flash),
	})
}

func (h *Handler) EntrevistaStore(c *gin.Context) {
	input, old := formInput(c)
	if _, err := h.entrevistaUC.Create(c.Request.Context(), input); err != nil {
		h.fail(c, err, "/entrevistas/create", "/entrevistas", old)
		return
	}
	h.redirectWith(c, "/entrevistas", Flash{Success: "Entrevista creada correctamente"})
}

func (h *Handler) EntrevistaEditForm(c *gin.Context) {
	vacanteID, prospectoID, ok := h.pair(c)
	if !ok {
		h.redirectWith(c, "/entrevistas", Flash{Error: entrevistaNotFound})
		return
	}
	ctx := c.Request.Context()
	entrevista, err := h.entrevistaUC.Get(ctx, vacanteID, prospectoID)
	if err != nil {
		h.fail(c, err, "/entrevistas", "/entrevistas", nil)
		return
	}
	formData, err := h.entrevistaUC.GetFormData(ctx)
	if err != nil {
		h.errorPage(c, err)
		return
	}

	flash := h.takeFlash(c)
	h.render(c, "entrevistas_form.html", flash, gin.H{
		"Title":      "Editar entrevista",
		"Action":     entrevistaPath(vacanteID, prospectoID) + "/update",
		"Vacantes":   withVacante(formData.Vacantes, entrevista.Vacante),
		"Prospectos": withProspecto(formData.Prospectos, entrevista.Prospecto),
		"Values":     values(entrevistaValues(entrevista), flash),
	})
}

func (h *Handler) EntrevistaUpdate(c *gin.Context) {
	vacanteID, prospectoID, ok := h.pair(c)
	if !ok {
		h.redirectWith(c, "/entrevistas", Flash{Error: entrevistaNotFound})
		return
	}
	input, old := formInput(c)
	if _, err := h.entrevistaUC.Update(c.Request.Context(), vacanteID, prospectoID, input); err != nil {
		h.fail(c, err, entrevistaPath(vacanteID, prospectoID)+"/edit", "/entrevistas", old)
		return
	}
	h.redirectWith(c, "/entrevistas", Flash{Success: "Entrevista actualizada correctamente"})
}

func (h *Handler) EntrevistaDelete(c *gin.Context) {
	vacanteID, prospectoID, ok := h.pair(c)
	if !ok {
		h.redirectWith(c, "/entrevistas", Flash{Error: entrevistaNotFound})
		return
	}
	if err := h.entrevistaUC.Delete(c.Request.Context(), vacanteID, prospectoID); err != nil {
		h.fail(c, err, "/entrevistas", "/entrevistas", nil)
		return
	}
	h.redirectWith(c, "/entrevistas", Flash{Success: "Entrevista eliminada correctamente"})
}

// withVacante keeps the current selection available when it is no longer
// active.
func withVacante(list []domain.Vacante, current *domain.Vacante) []domain.Vacante {
	if current == nil {
		return list
	}
	for _, v := range list {
		if v.ID == current.ID {
			return list
		}
	}
	return append([]domain.Vacante{*current}, list...)
}

func withProspecto(list []domain.Prospecto, current *domain.Prospecto) []domain.Prospecto {
	if current == nil {
		return list
	}
	for _, p := range list {
		if p.ID == current.ID {
			return list
		}
	}
	return append([]domain.Prospecto{*current}, list...)
}
