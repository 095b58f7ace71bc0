package web

import (
	"strconv"
	"strings"

	"go-recruitment-tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

const prospectoNotFound = "Prospecto not found"

func prospectoValues(p *domain.Prospecto) map[string]string {
	if p == nil {
		return map[string]string{}
	}
	return map[string]string{
		"nombre":         p.Nombre,
		"correo":         p.Correo,
		"fecha_registro": p.FechaRegistro.String(),
	}
}

func (h *Handler) ProspectoIndex(c *gin.Context) {
	ctx := c.Request.Context()
	q := strings.TrimSpace(c.Query("q"))

	var (
		prospectos []domain.Prospecto
		err        error
	)
	if q != "" {
		prospectos, err = h.prospectoUC.Search(ctx, q)
	} else {
		prospectos, err = h.prospectoUC.GetAll(ctx)
	}
	if err != nil {
		h.errorPage(c, err)
		return
	}

	h.render(c, "prospectos_index.html", h.takeFlash(c), gin.H{
		"Title":      "Prospectos",
		"Query":      q,
		"Prospectos": prospectos,
	})
}

func (h *Handler) ProspectoShow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/prospectos", Flash{Error: prospectoNotFound})
		return
	}
	prospecto, err := h.prospectoUC.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "/prospectos", "/prospectos", nil)
		return
	}
	entrevistas, err := h.entrevistaUC.GetByProspecto(c.Request.Context(), id)
	if err != nil {
		h.errorPage(c, err)
		return
	}

	h.render(c, "prospectos_show.html", h.takeFlash(c), gin.H{
		"Title":       "Prospecto",
		"Prospecto":   prospecto,
		"Entrevistas": entrevistas,
	})
}

func (h *Handler) ProspectoCreateForm(c *gin.Context) {
	flash := h.takeFlash(c)
	h.render(c, "prospectos_form.html", flash, gin.H{
		"Title":  "Nuevo prospecto",
		"Action": "/prospectos",
		"Values": values(prospectoValues(nil), flash),
	})
}

func (h *Handler) ProspectoStore(c *gin.Context) {
	input, old := formInput(c)
	if _, err := h.prospectoUC.Create(c.Request.Context(), input); err != nil {
		h.fail(c, err, "/prospectos/create", "/prospectos", old)
		return
	}
	h.redirectWith(c, "/prospectos", Flash{Success: "Prospecto creado correctamente"})
}

func (h *Handler) ProspectoEditForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/prospectos", Flash{Error: prospectoNotFound})
		return
	}
	prospecto, err := h.prospectoUC.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "/prospectos", "/prospectos", nil)
		return
	}

	flash := h.takeFlash(c)
	h.render(c, "prospectos_form.html", flash, gin.H{
		"Title":  "Editar prospecto",
		"Action": "/prospectos/" + strconv.FormatInt(id, 10) + "/update",
		"Values": values(prospectoValues(prospecto), flash),
	})
}

func (h *Handler) ProspectoUpdate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/prospectos", Flash{Error: prospectoNotFound})
		return
	}
	input, old := formInput(c)
	if _, err := h.prospectoUC.Update(c.Request.Context(), id, input); err != nil {
		h.fail(c, err, "/prospectos/"+strconv.FormatInt(id, 10)+"/edit", "/prospectos", old)
		return
	}
	h.redirectWith(c, "/prospectos", Flash{Success: "Prospecto actualizado correctamente"})
}

func (h *Handler) ProspectoDelete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.redirectWith(c, "/prospectos", Flash{Error: prospectoNotFound})
		return
	}
	if err := h.prospectoUC.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "/prospectos", "/prospectos", nil)
		return
	}
	h.redirectWith(c, "/prospectos", Flash{Success: "Prospecto eliminado correctamente"})
}
