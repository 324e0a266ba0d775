package handler

import (
	"net/http"

	"plastgest/internal/dto"
	"plastgest/internal/service"

	"github.com/gin-gonic/gin"
)

type FichasHandler struct{ svc service.ProducaoService }

func NewFichasHandler(svc service.ProducaoService) *FichasHandler {
	return &FichasHandler{svc: svc}
}

// AdicionarExtrusao records an extrusion run: recipe materials are consumed
// and the finished product's stock credited, atomically.
func (h *FichasHandler) AdicionarExtrusao(c *gin.Context) {
	var req dto.FichaExtrusaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarExtrusao(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AdicionarCorte records a cutting run: credits the finished product, the
// scrap product when present, and debits the source roll when one is named.
func (h *FichasHandler) AdicionarCorte(c *gin.Context) {
	var req dto.FichaCorteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCorte(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
