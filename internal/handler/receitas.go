package handler

import (
	"net/http"

	"plastgest/internal/dto"
	"plastgest/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceitasHandler struct{ svc service.ReceitaService }

func NewReceitasHandler(svc service.ReceitaService) *ReceitasHandler {
	return &ReceitasHandler{svc: svc}
}

// Definir applies a formulation to every roll product, replacing whatever
// constituents were registered before.
func (h *ReceitasHandler) Definir(c *gin.Context) {
	var req dto.DefinirReceitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.DefinirReceita(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensagem": "Receita adicionada com sucesso."})
}

func (h *ReceitasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarReceitas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReceitasHandler) ListarConstituintes(c *gin.Context) {
	resp, err := h.svc.ListarConstituintes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
