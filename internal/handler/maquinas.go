package handler

import (
	"net/http"

	"plastgest/internal/apierror"
	"plastgest/internal/dto"
	"plastgest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaquinasHandler struct{ svc service.MaquinaService }

func NewMaquinasHandler(svc service.MaquinaService) *MaquinasHandler {
	return &MaquinasHandler{svc: svc}
}

func (h *MaquinasHandler) Criar(c *gin.Context) {
	var req dto.CriarMaquinaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MaquinasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaquinasHandler) Buscar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaquinasHandler) Editar(c *gin.Context) {
	var req dto.EditarMaquinaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Editar(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Máquina atualizada com sucesso."})
}

func (h *MaquinasHandler) Remover(c *gin.Context) {
	var req dto.RemoverMaquinaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Máquina removida com sucesso."})
}
