package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/service"
)

// PipelineHandler exposes the admin CRUD over etapas and status.
type PipelineHandler struct{ svc service.PipelineService }

func NewPipelineHandler(svc service.PipelineService) *PipelineHandler {
	return &PipelineHandler{svc: svc}
}

// ── Etapas ───────────────────────────────────────────────────────────────────

// CriarEtapa godoc
// @Summary      Criar etapa do kanban (admin)
// @Tags         etapas
// @Accept       json
// @Produce      json
// @Param        body body dto.EtapaRequest true "Etapa"
// @Success      201  {object} dto.EtapaResponse
// @Router       /v1/etapas [post]
func (h *PipelineHandler) CriarEtapa(c *gin.Context) {
	var req dto.EtapaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarEtapa(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarEtapas godoc
// @Summary      Listar etapas em ordem
// @Tags         etapas
// @Produce      json
// @Success      200 {array} dto.EtapaResponse
// @Router       /v1/etapas [get]
func (h *PipelineHandler) ListarEtapas(c *gin.Context) {
	resp, err := h.svc.ListarEtapas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar etapas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarEtapa godoc
// @Summary      Atualizar etapa (admin)
// @Tags         etapas
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID da etapa"
// @Param        body body dto.EtapaRequest true "Etapa"
// @Success      200  {object} dto.EtapaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/etapas/{id} [put]
func (h *PipelineHandler) AtualizarEtapa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EtapaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarEtapa(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrEtapaNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.NotFound("etapa"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletarEtapa godoc
// @Summary      Excluir etapa (admin)
// @Description  Rejeitada enquanto existirem pedidos na coluna.
// @Tags         etapas
// @Produce      json
// @Param        id path string true "UUID da etapa"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/etapas/{id} [delete]
func (h *PipelineHandler) DeletarEtapa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletarEtapa(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEtapaNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.NotFound("etapa"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Status ───────────────────────────────────────────────────────────────────

// CriarStatus godoc
// @Summary      Criar status (admin)
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        body body dto.StatusRequest true "Status"
// @Success      201  {object} dto.StatusResponse
// @Router       /v1/status [post]
func (h *PipelineHandler) CriarStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarStatus(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarStatus godoc
// @Summary      Listar status
// @Tags         status
// @Produce      json
// @Success      200 {array} dto.StatusResponse
// @Router       /v1/status [get]
func (h *PipelineHandler) ListarStatus(c *gin.Context) {
	resp, err := h.svc.ListarStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar status"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarStatus godoc
// @Summary      Atualizar status (admin)
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do status"
// @Param        body body dto.StatusRequest true "Status"
// @Success      200  {object} dto.StatusResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/status/{id} [put]
func (h *PipelineHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrStatusNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("status"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletarStatus godoc
// @Summary      Excluir status (admin)
// @Tags         status
// @Produce      json
// @Param        id path string true "UUID do status"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/status/{id} [delete]
func (h *PipelineHandler) DeletarStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletarStatus(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStatusNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("status"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
