package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// CriarCliente godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body body dto.ClienteRequest true "Dados do cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) CriarCliente(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarCliente(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentoDuplicado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarClientes godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Param        q      query string false "Busca por nome, documento ou telefone"
// @Param        limit  query int    false "Registros por página (default 50)"
// @Param        offset query int    false "Deslocamento"
// @Success      200 {object} map[string]interface{}
// @Router       /v1/clientes [get]
func (h *ClientesHandler) ListarClientes(c *gin.Context) {
	var filtro dto.ClienteFiltro
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	clientes, total, err := h.svc.ListarClientes(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar clientes"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": clientes, "total": total})
}

// ObterCliente godoc
// @Summary      Detalhe de cliente
// @Tags         clientes
// @Produce      json
// @Param        id path string true "UUID do cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) ObterCliente(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterCliente(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("cliente"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarCliente godoc
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do cliente"
// @Param        body body dto.ClienteRequest true "Dados do cliente"
// @Success      200  {object} dto.ClienteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id} [put]
func (h *ClientesHandler) AtualizarCliente(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarCliente(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrClienteNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("cliente"))
			return
		}
		if errors.Is(err, service.ErrDocumentoDuplicado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletarCliente godoc
// @Summary      Excluir cliente
// @Tags         clientes
// @Produce      json
// @Param        id path string true "UUID do cliente"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) DeletarCliente(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletarCliente(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClienteNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("cliente"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
