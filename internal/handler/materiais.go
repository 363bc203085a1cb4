package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/service"
)

type MateriaisHandler struct{ svc service.MaterialService }

func NewMateriaisHandler(svc service.MaterialService) *MateriaisHandler {
	return &MateriaisHandler{svc: svc}
}

// CriarMaterial godoc
// @Summary      Cadastrar material
// @Tags         materiais
// @Accept       json
// @Produce      json
// @Param        body body dto.MaterialRequest true "Dados do material"
// @Success      201  {object} dto.MaterialResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/materiais [post]
func (h *MateriaisHandler) CriarMaterial(c *gin.Context) {
	var req dto.MaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarMaterial(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMateriais godoc
// @Summary      Listar materiais
// @Tags         materiais
// @Produce      json
// @Param        ativo query string false "all | false (default: somente ativos)"
// @Success      200 {array} dto.MaterialResponse
// @Router       /v1/materiais [get]
func (h *MateriaisHandler) ListarMateriais(c *gin.Context) {
	resp, err := h.svc.ListarMateriais(c.Request.Context(), c.Query("ativo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar materiais"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Catalogo godoc
// @Summary      Tabela de preços para o formulário de pedido
// @Description  Lista enxuta dos materiais ativos com preços venda/revenda; cacheada em redis.
// @Tags         materiais
// @Produce      json
// @Success      200 {array} dto.PrecoMaterial
// @Router       /v1/materiais/precos [get]
func (h *MateriaisHandler) Catalogo(c *gin.Context) {
	resp, err := h.svc.Catalogo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar preços"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterMaterial godoc
// @Summary      Detalhar material
// @Tags         materiais
// @Produce      json
// @Param        id path string true "UUID do material"
// @Success      200 {object} dto.MaterialResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/materiais/{id} [get]
func (h *MateriaisHandler) ObterMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterMaterial(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("material"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarMaterial godoc
// @Summary      Atualizar material
// @Description  Altera o cadastro e a tabela de preços. Pedidos existentes não são afetados: itens congelam preço na venda.
// @Tags         materiais
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do material"
// @Param        body body dto.MaterialRequest true "Dados do material"
// @Success      200  {object} dto.MaterialResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/materiais/{id} [put]
func (h *MateriaisHandler) AtualizarMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarMaterial(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("material"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesativarMaterial godoc
// @Summary      Desativar material
// @Description  Soft delete: o material some do catálogo mas pedidos antigos continuam referenciando a linha.
// @Tags         materiais
// @Produce      json
// @Param        id path string true "UUID do material"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/materiais/{id} [delete]
func (h *MateriaisHandler) DesativarMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DesativarMaterial(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaterialNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("material"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ReativarMaterial godoc
// @Summary      Reativar material
// @Tags         materiais
// @Produce      json
// @Param        id path string true "UUID do material"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/materiais/{id}/reativar [put]
func (h *MateriaisHandler) ReativarMaterial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ReativarMaterial(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaterialNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("material"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
