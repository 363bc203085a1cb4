package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/middleware"
	"github.com/nunes1886/prisma/internal/service"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// CriarPedido godoc
// @Summary      Registrar pedido
// @Description  Cria o pedido completo em uma transação: cabeçalho, itens com preço congelado, total e a receita pendente no caixa. Qualquer item inválido descarta tudo.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body body dto.CriarPedidoRequest true "Pedido com itens"
// @Success      201  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) CriarPedido(c *gin.Context) {
	var req dto.CriarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	resp, err := h.svc.CriarPedido(c.Request.Context(), sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPedidos godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Param        q         query string false "Busca por título, cliente ou número"
// @Param        etapa_id  query string false "Filtra por etapa"
// @Param        status_id query string false "Filtra por status"
// @Param        limit     query int    false "Registros por página (default 50)"
// @Param        offset    query int    false "Deslocamento"
// @Success      200 {object} map[string]interface{}
// @Router       /v1/pedidos [get]
func (h *PedidosHandler) ListarPedidos(c *gin.Context) {
	var filtro dto.PedidoFiltro
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	pedidos, total, err := h.svc.ListarPedidos(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pedidos, "total": total})
}

// Kanban godoc
// @Summary      Quadro kanban de produção
// @Description  Pedidos em aberto agrupados por etapa, uma coluna por etapa cadastrada.
// @Tags         pedidos
// @Produce      json
// @Success      200 {array} dto.KanbanColuna
// @Router       /v1/pedidos/kanban [get]
func (h *PedidosHandler) Kanban(c *gin.Context) {
	resp, err := h.svc.Kanban(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o quadro"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPedido godoc
// @Summary      Detalhe do pedido
// @Tags         pedidos
// @Produce      json
// @Param        id path string true "UUID do pedido"
// @Success      200 {object} dto.PedidoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pedidos/{id} [get]
func (h *PedidosHandler) ObterPedido(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPedido(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("pedido"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MudarEtapa godoc
// @Summary      Mover pedido de etapa
// @Description  Move o cartão para qualquer coluna do kanban, sem restrição de sequência.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do pedido"
// @Param        body body dto.MudarEtapaRequest true "Etapa destino"
// @Success      200  {object} dto.PedidoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/pedidos/{id}/etapa [put]
func (h *PedidosHandler) MudarEtapa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MudarEtapaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	etapaID, _ := uuid.Parse(req.EtapaID)
	resp, err := h.svc.MudarEtapa(c.Request.Context(), id, etapaID)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("pedido"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MudarStatus godoc
// @Summary      Mudar status do pedido
// @Description  Aceita qualquer transição exceto Finalizado → Cancelado.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do pedido"
// @Param        body body dto.MudarStatusRequest true "Status destino"
// @Success      200  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError
// @Router       /v1/pedidos/{id}/status [put]
func (h *PedidosHandler) MudarStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MudarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	statusID, _ := uuid.Parse(req.StatusID)
	resp, err := h.svc.MudarStatus(c.Request.Context(), id, statusID)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("pedido"))
			return
		}
		if errors.Is(err, service.ErrCancelarFinalizado) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OrcamentoPDF godoc
// @Summary      Orçamento do pedido em PDF
// @Tags         pedidos
// @Produce      application/pdf
// @Param        id path string true "UUID do pedido"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pedidos/{id}/orcamento.pdf [get]
func (h *PedidosHandler) OrcamentoPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, filename, err := h.svc.GerarOrcamentoPDF(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("pedido"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar o orçamento"))
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
