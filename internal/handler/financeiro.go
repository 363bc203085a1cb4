package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/middleware"
	"github.com/nunes1886/prisma/internal/service"
)

type FinanceiroHandler struct{ svc service.FinanceiroService }

func NewFinanceiroHandler(svc service.FinanceiroService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar lançamentos do caixa
// @Description  Lançamentos filtrados por tipo/status/período, acompanhados dos totais consolidados (entradas, saídas, saldo, a receber).
// @Tags         financeiro
// @Produce      json
// @Param        tipo   query string false "receita | despesa"
// @Param        status query string false "pendente | pago"
// @Param        inicio query string false "Vencimento a partir de (YYYY-MM-DD)"
// @Param        fim    query string false "Vencimento até (YYYY-MM-DD)"
// @Success      200 {object} dto.ListaLancamentos
// @Router       /v1/financeiro [get]
func (h *FinanceiroHandler) Listar(c *gin.Context) {
	var filtro dto.LancamentoFiltro
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtro inválido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar lançamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Lancar godoc
// @Summary      Lançar receita ou despesa manual
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Param        body body dto.LancamentoRequest true "Lançamento"
// @Success      201  {object} dto.LancamentoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/financeiro [post]
func (h *FinanceiroHandler) Lancar(c *gin.Context) {
	var req dto.LancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	resp, err := h.svc.Lancar(c.Request.Context(), sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Baixar godoc
// @Summary      Dar baixa em um lançamento
// @Description  Marca o lançamento como pago. Idempotente: repetir a baixa não altera a data de pagamento original.
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do lançamento"
// @Param        body body dto.BaixarRequest false "Forma de pagamento"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} apierror.APIError
// @Router       /v1/financeiro/{id}/baixar [put]
func (h *FinanceiroHandler) Baixar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BaixarRequest
	_ = c.ShouldBindJSON(&req) // corpo opcional

	resp, jaPago, err := h.svc.Baixar(c.Request.Context(), id, req.FormaPagamento)
	if err != nil {
		if errors.Is(err, service.ErrLancamentoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("lançamento"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	out := gin.H{"lancamento": resp}
	if jaPago {
		out["notice"] = "Lançamento já estava pago"
	}
	c.JSON(http.StatusOK, out)
}
