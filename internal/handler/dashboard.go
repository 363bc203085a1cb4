package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumo godoc
// @Summary      Indicadores do painel
// @Description  Pedidos em aberto, pedidos e faturamento do mês, a receber, contagem por etapa, últimos pedidos e próximas entregas. Cacheado em redis por 60s.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.DashboardResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Resumo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o painel"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
