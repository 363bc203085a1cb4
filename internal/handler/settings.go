package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/service"
)

type SettingsHandler struct{ svc service.ConfiguracaoService }

func NewSettingsHandler(svc service.ConfiguracaoService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Obter godoc
// @Summary      Dados de identidade da empresa
// @Tags         configuracoes
// @Produce      json
// @Success      200 {object} dto.ConfiguracaoResponse
// @Router       /v1/configuracoes [get]
func (h *SettingsHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar configurações"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar identidade da empresa (admin)
// @Tags         configuracoes
// @Accept       json
// @Produce      json
// @Param        body body dto.ConfiguracaoRequest true "Dados da empresa"
// @Success      200  {object} dto.ConfiguracaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/configuracoes [put]
func (h *SettingsHandler) Atualizar(c *gin.Context) {
	var req dto.ConfiguracaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadImagem godoc
// @Summary      Enviar logo ou favicon (admin)
// @Description  Aceita somente png, jpg, jpeg, gif, svg e ico. campo é "logo" ou "favicon".
// @Tags         configuracoes
// @Accept       multipart/form-data
// @Produce      json
// @Param        campo   path     string true "logo | favicon"
// @Param        arquivo formData file   true "Imagem"
// @Success      200     {object} dto.ConfiguracaoResponse
// @Failure      400     {object} apierror.APIError
// @Router       /v1/configuracoes/{campo} [post]
func (h *SettingsHandler) UploadImagem(c *gin.Context) {
	campo := c.Param("campo")
	file, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Arquivo ausente"))
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Não foi possível ler o arquivo"))
		return
	}
	defer src.Close()

	resp, err := h.svc.SalvarImagem(c.Request.Context(), campo, file.Filename, src)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
