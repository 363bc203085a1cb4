package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/auth"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/middleware"
	"github.com/nunes1886/prisma/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Autenticar usuário
// @Description  Valida credenciais e emite o cookie de sessão HttpOnly.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciais"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, sess, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao autenticar"))
		return
	}
	auth.SetCookie(c, sess)
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := auth.ReadToken(c); ok {
		_ = h.svc.Logout(c.Request.Context(), token)
	}
	auth.ClearCookie(c)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Usuário da sessão atual
// @Tags         auth
// @Produce      json
// @Success      200 {object} auth.Session
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"id":           sess.UserID.String(),
		"username":     sess.Username,
		"nivel_acesso": sess.NivelAcesso,
	})
}

// CriarUsuario godoc
// @Summary      Criar usuário (admin)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body body dto.CriarUsuarioRequest true "Novo usuário"
// @Success      201  {object} dto.UsuarioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/usuarios [post]
func (h *AuthHandler) CriarUsuario(c *gin.Context) {
	var req dto.CriarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarUsuario(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarUsuarios godoc
// @Summary      Listar usuários (admin)
// @Tags         usuarios
// @Produce      json
// @Success      200 {array} dto.UsuarioResponse
// @Router       /v1/usuarios [get]
func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar usuários"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarUsuario godoc
// @Summary      Atualizar usuário (admin)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id   path string true "UUID do usuário"
// @Param        body body dto.AtualizarUsuarioRequest true "Campos a alterar"
// @Success      200  {object} dto.UsuarioResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/usuarios/{id} [put]
func (h *AuthHandler) AtualizarUsuario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("usuário"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesativarUsuario godoc
// @Summary      Desativar usuário (admin)
// @Description  Auto-desativação é rejeitada.
// @Tags         usuarios
// @Produce      json
// @Param        id path string true "UUID do usuário"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/usuarios/{id} [delete]
func (h *AuthHandler) DesativarUsuario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sess := middleware.GetSession(c)
	if err := h.svc.DesativarUsuario(c.Request.Context(), sess.UserID, id); err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("usuário"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ReativarUsuario godoc
// @Summary      Reativar usuário (admin)
// @Tags         usuarios
// @Produce      json
// @Param        id path string true "UUID do usuário"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/usuarios/{id}/reativar [patch]
func (h *AuthHandler) ReativarUsuario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ReativarUsuario(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.NotFound("usuário"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
