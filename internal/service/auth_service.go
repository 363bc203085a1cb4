package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nunes1886/prisma/internal/auth"
	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

var (
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrAutoExclusao         = errors.New("você não pode se auto-excluir")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, *auth.Session, error)
	Logout(ctx context.Context, token string) error
	CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	AtualizarUsuario(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesativarUsuario(ctx context.Context, atorID, id uuid.UUID) error
	ReativarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo       repository.UsuarioRepository
	sessions   auth.SessionStore
	sessionTTL time.Duration
}

func NewAuthService(repo repository.UsuarioRepository, sessions auth.SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{repo: repo, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, *auth.Session, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, nil, ErrCredenciaisInvalidas
	}
	if !user.Ativo {
		return nil, nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, nil, ErrCredenciaisInvalidas
	}

	sess := auth.NewSession(user.ID, user.Username, user.NivelAcesso, s.sessionTTL)
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, nil, err
	}

	// Produção cai direto no quadro kanban, o resto no dashboard.
	redirect := "/dashboard"
	if user.NivelAcesso == model.NivelProducao {
		redirect = "/kanban"
	}

	return &dto.LoginResponse{
		User:     usuarioToResponse(user),
		Redirect: redirect,
	}, sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *authService) CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:     req.Username,
		NomeCompleto: req.NomeCompleto,
		SenhaHash:    string(hash),
		NivelAcesso:  req.NivelAcesso,
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = usuarioToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) AtualizarUsuario(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	if req.NomeCompleto != "" {
		user.NomeCompleto = req.NomeCompleto
	}
	if req.NivelAcesso != nil {
		user.NivelAcesso = *req.NivelAcesso
	}
	if req.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
		if err != nil {
			return nil, err
		}
		user.SenhaHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) DesativarUsuario(ctx context.Context, atorID, id uuid.UUID) error {
	if atorID == id {
		return ErrAutoExclusao
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrUsuarioNaoEncontrado
	}
	return s.repo.Desativar(ctx, id)
}

func (s *authService) ReativarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrUsuarioNaoEncontrado
	}
	return s.repo.Reativar(ctx, id)
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:           u.ID.String(),
		Username:     u.Username,
		NomeCompleto: u.NomeCompleto,
		NivelAcesso:  u.NivelAcesso,
		Ativo:        u.Ativo,
	}
}
