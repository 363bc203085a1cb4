package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

// ErrDocumentoDuplicado is deliberately vague so the API never confirms
// which documento already exists.
var ErrDocumentoDuplicado = errors.New("não foi possível salvar: verifique se o documento já existe")

type ClienteService interface {
	CriarCliente(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	ListarClientes(ctx context.Context, filtro dto.ClienteFiltro) ([]dto.ClienteResponse, int64, error)
	ObterCliente(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	AtualizarCliente(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	DeletarCliente(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) CriarCliente(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		TipoPessoa: req.TipoPessoa,
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		Email:      req.Email,
		IsRevenda:  req.IsRevenda,
	}
	if req.Documento != "" {
		doc := req.Documento
		c.Documento = &doc
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDocumentoDuplicado
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) ListarClientes(ctx context.Context, filtro dto.ClienteFiltro) ([]dto.ClienteResponse, int64, error) {
	if filtro.Limit < 1 {
		filtro.Limit = 50
	}
	clientes, total, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, total, nil
}

func (s *clienteService) ObterCliente(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) AtualizarCliente(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	c.TipoPessoa = req.TipoPessoa
	c.Nome = req.Nome
	c.Telefone = req.Telefone
	c.Email = req.Email
	c.IsRevenda = req.IsRevenda
	if req.Documento != "" {
		doc := req.Documento
		c.Documento = &doc
	} else {
		c.Documento = nil
	}
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDocumentoDuplicado
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) DeletarCliente(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrClienteNaoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	resp := &dto.ClienteResponse{
		ID:         c.ID.String(),
		TipoPessoa: c.TipoPessoa,
		Nome:       c.Nome,
		Telefone:   c.Telefone,
		Email:      c.Email,
		IsRevenda:  c.IsRevenda,
	}
	if c.Documento != nil {
		resp.Documento = *c.Documento
	}
	return resp
}
