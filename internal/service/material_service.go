package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

var ErrMaterialNaoEncontrado = errors.New("material não encontrado")

const (
	catalogoCacheKey = "materiais:precos"
	catalogoCacheTTL = 10 * time.Minute
)

type MaterialService interface {
	CriarMaterial(ctx context.Context, req dto.MaterialRequest) (*dto.MaterialResponse, error)
	ListarMateriais(ctx context.Context, filtroAtivo string) ([]dto.MaterialResponse, error)
	ObterMaterial(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
	AtualizarMaterial(ctx context.Context, id uuid.UUID, req dto.MaterialRequest) (*dto.MaterialResponse, error)
	DesativarMaterial(ctx context.Context, id uuid.UUID) error
	ReativarMaterial(ctx context.Context, id uuid.UUID) error
	// Catalogo serves the order-form price list, redis-cached with a short TTL.
	Catalogo(ctx context.Context) ([]dto.PrecoMaterial, error)
}

type materialService struct {
	repo repository.MaterialRepository
	rdb  *redis.Client
}

func NewMaterialService(repo repository.MaterialRepository, rdb *redis.Client) MaterialService {
	return &materialService{repo: repo, rdb: rdb}
}

func (s *materialService) CriarMaterial(ctx context.Context, req dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m := &model.Material{
		Nome:         req.Nome,
		Unidade:      req.Unidade,
		PrecoCusto:   req.PrecoCusto,
		PrecoVenda:   req.PrecoVenda,
		PrecoRevenda: req.PrecoRevenda,
		EstoqueAtual: req.EstoqueAtual,
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.invalidarCatalogo(ctx)
	return materialToResponse(m), nil
}

func (s *materialService) ListarMateriais(ctx context.Context, filtroAtivo string) ([]dto.MaterialResponse, error) {
	incluirInativos := filtroAtivo == "all" || filtroAtivo == "false"
	materiais, err := s.repo.List(ctx, incluirInativos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaterialResponse, 0, len(materiais))
	for i := range materiais {
		if filtroAtivo == "false" && materiais[i].Ativo {
			continue
		}
		resp = append(resp, *materialToResponse(&materiais[i]))
	}
	return resp, nil
}

func (s *materialService) ObterMaterial(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMaterialNaoEncontrado
	}
	return materialToResponse(m), nil
}

func (s *materialService) AtualizarMaterial(ctx context.Context, id uuid.UUID, req dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrMaterialNaoEncontrado
	}
	m.Nome = req.Nome
	m.Unidade = req.Unidade
	m.PrecoCusto = req.PrecoCusto
	m.PrecoVenda = req.PrecoVenda
	m.PrecoRevenda = req.PrecoRevenda
	m.EstoqueAtual = req.EstoqueAtual
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.invalidarCatalogo(ctx)
	return materialToResponse(m), nil
}

func (s *materialService) DesativarMaterial(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrMaterialNaoEncontrado
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidarCatalogo(ctx)
	return nil
}

func (s *materialService) ReativarMaterial(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrMaterialNaoEncontrado
	}
	if err := s.repo.Reativar(ctx, id); err != nil {
		return err
	}
	s.invalidarCatalogo(ctx)
	return nil
}

func (s *materialService) Catalogo(ctx context.Context) ([]dto.PrecoMaterial, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, catalogoCacheKey).Bytes(); err == nil {
			var precos []dto.PrecoMaterial
			if jsonErr := json.Unmarshal(cached, &precos); jsonErr == nil {
				return precos, nil
			}
		}
	}

	materiais, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	precos := make([]dto.PrecoMaterial, 0, len(materiais))
	for _, m := range materiais {
		precos = append(precos, dto.PrecoMaterial{
			ID:           m.ID.String(),
			Nome:         m.Nome,
			Unidade:      m.Unidade,
			PrecoVenda:   m.PrecoVenda,
			PrecoRevenda: m.PrecoRevenda,
		})
	}

	// cache write is best effort
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(precos); jsonErr == nil {
			_ = s.rdb.Set(ctx, catalogoCacheKey, b, catalogoCacheTTL).Err()
		}
	}
	return precos, nil
}

func (s *materialService) invalidarCatalogo(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, catalogoCacheKey).Err()
	}
}

func materialToResponse(m *model.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           m.ID.String(),
		Nome:         m.Nome,
		Unidade:      m.Unidade,
		PrecoCusto:   m.PrecoCusto,
		PrecoVenda:   m.PrecoVenda,
		PrecoRevenda: m.PrecoRevenda,
		EstoqueAtual: m.EstoqueAtual,
		Ativo:        m.Ativo,
	}
}
