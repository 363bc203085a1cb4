package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

var (
	ErrEtapaComPedidos  = errors.New("não é possível excluir: existem pedidos nesta etapa")
	ErrStatusComPedidos = errors.New("não é possível excluir: existem pedidos com este status")
)

// PipelineService manages the admin-defined kanban vocabulary: the etapas
// (columns) and the status rows pedidos reference.
type PipelineService interface {
	CriarEtapa(ctx context.Context, req dto.EtapaRequest) (*dto.EtapaResponse, error)
	ListarEtapas(ctx context.Context) ([]dto.EtapaResponse, error)
	AtualizarEtapa(ctx context.Context, id uuid.UUID, req dto.EtapaRequest) (*dto.EtapaResponse, error)
	DeletarEtapa(ctx context.Context, id uuid.UUID) error

	CriarStatus(ctx context.Context, req dto.StatusRequest) (*dto.StatusResponse, error)
	ListarStatus(ctx context.Context) ([]dto.StatusResponse, error)
	AtualizarStatus(ctx context.Context, id uuid.UUID, req dto.StatusRequest) (*dto.StatusResponse, error)
	DeletarStatus(ctx context.Context, id uuid.UUID) error
}

type pipelineService struct {
	etapaRepo  repository.EtapaRepository
	statusRepo repository.StatusRepository
	pedidoRepo repository.PedidoRepository
}

func NewPipelineService(
	etapaRepo repository.EtapaRepository,
	statusRepo repository.StatusRepository,
	pedidoRepo repository.PedidoRepository,
) PipelineService {
	return &pipelineService{etapaRepo: etapaRepo, statusRepo: statusRepo, pedidoRepo: pedidoRepo}
}

func (s *pipelineService) CriarEtapa(ctx context.Context, req dto.EtapaRequest) (*dto.EtapaResponse, error) {
	e := &model.Etapa{Nome: req.Nome, Ordem: req.Ordem}
	if err := s.etapaRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return etapaToResponse(e), nil
}

func (s *pipelineService) ListarEtapas(ctx context.Context) ([]dto.EtapaResponse, error) {
	etapas, err := s.etapaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EtapaResponse, 0, len(etapas))
	for i := range etapas {
		resp = append(resp, *etapaToResponse(&etapas[i]))
	}
	return resp, nil
}

func (s *pipelineService) AtualizarEtapa(ctx context.Context, id uuid.UUID, req dto.EtapaRequest) (*dto.EtapaResponse, error) {
	e, err := s.etapaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEtapaNaoEncontrada
	}
	e.Nome = req.Nome
	e.Ordem = req.Ordem
	if err := s.etapaRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return etapaToResponse(e), nil
}

// DeletarEtapa rejects the removal while any pedido, open or not, still
// points at the column.
func (s *pipelineService) DeletarEtapa(ctx context.Context, id uuid.UUID) error {
	if _, err := s.etapaRepo.FindByID(ctx, id); err != nil {
		return ErrEtapaNaoEncontrada
	}
	total, err := s.pedidoRepo.CountByEtapa(ctx, id)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrEtapaComPedidos
	}
	return s.etapaRepo.Delete(ctx, id)
}

func (s *pipelineService) CriarStatus(ctx context.Context, req dto.StatusRequest) (*dto.StatusResponse, error) {
	st := &model.Status{Nome: req.Nome}
	if req.Cor != "" {
		st.Cor = req.Cor
	}
	if err := s.statusRepo.Create(ctx, st); err != nil {
		return nil, err
	}
	return statusToResponse(st), nil
}

func (s *pipelineService) ListarStatus(ctx context.Context) ([]dto.StatusResponse, error) {
	status, err := s.statusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StatusResponse, 0, len(status))
	for i := range status {
		resp = append(resp, *statusToResponse(&status[i]))
	}
	return resp, nil
}

func (s *pipelineService) AtualizarStatus(ctx context.Context, id uuid.UUID, req dto.StatusRequest) (*dto.StatusResponse, error) {
	st, err := s.statusRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStatusNaoEncontrado
	}
	st.Nome = req.Nome
	if req.Cor != "" {
		st.Cor = req.Cor
	}
	if err := s.statusRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	return statusToResponse(st), nil
}

func (s *pipelineService) DeletarStatus(ctx context.Context, id uuid.UUID) error {
	if _, err := s.statusRepo.FindByID(ctx, id); err != nil {
		return ErrStatusNaoEncontrado
	}
	total, err := s.statusRepo.CountPedidos(ctx, id)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrStatusComPedidos
	}
	return s.statusRepo.Delete(ctx, id)
}

func etapaToResponse(e *model.Etapa) *dto.EtapaResponse {
	return &dto.EtapaResponse{ID: e.ID.String(), Nome: e.Nome, Ordem: e.Ordem}
}

func statusToResponse(s *model.Status) *dto.StatusResponse {
	return &dto.StatusResponse{ID: s.ID.String(), Nome: s.Nome, Cor: s.Cor}
}
