package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:kpis"
	dashboardCacheTTL = 60 * time.Second
)

type DashboardService interface {
	Resumo(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	pedidoRepo     repository.PedidoRepository
	lancamentoRepo repository.LancamentoRepository
	rdb            *redis.Client
}

func NewDashboardService(
	pedidoRepo repository.PedidoRepository,
	lancamentoRepo repository.LancamentoRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{pedidoRepo: pedidoRepo, lancamentoRepo: lancamentoRepo, rdb: rdb}
}

func (s *dashboardService) Resumo(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	abertos, err := s.pedidoRepo.CountAbertos(ctx)
	if err != nil {
		return nil, err
	}
	inicioMes := time.Now().AddDate(0, 0, 1-time.Now().Day())
	inicioMes = time.Date(inicioMes.Year(), inicioMes.Month(), inicioMes.Day(), 0, 0, 0, 0, inicioMes.Location())
	pedidosMes, err := s.pedidoRepo.CountDesde(ctx, inicioMes)
	if err != nil {
		return nil, err
	}
	faturamento, err := s.lancamentoRepo.ReceitaDesde(ctx, inicioMes)
	if err != nil {
		return nil, err
	}
	aReceber, err := s.lancamentoRepo.TotalPendente(ctx, model.LancamentoReceita)
	if err != nil {
		return nil, err
	}
	porEtapa, err := s.pedidoRepo.ContagemPorEtapa(ctx)
	if err != nil {
		return nil, err
	}
	ultimos, err := s.pedidoRepo.UltimosPedidos(ctx, 5)
	if err != nil {
		return nil, err
	}
	entregas, err := s.pedidoRepo.ProximasEntregas(ctx, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		PedidosAbertos:  abertos,
		PedidosMes:      pedidosMes,
		FaturamentoMes:  faturamento,
		AReceber:        aReceber,
		PedidosPorEtapa: porEtapa,
	}
	for i := range ultimos {
		p := pedidoToResponse(&ultimos[i])
		p.Items = nil
		resp.UltimosPedidos = append(resp.UltimosPedidos, *p)
	}
	for i := range entregas {
		p := pedidoToResponse(&entregas[i])
		p.Items = nil
		resp.ProximasEntregas = append(resp.ProximasEntregas, *p)
	}

	// cache write is best effort
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, dashboardCacheKey, b, dashboardCacheTTL).Err()
		}
	}
	return resp, nil
}
