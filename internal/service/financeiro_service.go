package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/repository"
)

var ErrLancamentoNaoEncontrado = errors.New("lançamento não encontrado")

type FinanceiroService interface {
	Listar(ctx context.Context, filtro dto.LancamentoFiltro) (*dto.ListaLancamentos, error)
	Lancar(ctx context.Context, usuarioID uuid.UUID, req dto.LancamentoRequest) (*dto.LancamentoResponse, error)
	// Baixar marks an entry as paid. Calling it on an already-paid entry is
	// a no-op: the original data_pagamento is preserved and jaPago is true.
	Baixar(ctx context.Context, id uuid.UUID, formaPagamento string) (resp *dto.LancamentoResponse, jaPago bool, err error)
}

type financeiroService struct {
	repo repository.LancamentoRepository
}

func NewFinanceiroService(repo repository.LancamentoRepository) FinanceiroService {
	return &financeiroService{repo: repo}
}

func (s *financeiroService) Listar(ctx context.Context, filtro dto.LancamentoFiltro) (*dto.ListaLancamentos, error) {
	if filtro.Limit < 1 {
		filtro.Limit = 50
	}
	lancamentos, _, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}

	entradas, err := s.repo.TotalPago(ctx, model.LancamentoReceita)
	if err != nil {
		return nil, err
	}
	saidas, err := s.repo.TotalPago(ctx, model.LancamentoDespesa)
	if err != nil {
		return nil, err
	}
	aReceber, err := s.repo.TotalPendente(ctx, model.LancamentoReceita)
	if err != nil {
		return nil, err
	}

	out := &dto.ListaLancamentos{
		Lancamentos: make([]dto.LancamentoResponse, 0, len(lancamentos)),
		Resumo: dto.ResumoFinanceiro{
			Entradas: entradas,
			Saidas:   saidas,
			Saldo:    entradas.Sub(saidas),
			AReceber: aReceber,
		},
	}
	for i := range lancamentos {
		out.Lancamentos = append(out.Lancamentos, *lancamentoToResponse(&lancamentos[i]))
	}
	return out, nil
}

func (s *financeiroService) Lancar(ctx context.Context, usuarioID uuid.UUID, req dto.LancamentoRequest) (*dto.LancamentoResponse, error) {
	vencimento, err := time.Parse("2006-01-02", req.DataVencimento)
	if err != nil {
		return nil, errors.New("data_vencimento inválida")
	}
	uid := usuarioID
	l := &model.Lancamento{
		Tipo:           req.Tipo,
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		Status:         model.LancamentoPendente,
		FormaPagamento: req.FormaPagamento,
		DataVencimento: vencimento,
		UsuarioID:      &uid,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return lancamentoToResponse(l), nil
}

func (s *financeiroService) Baixar(ctx context.Context, id uuid.UUID, formaPagamento string) (*dto.LancamentoResponse, bool, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, ErrLancamentoNaoEncontrado
	}
	if l.Status == model.LancamentoPago {
		return lancamentoToResponse(l), true, nil
	}

	agora := time.Now()
	if err := s.repo.MarcarPago(ctx, id, formaPagamento, agora); err != nil {
		return nil, false, err
	}
	l.Status = model.LancamentoPago
	l.DataPagamento = &agora
	if formaPagamento != "" {
		l.FormaPagamento = formaPagamento
	}
	return lancamentoToResponse(l), false, nil
}

func lancamentoToResponse(l *model.Lancamento) *dto.LancamentoResponse {
	resp := &dto.LancamentoResponse{
		ID:             l.ID.String(),
		Tipo:           l.Tipo,
		Descricao:      l.Descricao,
		Valor:          l.Valor,
		Status:         l.Status,
		FormaPagamento: l.FormaPagamento,
		DataVencimento: l.DataVencimento.Format("2006-01-02"),
	}
	if l.DataPagamento != nil {
		resp.DataPagamento = l.DataPagamento.Format("2006-01-02")
	}
	if l.Pedido != nil {
		n := l.Pedido.Numero
		resp.PedidoNumero = &n
	}
	return resp
}
