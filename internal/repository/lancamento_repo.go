package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
)

type LancamentoRepository interface {
	Create(ctx context.Context, l *model.Lancamento) error
	// CreateTx participates in the order-creation transaction.
	CreateTx(ctx context.Context, tx *gorm.DB, l *model.Lancamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lancamento, error)
	List(ctx context.Context, filtro dto.LancamentoFiltro) ([]model.Lancamento, int64, error)
	MarcarPago(ctx context.Context, id uuid.UUID, formaPagamento string, quando time.Time) error
	TotalPago(ctx context.Context, tipo string) (decimal.Decimal, error)
	TotalPendente(ctx context.Context, tipo string) (decimal.Decimal, error)
	ReceitaDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error)
}

type lancamentoRepo struct{ db *gorm.DB }

func NewLancamentoRepository(db *gorm.DB) LancamentoRepository { return &lancamentoRepo{db: db} }

func (r *lancamentoRepo) Create(ctx context.Context, l *model.Lancamento) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lancamentoRepo) CreateTx(ctx context.Context, tx *gorm.DB, l *model.Lancamento) error {
	return tx.WithContext(ctx).Create(l).Error
}

func (r *lancamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Lancamento, error) {
	var l model.Lancamento
	err := r.db.WithContext(ctx).Preload("Pedido").First(&l, id).Error
	return &l, err
}

func (r *lancamentoRepo) List(ctx context.Context, filtro dto.LancamentoFiltro) ([]model.Lancamento, int64, error) {
	var lancamentos []model.Lancamento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Lancamento{})
	if filtro.Tipo != "" {
		q = q.Where("tipo = ?", filtro.Tipo)
	}
	if filtro.Status != "" {
		q = q.Where("status = ?", filtro.Status)
	}
	if filtro.Inicio != "" {
		q = q.Where("data_vencimento >= ?", filtro.Inicio)
	}
	if filtro.Fim != "" {
		q = q.Where("data_vencimento <= ?", filtro.Fim)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Pedido").
		Order("data_vencimento DESC, created_at DESC").
		Limit(filtro.Limit).Offset(filtro.Offset).
		Find(&lancamentos).Error
	return lancamentos, total, err
}

func (r *lancamentoRepo) MarcarPago(ctx context.Context, id uuid.UUID, formaPagamento string, quando time.Time) error {
	updates := map[string]interface{}{
		"status":         model.LancamentoPago,
		"data_pagamento": quando,
	}
	if formaPagamento != "" {
		updates["forma_pagamento"] = formaPagamento
	}
	return r.db.WithContext(ctx).Model(&model.Lancamento{}).Where("id = ?", id).Updates(updates).Error
}

func (r *lancamentoRepo) sum(ctx context.Context, tipo, status string) (decimal.Decimal, error) {
	var raw struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Lancamento{}).
		Select("COALESCE(SUM(valor), 0) AS total").
		Where("tipo = ? AND status = ?", tipo, status).
		Scan(&raw).Error
	return raw.Total, err
}

func (r *lancamentoRepo) TotalPago(ctx context.Context, tipo string) (decimal.Decimal, error) {
	return r.sum(ctx, tipo, model.LancamentoPago)
}

func (r *lancamentoRepo) TotalPendente(ctx context.Context, tipo string) (decimal.Decimal, error) {
	return r.sum(ctx, tipo, model.LancamentoPendente)
}

func (r *lancamentoRepo) ReceitaDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	var raw struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Lancamento{}).
		Select("COALESCE(SUM(valor), 0) AS total").
		Where("tipo = ? AND status = ? AND data_pagamento >= ?",
			model.LancamentoReceita, model.LancamentoPago, desde).
		Scan(&raw).Error
	return raw.Total, err
}
