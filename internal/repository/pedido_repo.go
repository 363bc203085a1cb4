package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
)

type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, filtro dto.PedidoFiltro) ([]model.Pedido, int64, error)
	ListByEtapas(ctx context.Context) ([]model.Pedido, error)
	UpdateEtapa(ctx context.Context, id, etapaID uuid.UUID) error
	UpdateStatus(ctx context.Context, id, statusID uuid.UUID) error
	CountByEtapa(ctx context.Context, etapaID uuid.UUID) (int64, error)
	CountAbertos(ctx context.Context) (int64, error)
	CountDesde(ctx context.Context, desde time.Time) (int64, error)
	UltimosPedidos(ctx context.Context, limit int) ([]model.Pedido, error)
	ProximasEntregas(ctx context.Context, limit int) ([]model.Pedido, error)
	ContagemPorEtapa(ctx context.Context) ([]dto.EtapaContagem, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Usuario").Preload("Etapa").Preload("Status").
		Preload("Items.Material").
		First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context, filtro dto.PedidoFiltro) ([]model.Pedido, int64, error) {
	var pedidos []model.Pedido
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Pedido{})

	if filtro.Busca != "" {
		like := "%" + filtro.Busca + "%"
		q = q.Joins("JOIN clientes ON clientes.id = pedidos.cliente_id").
			Where("pedidos.titulo ILIKE ? OR clientes.nome ILIKE ? OR CAST(pedidos.numero AS TEXT) = ?",
				like, like, filtro.Busca)
	}
	if filtro.EtapaID != "" {
		q = q.Where("pedidos.etapa_id = ?", filtro.EtapaID)
	}
	if filtro.StatusID != "" {
		q = q.Where("pedidos.status_id = ?", filtro.StatusID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Cliente").Preload("Usuario").Preload("Etapa").Preload("Status").
		Order("pedidos.created_at DESC").
		Limit(filtro.Limit).Offset(filtro.Offset).
		Find(&pedidos).Error
	return pedidos, total, err
}

// ListByEtapas returns every order that still sits on the board, ordered so
// the kanban columns come out stable.
func (r *pedidoRepo) ListByEtapas(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Joins("JOIN status ON status.id = pedidos.status_id").
		Where("status.nome NOT IN ?", []string{model.StatusFinalizado, model.StatusCancelado}).
		Preload("Cliente").Preload("Etapa").Preload("Status").
		Order("pedidos.created_at ASC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateEtapa(ctx context.Context, id, etapaID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("etapa_id", etapaID).Error
}

func (r *pedidoRepo) UpdateStatus(ctx context.Context, id, statusID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("status_id", statusID).Error
}

func (r *pedidoRepo) CountByEtapa(ctx context.Context, etapaID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("etapa_id = ?", etapaID).Count(&total).Error
	return total, err
}

func (r *pedidoRepo) CountAbertos(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Joins("JOIN status ON status.id = pedidos.status_id").
		Where("status.nome NOT IN ?", []string{model.StatusFinalizado, model.StatusCancelado}).
		Count(&total).Error
	return total, err
}

func (r *pedidoRepo) CountDesde(ctx context.Context, desde time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("created_at >= ?", desde).Count(&total).Error
	return total, err
}

func (r *pedidoRepo) UltimosPedidos(ctx context.Context, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Etapa").Preload("Status").
		Order("created_at DESC").Limit(limit).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ProximasEntregas(ctx context.Context, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Joins("JOIN status ON status.id = pedidos.status_id").
		Where("pedidos.prazo IS NOT NULL AND status.nome NOT IN ?",
			[]string{model.StatusFinalizado, model.StatusCancelado}).
		Preload("Cliente").Preload("Etapa").Preload("Status").
		Order("pedidos.prazo ASC").Limit(limit).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ContagemPorEtapa(ctx context.Context) ([]dto.EtapaContagem, error) {
	var contagens []dto.EtapaContagem
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Select("etapas.id AS etapa_id, etapas.nome AS etapa, COUNT(pedidos.id) AS total").
		Joins("JOIN etapas ON etapas.id = pedidos.etapa_id").
		Joins("JOIN status ON status.id = pedidos.status_id").
		Where("status.nome NOT IN ?", []string{model.StatusFinalizado, model.StatusCancelado}).
		Group("etapas.id, etapas.nome, etapas.ordem").
		Order("etapas.ordem ASC").
		Scan(&contagens).Error
	return contagens, err
}
