package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/model"
)

type StatusRepository interface {
	Create(ctx context.Context, s *model.Status) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Status, error)
	FindByNome(ctx context.Context, nome string) (*model.Status, error)
	List(ctx context.Context) ([]model.Status, error)
	Update(ctx context.Context, s *model.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountPedidos(ctx context.Context, statusID uuid.UUID) (int64, error)
}

type statusRepo struct{ db *gorm.DB }

func NewStatusRepository(db *gorm.DB) StatusRepository { return &statusRepo{db: db} }

func (r *statusRepo) Create(ctx context.Context, s *model.Status) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *statusRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Status, error) {
	var s model.Status
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *statusRepo) FindByNome(ctx context.Context, nome string) (*model.Status, error) {
	var s model.Status
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&s).Error
	return &s, err
}

func (r *statusRepo) List(ctx context.Context) ([]model.Status, error) {
	var status []model.Status
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&status).Error
	return status, err
}

func (r *statusRepo) Update(ctx context.Context, s *model.Status) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *statusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Status{}, id).Error
}

func (r *statusRepo) CountPedidos(ctx context.Context, statusID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("status_id = ?", statusID).Count(&total).Error
	return total, err
}
