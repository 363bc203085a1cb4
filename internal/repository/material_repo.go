package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/model"
)

type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	List(ctx context.Context, incluirInativos bool) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) List(ctx context.Context, incluirInativos bool) ([]model.Material, error) {
	var materiais []model.Material
	q := r.db.WithContext(ctx)
	if !incluirInativos {
		q = q.Where("ativo = true")
	}
	err := q.Order("nome ASC").Find(&materiais).Error
	return materiais, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *materialRepo) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", id).Update("ativo", true).Error
}
