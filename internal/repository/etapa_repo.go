package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/model"
)

type EtapaRepository interface {
	Create(ctx context.Context, e *model.Etapa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Etapa, error)
	List(ctx context.Context) ([]model.Etapa, error)
	// Primeira returns the stage with the lowest ordem, the kanban entry point.
	Primeira(ctx context.Context) (*model.Etapa, error)
	Update(ctx context.Context, e *model.Etapa) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type etapaRepo struct{ db *gorm.DB }

func NewEtapaRepository(db *gorm.DB) EtapaRepository { return &etapaRepo{db: db} }

func (r *etapaRepo) Create(ctx context.Context, e *model.Etapa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *etapaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Etapa, error) {
	var e model.Etapa
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *etapaRepo) List(ctx context.Context) ([]model.Etapa, error) {
	var etapas []model.Etapa
	err := r.db.WithContext(ctx).Order("ordem ASC").Find(&etapas).Error
	return etapas, err
}

func (r *etapaRepo) Primeira(ctx context.Context) (*model.Etapa, error) {
	var e model.Etapa
	err := r.db.WithContext(ctx).Order("ordem ASC").First(&e).Error
	return &e, err
}

func (r *etapaRepo) Update(ctx context.Context, e *model.Etapa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *etapaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Etapa{}, id).Error
}
