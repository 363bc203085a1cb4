package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/model"
)

// ConfiguracaoRepository handles the single-row branding record.
type ConfiguracaoRepository interface {
	Get(ctx context.Context) (*model.Configuracao, error)
	Save(ctx context.Context, c *model.Configuracao) error
}

type configuracaoRepo struct{ db *gorm.DB }

func NewConfiguracaoRepository(db *gorm.DB) ConfiguracaoRepository { return &configuracaoRepo{db: db} }

func (r *configuracaoRepo) Get(ctx context.Context) (*model.Configuracao, error) {
	var c model.Configuracao
	err := r.db.WithContext(ctx).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.Configuracao{NomeEmpresa: "Minha Gráfica"}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *configuracaoRepo) Save(ctx context.Context, c *model.Configuracao) error {
	return r.db.WithContext(ctx).Save(c).Error
}
