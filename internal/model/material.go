package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unidades de medida dos materiais.
const (
	UnidadeM2          = "m2" // metro quadrado, preço por área
	UnidadeUnitario    = "un" // unidade
	UnidadeMetroLinear = "ml" // metro linear
)

// Material is a catalog item with three price points.
// PrecoVenda is the retail base price; PrecoRevenda applies to reseller
// clients and falls back to PrecoVenda when zero.
// Soft-deleted via Ativo so historical pedidos keep their references.
type Material struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string          `gorm:"index;not null"`
	Unidade      string          `gorm:"type:varchar(10);not null;default:'m2'"`
	PrecoCusto   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PrecoVenda   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecoRevenda decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	// EstoqueAtual is informational only, no stock control on sale
	EstoqueAtual decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Ativo        bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Material) TableName() string { return "materiais" }
