package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is an order/quote header. ValorTotal is a cache computed once at
// creation from the item subtotals and never recomputed afterwards.
type Pedido struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Numero is the human-facing sequential order number
	Numero      int       `gorm:"uniqueIndex;autoIncrement;not null"`
	Titulo      string    `gorm:"not null"`
	ClienteID   uuid.UUID `gorm:"type:uuid;index;not null"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;not null"`
	EtapaID     uuid.UUID `gorm:"type:uuid;index;not null"`
	StatusID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ValorTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Prazo       *time.Time      `gorm:"type:date"`
	Observacoes string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Cliente *Cliente     `gorm:"foreignKey:ClienteID"`
	Usuario *Usuario     `gorm:"foreignKey:UsuarioID"`
	Etapa   *Etapa       `gorm:"foreignKey:EtapaID"`
	Status  *Status      `gorm:"foreignKey:StatusID"`
	Items   []ItemPedido `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// ItemPedido is one order line. PrecoUnitario and Subtotal are frozen at
// sale time; later price-list changes never touch historical pedidos.
type ItemPedido struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID   uuid.UUID `gorm:"type:uuid;index;not null"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null"`
	// Dimensões em metros, usadas apenas para unidade m2
	Largura       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Altura        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Quantidade    int             `gorm:"not null;default:1"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time

	Material *Material `gorm:"foreignKey:MaterialID"`
}

func (ItemPedido) TableName() string { return "itens_pedido" }
