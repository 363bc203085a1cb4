package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos e estados de lançamento financeiro.
const (
	LancamentoReceita = "receita"
	LancamentoDespesa = "despesa"

	LancamentoPendente = "pendente"
	LancamentoPago     = "pago"
)

// Lancamento is a financial movement, either revenue or expense.
// One receita is auto-created at pedido creation for its full value;
// everything else is entered manually.
type Lancamento struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo           string          `gorm:"type:varchar(10);not null"`
	Descricao      string          `gorm:"not null"`
	Valor          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status         string          `gorm:"type:varchar(10);not null;default:'pendente'"`
	FormaPagamento string          `gorm:"type:varchar(30)"` // Pix, Dinheiro, Cartão, Boleto
	DataVencimento time.Time       `gorm:"type:date;not null"`
	DataPagamento  *time.Time      `gorm:"type:date"`
	// PedidoID is set only on the receita auto-generated at order creation
	PedidoID  *uuid.UUID `gorm:"type:uuid;index"`
	UsuarioID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Pedido *Pedido `gorm:"foreignKey:PedidoID"`
}

func (Lancamento) TableName() string { return "lancamentos" }
