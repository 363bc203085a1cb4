package model

import (
	"time"

	"github.com/google/uuid"
)

// Etapa is a kanban column of the production pipeline, ordered by Ordem.
// A pedido occupies exactly one etapa at a time. Deleting an etapa that
// still has pedidos is rejected at the service layer.
type Etapa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	Ordem     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Etapa) TableName() string { return "etapas" }

// Status is the color-tagged textual state of a pedido, parallel to the
// etapa. Rows are admin-defined; pedidos only ever reference them.
type Status struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	Cor       string    `gorm:"type:varchar(20);not null;default:'#CCCCCC'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Status) TableName() string { return "status" }

// Nomes de status com regra especial: pedidos nascem em Orçamento e a
// transição Finalizado → Cancelado é bloqueada.
const (
	StatusOrcamento  = "Orçamento"
	StatusFinalizado = "Finalizado"
	StatusCancelado  = "Cancelado"
)
