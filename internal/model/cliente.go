package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente represents a customer (pessoa física or jurídica).
// IsRevenda marks reseller accounts, which buy at the reseller price list.
type Cliente struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoPessoa string    `gorm:"type:varchar(2);not null;default:'PF'"` // PF | PJ
	Nome       string    `gorm:"index;not null"`
	// Documento is the CPF/CNPJ, unique when present
	Documento *string `gorm:"type:varchar(20);uniqueIndex"`
	Telefone  string  `gorm:"type:varchar(20)"`
	Email     string
	IsRevenda bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
