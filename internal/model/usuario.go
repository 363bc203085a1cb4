package model

import (
	"time"

	"github.com/google/uuid"
)

// Niveis de acesso ordinais: quanto menor o numero, maior o poder.
const (
	NivelAdmin      = 0
	NivelFinanceiro = 1
	NivelVendas     = 2
	NivelProducao   = 3
)

// Usuario stores system users with ordinal role-based access.
// NivelAcesso: 0=Admin, 1=Financeiro, 2=Vendas, 3=Produção
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	NomeCompleto string    `gorm:"not null"`
	SenhaHash    string    `gorm:"not null"`
	NivelAcesso  int       `gorm:"not null;default:3"`
	Ativo        bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
