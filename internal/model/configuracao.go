package model

import (
	"time"

	"github.com/google/uuid"
)

// Configuracao is the single-row branding/settings record.
type Configuracao struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NomeEmpresa     string    `gorm:"not null;default:'Minha Gráfica'"`
	Telefone        string    `gorm:"type:varchar(20)"`
	Endereco        string
	LogoFilename    string
	FaviconFilename string
	UpdatedAt       time.Time
}

func (Configuracao) TableName() string { return "configuracoes" }
