package infra

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nunes1886/prisma/internal/model"
)

// Seed populates an empty database with the default admin account, the
// kanban etapas, the status rows, a starter price list and the branding
// row. It is a no-op whenever a usuario already exists, so re-running on
// boot is safe.
func Seed(db *gorm.DB, adminPassword string) error {
	var count int64
	if err := db.Model(&model.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := model.Usuario{
			Username:     "admin",
			NomeCompleto: "Administrador",
			SenhaHash:    string(hash),
			NivelAcesso:  model.NivelAdmin,
			Ativo:        true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		etapas := []model.Etapa{
			{Nome: "Orçamento", Ordem: 1},
			{Nome: "Arte / Aprovação", Ordem: 2},
			{Nome: "Impressão", Ordem: 3},
			{Nome: "Acabamento", Ordem: 4},
			{Nome: "Pronto / Entrega", Ordem: 5},
		}
		if err := tx.Create(&etapas).Error; err != nil {
			return err
		}

		status := []model.Status{
			{Nome: "Orçamento", Cor: "#ffc107"},
			{Nome: "Aprovado", Cor: "#0dcaf0"},
			{Nome: "Produção", Cor: "#0d6efd"},
			{Nome: model.StatusFinalizado, Cor: "#198754"},
			{Nome: model.StatusCancelado, Cor: "#dc3545"},
		}
		if err := tx.Create(&status).Error; err != nil {
			return err
		}

		materiais := []model.Material{
			{
				Nome:         "Lona 440g",
				Unidade:      model.UnidadeM2,
				PrecoVenda:   decimal.NewFromFloat(80.00),
				PrecoRevenda: decimal.NewFromFloat(45.00),
				Ativo:        true,
			},
			{
				Nome:         "Adesivo Vinil",
				Unidade:      model.UnidadeM2,
				PrecoVenda:   decimal.NewFromFloat(90.00),
				PrecoRevenda: decimal.NewFromFloat(55.00),
				Ativo:        true,
			},
		}
		if err := tx.Create(&materiais).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.Configuracao{NomeEmpresa: "Gráfica Prisma"}).Error; err != nil {
			return err
		}

		log.Info().Msg("banco vazio, seed inicial aplicado (admin, etapas, status, materiais)")
		return nil
	})
}
