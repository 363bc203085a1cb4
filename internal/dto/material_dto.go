package dto

import "github.com/shopspring/decimal"

type MaterialRequest struct {
	Nome         string          `json:"nome"          validate:"required"`
	Unidade      string          `json:"unidade"       validate:"required,oneof=m2 un ml"`
	PrecoCusto   decimal.Decimal `json:"preco_custo"   validate:"gte=0"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"   validate:"gt=0"`
	PrecoRevenda decimal.Decimal `json:"preco_revenda" validate:"gte=0"`
	EstoqueAtual decimal.Decimal `json:"estoque_atual" validate:"gte=0"`
}

type MaterialResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Unidade      string          `json:"unidade"`
	PrecoCusto   decimal.Decimal `json:"preco_custo"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	PrecoRevenda decimal.Decimal `json:"preco_revenda"`
	EstoqueAtual decimal.Decimal `json:"estoque_atual"`
	Ativo        bool            `json:"ativo"`
}

// PrecoMaterial é a visão enxuta servida ao formulário de pedidos,
// cacheada em redis.
type PrecoMaterial struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Unidade      string          `json:"unidade"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	PrecoRevenda decimal.Decimal `json:"preco_revenda"`
}
