package dto

import "github.com/shopspring/decimal"

type LancamentoRequest struct {
	Tipo           string          `json:"tipo"            validate:"required,oneof=receita despesa"`
	Descricao      string          `json:"descricao"       validate:"required"`
	Valor          decimal.Decimal `json:"valor"           validate:"gt=0"`
	FormaPagamento string          `json:"forma_pagamento"`
	DataVencimento string          `json:"data_vencimento" validate:"required,datetime=2006-01-02"`
}

type LancamentoResponse struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	Status         string          `json:"status"`
	FormaPagamento string          `json:"forma_pagamento,omitempty"`
	DataVencimento string          `json:"data_vencimento"`
	DataPagamento  string          `json:"data_pagamento,omitempty"`
	PedidoNumero   *int            `json:"pedido_numero,omitempty"`
}

type LancamentoFiltro struct {
	Tipo   string `form:"tipo"   validate:"omitempty,oneof=receita despesa"`
	Status string `form:"status" validate:"omitempty,oneof=pendente pago"`
	Inicio string `form:"inicio" validate:"omitempty,datetime=2006-01-02"`
	Fim    string `form:"fim"    validate:"omitempty,datetime=2006-01-02"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

type BaixarRequest struct {
	FormaPagamento string `json:"forma_pagamento"`
}

// ResumoFinanceiro acompanha toda listagem do caixa.
type ResumoFinanceiro struct {
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
	Saldo    decimal.Decimal `json:"saldo"`
	AReceber decimal.Decimal `json:"a_receber"`
}

type ListaLancamentos struct {
	Lancamentos []LancamentoResponse `json:"lancamentos"`
	Resumo      ResumoFinanceiro     `json:"resumo"`
}
