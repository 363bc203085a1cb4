package dto

import "github.com/shopspring/decimal"

type ItemPedidoRequest struct {
	MaterialID string          `json:"material_id" validate:"required,uuid"`
	Largura    decimal.Decimal `json:"largura"     validate:"gte=0"`
	Altura     decimal.Decimal `json:"altura"      validate:"gte=0"`
	Quantidade int             `json:"quantidade"  validate:"required,gt=0"`
}

type CriarPedidoRequest struct {
	Titulo      string              `json:"titulo"      validate:"required"`
	ClienteID   string              `json:"cliente_id"  validate:"required,uuid"`
	Prazo       string              `json:"prazo"       validate:"omitempty,datetime=2006-01-02"`
	Observacoes string              `json:"observacoes"`
	Items       []ItemPedidoRequest `json:"items"       validate:"required,min=1,dive"`
}

type ItemPedidoResponse struct {
	ID            string          `json:"id"`
	MaterialID    string          `json:"material_id"`
	MaterialNome  string          `json:"material_nome"`
	Unidade       string          `json:"unidade"`
	Largura       decimal.Decimal `json:"largura"`
	Altura        decimal.Decimal `json:"altura"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID          string               `json:"id"`
	Numero      int                  `json:"numero"`
	Titulo      string               `json:"titulo"`
	ClienteID   string               `json:"cliente_id"`
	ClienteNome string               `json:"cliente_nome"`
	Vendedor    string               `json:"vendedor"`
	Etapa       string               `json:"etapa"`
	EtapaID     string               `json:"etapa_id"`
	Status      string               `json:"status"`
	StatusID    string               `json:"status_id"`
	StatusCor   string               `json:"status_cor"`
	ValorTotal  decimal.Decimal      `json:"valor_total"`
	Prazo       string               `json:"prazo,omitempty"`
	Observacoes string               `json:"observacoes,omitempty"`
	CriadoEm    string               `json:"criado_em"`
	Items       []ItemPedidoResponse `json:"items,omitempty"`
}

type PedidoFiltro struct {
	Busca    string `form:"q"`
	EtapaID  string `form:"etapa_id"`
	StatusID string `form:"status_id"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

type MudarEtapaRequest struct {
	EtapaID string `json:"etapa_id" validate:"required,uuid"`
}

type MudarStatusRequest struct {
	StatusID string `json:"status_id" validate:"required,uuid"`
}

// KanbanColuna agrupa os pedidos de uma etapa para o quadro de produção.
type KanbanColuna struct {
	EtapaID string           `json:"etapa_id"`
	Etapa   string           `json:"etapa"`
	Ordem   int              `json:"ordem"`
	Pedidos []PedidoResponse `json:"pedidos"`
}
