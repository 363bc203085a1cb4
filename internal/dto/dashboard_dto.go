package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	PedidosAbertos   int64            `json:"pedidos_abertos"`
	PedidosMes       int64            `json:"pedidos_mes"`
	FaturamentoMes   decimal.Decimal  `json:"faturamento_mes"`
	AReceber         decimal.Decimal  `json:"a_receber"`
	PedidosPorEtapa  []EtapaContagem  `json:"pedidos_por_etapa"`
	UltimosPedidos   []PedidoResponse `json:"ultimos_pedidos"`
	ProximasEntregas []PedidoResponse `json:"proximas_entregas"`
}

type EtapaContagem struct {
	EtapaID string `json:"etapa_id"`
	Etapa   string `json:"etapa"`
	Total   int64  `json:"total"`
}
