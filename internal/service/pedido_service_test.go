package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/service"
)

type pedidoFixture struct {
	svc            service.PedidoService
	pedidoRepo     *stubPedidoRepo
	clienteRepo    *stubClienteRepo
	materialRepo   *stubMaterialRepo
	etapaRepo      *stubEtapaRepo
	statusRepo     *stubStatusRepo
	lancamentoRepo *stubLancamentoRepo

	cliente    *model.Cliente
	revenda    *model.Cliente
	lona       *model.Material
	adesivo    *model.Material
	cartao     *model.Material
	finalizado *model.Status
	cancelado  *model.Status
}

func newPedidoFixture(t *testing.T) *pedidoFixture {
	t.Helper()
	f := &pedidoFixture{
		clienteRepo:    newStubClienteRepo(),
		materialRepo:   newStubMaterialRepo(),
		etapaRepo:      newStubEtapaRepo(),
		statusRepo:     newStubStatusRepo(),
		lancamentoRepo: newStubLancamentoRepo(),
	}
	f.pedidoRepo = newStubPedidoRepo(f.etapaRepo, f.statusRepo)

	ctx := context.Background()
	require.NoError(t, f.etapaRepo.Create(ctx, &model.Etapa{Nome: "Impressão", Ordem: 3}))
	require.NoError(t, f.etapaRepo.Create(ctx, &model.Etapa{Nome: "Orçamento", Ordem: 1}))
	require.NoError(t, f.etapaRepo.Create(ctx, &model.Etapa{Nome: "Arte / Aprovação", Ordem: 2}))

	require.NoError(t, f.statusRepo.Create(ctx, &model.Status{Nome: model.StatusOrcamento, Cor: "#ffc107"}))
	f.finalizado = &model.Status{Nome: model.StatusFinalizado, Cor: "#198754"}
	require.NoError(t, f.statusRepo.Create(ctx, f.finalizado))
	f.cancelado = &model.Status{Nome: model.StatusCancelado, Cor: "#dc3545"}
	require.NoError(t, f.statusRepo.Create(ctx, f.cancelado))

	f.cliente = &model.Cliente{TipoPessoa: "PF", Nome: "João da Silva"}
	require.NoError(t, f.clienteRepo.Create(ctx, f.cliente))
	f.revenda = &model.Cliente{TipoPessoa: "PJ", Nome: "Gráfica Parceira", IsRevenda: true}
	require.NoError(t, f.clienteRepo.Create(ctx, f.revenda))

	f.lona = &model.Material{
		Nome: "Lona 440g", Unidade: model.UnidadeM2,
		PrecoVenda: dec("80.00"), PrecoRevenda: dec("45.00"), Ativo: true,
	}
	require.NoError(t, f.materialRepo.Create(ctx, f.lona))
	f.adesivo = &model.Material{
		Nome: "Adesivo Vinil", Unidade: model.UnidadeM2,
		PrecoVenda: dec("90.00"), Ativo: true, // sem preço de revenda
	}
	require.NoError(t, f.materialRepo.Create(ctx, f.adesivo))
	f.cartao = &model.Material{
		Nome: "Cartão de Visita (cento)", Unidade: model.UnidadeUnitario,
		PrecoVenda: dec("35.00"), Ativo: true,
	}
	require.NoError(t, f.materialRepo.Create(ctx, f.cartao))

	f.svc = service.NewPedidoService(
		f.pedidoRepo, f.clienteRepo, f.materialRepo,
		f.etapaRepo, f.statusRepo, f.lancamentoRepo,
		newStubConfiguracaoRepo(),
	)
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCriarPedido_CalculaTotalECongelaPrecos(t *testing.T) {
	f := newPedidoFixture(t)

	// 1.5m × 3.0m de lona a 80.00/m² × 2 = 720.00
	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Banner de fachada",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.lona.ID.String(), Largura: dec("1.5"), Altura: dec("3.0"), Quantidade: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "720", resp.ValorTotal.String())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "80", resp.Items[0].PrecoUnitario.String())
	assert.Equal(t, "720", resp.Items[0].Subtotal.String())

	// nasce na primeira etapa (menor ordem) com status Orçamento
	assert.Equal(t, "Orçamento", resp.Etapa)
	assert.Equal(t, model.StatusOrcamento, resp.Status)
	assert.Equal(t, 1, resp.Numero)

	// uma receita pendente pelo valor cheio
	require.Len(t, f.lancamentoRepo.lancamentos, 1)
	for _, l := range f.lancamentoRepo.lancamentos {
		assert.Equal(t, model.LancamentoReceita, l.Tipo)
		assert.Equal(t, model.LancamentoPendente, l.Status)
		assert.Equal(t, "720", l.Valor.String())
		require.NotNil(t, l.PedidoID)
	}
}

func TestCriarPedido_UnidadePorQuantidade(t *testing.T) {
	f := newPedidoFixture(t)

	// material unitário ignora dimensões: 35.00 × 3 = 105.00
	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Cartões",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.cartao.ID.String(), Quantidade: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "105", resp.ValorTotal.String())
}

func TestCriarPedido_PrecoRevenda(t *testing.T) {
	f := newPedidoFixture(t)

	// revendedor paga 45.00/m² na lona: 1 × 1 × 45 × 1
	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Lona revenda",
		ClienteID: f.revenda.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.lona.ID.String(), Largura: dec("1"), Altura: dec("1"), Quantidade: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "45", resp.Items[0].PrecoUnitario.String())
}

func TestCriarPedido_RevendaSemPrecoCaiNaVenda(t *testing.T) {
	f := newPedidoFixture(t)

	// adesivo não tem preço de revenda: revendedor paga tabela cheia
	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Adesivo revenda",
		ClienteID: f.revenda.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.adesivo.ID.String(), Largura: dec("1"), Altura: dec("1"), Quantidade: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "90", resp.Items[0].PrecoUnitario.String())
}

func TestCriarPedido_ItemInvalidoDescartaTudo(t *testing.T) {
	f := newPedidoFixture(t)

	// segundo item (m² sem dimensões) derruba o pedido inteiro
	_, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Pedido quebrado",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.cartao.ID.String(), Quantidade: 1},
			{MaterialID: f.lona.ID.String(), Quantidade: 1},
		},
	})
	require.Error(t, err)
	assert.Empty(t, f.pedidoRepo.pedidos)
	assert.Empty(t, f.lancamentoRepo.lancamentos)
}

func TestCriarPedido_MaterialInativo(t *testing.T) {
	f := newPedidoFixture(t)
	f.lona.Ativo = false

	_, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Lona desativada",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.lona.ID.String(), Largura: dec("1"), Altura: dec("1"), Quantidade: 1},
		},
	})
	assert.ErrorContains(t, err, "inativo")
	assert.Empty(t, f.pedidoRepo.pedidos)
}

func TestCriarPedido_SemReceitaQuandoTotalZero(t *testing.T) {
	f := newPedidoFixture(t)
	cortesia := &model.Material{Nome: "Amostra", Unidade: model.UnidadeUnitario, Ativo: true}
	require.NoError(t, f.materialRepo.Create(context.Background(), cortesia))

	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Amostra grátis",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: cortesia.ID.String(), Quantidade: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.ValorTotal.IsZero())
	assert.Empty(t, f.lancamentoRepo.lancamentos)
}

func TestCriarPedido_AlterarPrecoDepoisNaoAfetaItens(t *testing.T) {
	f := newPedidoFixture(t)

	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Banner",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.lona.ID.String(), Largura: dec("2"), Altura: dec("1"), Quantidade: 1},
		},
	})
	require.NoError(t, err)

	f.lona.PrecoVenda = dec("999.99")

	detalhe, err := f.svc.ObterPedido(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "80", detalhe.Items[0].PrecoUnitario.String())
	assert.Equal(t, "160", detalhe.ValorTotal.String())
}

func criarPedidoBasico(t *testing.T, f *pedidoFixture) *dto.PedidoResponse {
	t.Helper()
	resp, err := f.svc.CriarPedido(context.Background(), uuid.New(), dto.CriarPedidoRequest{
		Titulo:    "Pedido base",
		ClienteID: f.cliente.ID.String(),
		Items: []dto.ItemPedidoRequest{
			{MaterialID: f.cartao.ID.String(), Quantidade: 1},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestMudarStatus_FinalizadoNaoVaiParaCancelado(t *testing.T) {
	f := newPedidoFixture(t)
	resp := criarPedidoBasico(t, f)
	id := uuid.MustParse(resp.ID)

	_, err := f.svc.MudarStatus(context.Background(), id, f.finalizado.ID)
	require.NoError(t, err)

	_, err = f.svc.MudarStatus(context.Background(), id, f.cancelado.ID)
	assert.ErrorIs(t, err, service.ErrCancelarFinalizado)

	// status permanece Finalizado
	detalhe, err := f.svc.ObterPedido(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinalizado, detalhe.Status)
}

func TestMudarStatus_CanceladoPodeSerFinalizado(t *testing.T) {
	f := newPedidoFixture(t)
	resp := criarPedidoBasico(t, f)
	id := uuid.MustParse(resp.ID)

	_, err := f.svc.MudarStatus(context.Background(), id, f.cancelado.ID)
	require.NoError(t, err)

	// a regra vale só na direção Finalizado → Cancelado
	detalhe, err := f.svc.MudarStatus(context.Background(), id, f.finalizado.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinalizado, detalhe.Status)
}

func TestMudarEtapa_QualquerDirecao(t *testing.T) {
	f := newPedidoFixture(t)
	resp := criarPedidoBasico(t, f)
	id := uuid.MustParse(resp.ID)

	etapas, _ := f.etapaRepo.List(context.Background())
	ultima := etapas[len(etapas)-1]

	detalhe, err := f.svc.MudarEtapa(context.Background(), id, ultima.ID)
	require.NoError(t, err)
	assert.Equal(t, ultima.Nome, detalhe.Etapa)

	// e volta para a primeira, sem restrição de sequência
	primeira := etapas[0]
	detalhe, err = f.svc.MudarEtapa(context.Background(), id, primeira.ID)
	require.NoError(t, err)
	assert.Equal(t, primeira.Nome, detalhe.Etapa)
}

func TestKanban_AgrupaPorEtapaEExcluiEncerrados(t *testing.T) {
	f := newPedidoFixture(t)
	aberto := criarPedidoBasico(t, f)
	encerrado := criarPedidoBasico(t, f)
	_, err := f.svc.MudarStatus(context.Background(), uuid.MustParse(encerrado.ID), f.finalizado.ID)
	require.NoError(t, err)

	colunas, err := f.svc.Kanban(context.Background())
	require.NoError(t, err)

	// uma coluna por etapa cadastrada, em ordem, mesmo vazias
	require.Len(t, colunas, 3)
	assert.Equal(t, "Orçamento", colunas[0].Etapa)
	assert.Equal(t, "Arte / Aprovação", colunas[1].Etapa)
	assert.Equal(t, "Impressão", colunas[2].Etapa)

	require.Len(t, colunas[0].Pedidos, 1)
	assert.Equal(t, aberto.ID, colunas[0].Pedidos[0].ID)
	assert.Empty(t, colunas[1].Pedidos)
	assert.Empty(t, colunas[2].Pedidos)
}

func TestGerarOrcamentoPDF(t *testing.T) {
	f := newPedidoFixture(t)
	resp := criarPedidoBasico(t, f)

	pdf, filename, err := f.svc.GerarOrcamentoPDF(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "orcamento-1.pdf", filename)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
