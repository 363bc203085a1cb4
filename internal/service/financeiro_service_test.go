package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunes1886/prisma/internal/dto"
	"github.com/nunes1886/prisma/internal/model"
	"github.com/nunes1886/prisma/internal/service"
)

func TestLancar(t *testing.T) {
	repo := newStubLancamentoRepo()
	svc := service.NewFinanceiroService(repo)

	resp, err := svc.Lancar(context.Background(), uuid.New(), dto.LancamentoRequest{
		Tipo:           model.LancamentoDespesa,
		Descricao:      "Bobina de lona",
		Valor:          dec("350.00"),
		DataVencimento: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LancamentoPendente, resp.Status)
	assert.Equal(t, "2026-09-15", resp.DataVencimento)
	assert.Empty(t, resp.DataPagamento)
}

func TestLancar_DataInvalida(t *testing.T) {
	svc := service.NewFinanceiroService(newStubLancamentoRepo())

	_, err := svc.Lancar(context.Background(), uuid.New(), dto.LancamentoRequest{
		Tipo:           model.LancamentoReceita,
		Descricao:      "Sinal",
		Valor:          dec("100.00"),
		DataVencimento: "15/09/2026",
	})
	assert.Error(t, err)
}

func TestBaixar(t *testing.T) {
	repo := newStubLancamentoRepo()
	svc := service.NewFinanceiroService(repo)

	l := &model.Lancamento{
		Tipo:           model.LancamentoReceita,
		Descricao:      "Pedido #1",
		Valor:          dec("720.00"),
		Status:         model.LancamentoPendente,
		DataVencimento: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), l))

	resp, jaPago, err := svc.Baixar(context.Background(), l.ID, "pix")
	require.NoError(t, err)
	assert.False(t, jaPago)
	assert.Equal(t, model.LancamentoPago, resp.Status)
	assert.Equal(t, "pix", resp.FormaPagamento)
	assert.NotEmpty(t, resp.DataPagamento)
}

func TestBaixar_JaPagoPreservaDataOriginal(t *testing.T) {
	repo := newStubLancamentoRepo()
	svc := service.NewFinanceiroService(repo)

	ontem := time.Now().AddDate(0, 0, -1)
	l := &model.Lancamento{
		Tipo:           model.LancamentoReceita,
		Descricao:      "Pedido #2",
		Valor:          dec("100.00"),
		Status:         model.LancamentoPago,
		FormaPagamento: "dinheiro",
		DataVencimento: ontem,
		DataPagamento:  &ontem,
	}
	require.NoError(t, repo.Create(context.Background(), l))

	resp, jaPago, err := svc.Baixar(context.Background(), l.ID, "pix")
	require.NoError(t, err)
	assert.True(t, jaPago)
	assert.Equal(t, ontem.Format("2006-01-02"), resp.DataPagamento)
	assert.Equal(t, "dinheiro", resp.FormaPagamento)
}

func TestBaixar_NaoEncontrado(t *testing.T) {
	svc := service.NewFinanceiroService(newStubLancamentoRepo())

	_, _, err := svc.Baixar(context.Background(), uuid.New(), "pix")
	assert.ErrorIs(t, err, service.ErrLancamentoNaoEncontrado)
}

func TestListar_Resumo(t *testing.T) {
	repo := newStubLancamentoRepo()
	svc := service.NewFinanceiroService(repo)
	ctx := context.Background()
	agora := time.Now()

	seed := []*model.Lancamento{
		{Tipo: model.LancamentoReceita, Descricao: "Pedido pago", Valor: dec("300.00"), Status: model.LancamentoPago, DataVencimento: agora, DataPagamento: &agora},
		{Tipo: model.LancamentoReceita, Descricao: "Pedido em aberto", Valor: dec("150.00"), Status: model.LancamentoPendente, DataVencimento: agora},
		{Tipo: model.LancamentoDespesa, Descricao: "Tinta", Valor: dec("80.00"), Status: model.LancamentoPago, DataVencimento: agora, DataPagamento: &agora},
		{Tipo: model.LancamentoDespesa, Descricao: "Aluguel", Valor: dec("50.00"), Status: model.LancamentoPendente, DataVencimento: agora},
	}
	for _, l := range seed {
		require.NoError(t, repo.Create(ctx, l))
	}

	lista, err := svc.Listar(ctx, dto.LancamentoFiltro{})
	require.NoError(t, err)
	assert.Len(t, lista.Lancamentos, 4)

	// resumo considera só o realizado; pendências de receita viram a_receber
	assert.Equal(t, "300", lista.Resumo.Entradas.String())
	assert.Equal(t, "80", lista.Resumo.Saidas.String())
	assert.Equal(t, "220", lista.Resumo.Saldo.String())
	assert.Equal(t, "150", lista.Resumo.AReceber.String())
}

func TestListar_FiltroPorTipo(t *testing.T) {
	repo := newStubLancamentoRepo()
	svc := service.NewFinanceiroService(repo)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Lancamento{Tipo: model.LancamentoReceita, Descricao: "r", Valor: dec("10"), Status: model.LancamentoPendente, DataVencimento: time.Now()}))
	require.NoError(t, repo.Create(ctx, &model.Lancamento{Tipo: model.LancamentoDespesa, Descricao: "d", Valor: dec("20"), Status: model.LancamentoPendente, DataVencimento: time.Now()}))

	lista, err := svc.Listar(ctx, dto.LancamentoFiltro{Tipo: model.LancamentoDespesa})
	require.NoError(t, err)
	require.Len(t, lista.Lancamentos, 1)
	assert.Equal(t, model.LancamentoDespesa, lista.Lancamentos[0].Tipo)
}
