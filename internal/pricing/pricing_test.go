package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunes1886/prisma/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func lona() *model.Material {
	return &model.Material{
		Nome:         "Lona 440g",
		Unidade:      model.UnidadeM2,
		PrecoVenda:   dec("80.00"),
		PrecoRevenda: dec("45.00"),
	}
}

func TestPrecoUnitarioVarejo(t *testing.T) {
	m := lona()
	assert.True(t, PrecoUnitario(m, false).Equal(dec("80.00")))
}

func TestPrecoUnitarioRevenda(t *testing.T) {
	m := lona()
	assert.True(t, PrecoUnitario(m, true).Equal(dec("45.00")))
}

func TestPrecoUnitarioRevendaSemPrecoCaiNoVarejo(t *testing.T) {
	m := lona()
	m.PrecoRevenda = decimal.Zero
	assert.True(t, PrecoUnitario(m, true).Equal(dec("80.00")))
}

func TestSubtotalPorArea(t *testing.T) {
	// 1.5m × 3.0m × 80.00/m² × 2 = 720.00
	sub, err := Subtotal(lona(), 2, dec("1.5"), dec("3.0"), false)
	require.NoError(t, err)
	assert.Equal(t, "720.00", sub.StringFixed(2))
}

func TestSubtotalPorAreaRevenda(t *testing.T) {
	// 2m × 1m × 45.00/m² × 1 = 90.00
	sub, err := Subtotal(lona(), 1, dec("2"), dec("1"), true)
	require.NoError(t, err)
	assert.Equal(t, "90.00", sub.StringFixed(2))
}

func TestSubtotalPorUnidade(t *testing.T) {
	m := &model.Material{Nome: "Cartão de Visita (cento)", Unidade: model.UnidadeUnitario, PrecoVenda: dec("35.50")}
	sub, err := Subtotal(m, 3, decimal.Zero, decimal.Zero, false)
	require.NoError(t, err)
	assert.Equal(t, "106.50", sub.StringFixed(2))
}

func TestSubtotalMetroLinearIgnoraDimensoes(t *testing.T) {
	// ml também cobra por quantidade; dimensões são informativas
	m := &model.Material{Nome: "Fita de Borda", Unidade: model.UnidadeMetroLinear, PrecoVenda: dec("12.00")}
	sub, err := Subtotal(m, 5, dec("2.0"), decimal.Zero, false)
	require.NoError(t, err)
	assert.Equal(t, "60.00", sub.StringFixed(2))
}

func TestSubtotalArredondaDuasCasas(t *testing.T) {
	m := lona()
	m.PrecoVenda = dec("79.99")
	sub, err := Subtotal(m, 1, dec("0.33"), dec("0.33"), false)
	require.NoError(t, err)
	// 0.33 × 0.33 × 79.99 = 8.710911 → 8.71
	assert.Equal(t, "8.71", sub.StringFixed(2))
}

func TestSubtotalQuantidadeInvalida(t *testing.T) {
	_, err := Subtotal(lona(), 0, dec("1"), dec("1"), false)
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)
}

func TestSubtotalDimensaoNegativa(t *testing.T) {
	_, err := Subtotal(lona(), 1, dec("-1"), dec("1"), false)
	assert.ErrorIs(t, err, ErrDimensaoInvalida)
}

func TestSubtotalAreaSemDimensao(t *testing.T) {
	_, err := Subtotal(lona(), 1, decimal.Zero, dec("2"), false)
	assert.ErrorIs(t, err, ErrDimensaoAusente)
}
