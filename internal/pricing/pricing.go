// Package pricing computes line subtotals for pedido items from the
// material price list and the client class. All arithmetic is decimal;
// subtotals round to two places.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/nunes1886/prisma/internal/model"
)

var (
	ErrQuantidadeInvalida = errors.New("quantidade deve ser no mínimo 1")
	ErrDimensaoInvalida   = errors.New("dimensões não podem ser negativas")
	ErrDimensaoAusente    = errors.New("largura e altura são obrigatórias para materiais por m²")
)

// PrecoUnitario selects the unit price for a material given the client
// class: reseller clients pay PrecoRevenda when it was set, otherwise
// the retail PrecoVenda.
func PrecoUnitario(m *model.Material, revenda bool) decimal.Decimal {
	if revenda && m.PrecoRevenda.IsPositive() {
		return m.PrecoRevenda
	}
	return m.PrecoVenda
}

// Subtotal computes one order line.
// Area-priced materials (m2): largura × altura × preço × quantidade.
// Everything else: preço × quantidade.
func Subtotal(m *model.Material, quantidade int, largura, altura decimal.Decimal, revenda bool) (decimal.Decimal, error) {
	if quantidade < 1 {
		return decimal.Zero, ErrQuantidadeInvalida
	}
	if largura.IsNegative() || altura.IsNegative() {
		return decimal.Zero, ErrDimensaoInvalida
	}

	preco := PrecoUnitario(m, revenda)
	qtd := decimal.NewFromInt(int64(quantidade))

	if m.Unidade == model.UnidadeM2 {
		if largura.IsZero() || altura.IsZero() {
			return decimal.Zero, ErrDimensaoAusente
		}
		return largura.Mul(altura).Mul(preco).Mul(qtd).Round(2), nil
	}
	return preco.Mul(qtd).Round(2), nil
}
