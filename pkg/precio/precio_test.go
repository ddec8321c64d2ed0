package precio_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/pkg/precio"
)

func TestNormalizar(t *testing.T) {
	cases := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"formato local con miles y decimales", "1.234.567,89", "1234567.89"},
		{"formato anglosajón con miles y decimales", "1,234,567.89", "1234567.89"},
		{"solo puntos como miles", "1.234.567", "1234567"},
		{"un punto con tres dígitos finales es miles", "1.234", "1234"},
		{"un punto decimal simple", "10.5", "10.5"},
		{"una coma decimal simple", "1234,5", "1234.5"},
		{"una coma con tres dígitos finales es miles", "1,234", "1234"},
		{"varias comas como miles", "12,345,678", "12345678"},
		{"con símbolo de moneda y espacios", "$ 1.234.567,89", "1234567.89"},
		{"entero sin separadores", "4500", "4500"},
		{"dos decimales tras punto", "99.99", "99.99"},
		{"vacío normaliza a cero", "", "0"},
		{"solo espacios normaliza a cero", "   ", "0"},
		{"malformado normaliza a cero", "precio", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			esperado := decimal.RequireFromString(tc.esperado)
			got := precio.Normalizar(tc.entrada)
			assert.True(t, esperado.Equal(got),
				"entrada %q: esperado %s, obtenido %s", tc.entrada, esperado, got)
		})
	}
}
