// Package precio normaliza los textos de precio que envía la consola de
// administración legada. El formulario aceptaba tanto el formato local
// ("1.234.567,89": punto de miles, coma decimal) como el anglosajón
// ("1,234,567.89"), por lo que la conversión es una heurística por separador.
package precio

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalizar convierte un texto de precio a decimal canónico.
//
//	"1.234.567,89" -> 1234567.89
//	"1,234,567.89" -> 1234567.89
//	"1.234.567"    -> 1234567
//	"1234,5"       -> 1234.5
//	"10.5"         -> 10.5
//
// Vacío o malformado normaliza a cero.
func Normalizar(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}

	canon := canonizar(s)
	d, err := decimal.NewFromString(canon)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// canonizar reescribe s con punto decimal y sin separadores de miles.
func canonizar(s string) string {
	ultimoPunto := strings.LastIndex(s, ".")
	ultimaComa := strings.LastIndex(s, ",")

	switch {
	case ultimoPunto >= 0 && ultimaComa >= 0:
		// Ambos separadores: el que aparece más a la derecha es el decimal.
		if ultimaComa > ultimoPunto {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")

	case ultimaComa >= 0:
		if strings.Count(s, ",") > 1 {
			// Varias comas: agrupación de miles.
			return strings.ReplaceAll(s, ",", "")
		}
		// Una sola coma: decimal local, salvo que agrupe exactamente tres
		// dígitos finales ("1,234" se lee como mil doscientos treinta y cuatro).
		if len(s)-ultimaComa-1 == 3 {
			return strings.ReplaceAll(s, ",", "")
		}
		return strings.Replace(s, ",", ".", 1)

	case ultimoPunto >= 0:
		if strings.Count(s, ".") > 1 {
			// Varios puntos: agrupación de miles.
			return strings.ReplaceAll(s, ".", "")
		}
		// Un solo punto con tres dígitos finales: miles en el formato local.
		if len(s)-ultimoPunto-1 == 3 {
			return strings.ReplaceAll(s, ".", "")
		}
		return s
	}
	return s
}
