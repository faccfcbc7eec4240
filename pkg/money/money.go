// Package money normaliza montos que llegan del gateway con tipos heterogéneos
// (número, string, null) y los formatea con exactamente dos decimales.
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse convierte v en un decimal. Valid es false si v es nil, vacío o no numérico.
func Parse(v any) decimal.NullDecimal {
	switch x := v.(type) {
	case nil:
		return decimal.NullDecimal{}
	case decimal.Decimal:
		return decimal.NewNullDecimal(x)
	case *decimal.Decimal:
		if x == nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(*x)
	case decimal.NullDecimal:
		return x
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(x))
	case float32:
		return decimal.NewNullDecimal(decimal.NewFromFloat32(x))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(x)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(x))
	case json.Number:
		return parseString(x.String())
	case string:
		return parseString(x)
	default:
		return decimal.NullDecimal{}
	}
}

func parseString(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Format devuelve el monto con dos decimales; "0.00" si no es un número válido.
// Ej: Format(19.5) → "19.50", Format("abc") → "0.00", Format(nil) → "0.00".
func Format(v any) string {
	n := Parse(v)
	if !n.Valid {
		return "0.00"
	}
	return n.Decimal.StringFixed(2)
}

// Label antepone el símbolo de moneda al monto formateado: "S/. 19.50".
func Label(symbol string, v any) string {
	if symbol == "" {
		return Format(v)
	}
	return symbol + " " + Format(v)
}
