package report

import (
	"sort"

	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/inventory"
)

// Counter contador con nombre de un resumen.
type Counter struct {
	Key   string
	Label string
	Value int
}

// Summary resumen ordenado de una colección. Se cumple Total == suma(Counters);
// los registros nil no cuentan.
type Summary struct {
	TotalLabel string
	Total      int
	Counters   []Counter
}

// Boxes devuelve el total seguido de los contadores, en el orden de las cajas del PDF.
func (s Summary) Boxes() []Counter {
	out := make([]Counter, 0, len(s.Counters)+1)
	out = append(out, Counter{Key: "total", Label: s.TotalLabel, Value: s.Total})
	return append(out, s.Counters...)
}

// Map vista etiqueta → valor, incluido el total.
func (s Summary) Map() map[string]int {
	m := make(map[string]int, len(s.Counters)+1)
	for _, c := range s.Boxes() {
		m[c.Label] = c.Value
	}
	return m
}

// Value valor del contador con la clave dada (0 si no existe).
func (s Summary) Value(key string) int {
	for _, c := range s.Counters {
		if c.Key == key {
			return c.Value
		}
	}
	return 0
}

const otherKey = "otros"

// tally cuenta por clave preservando el orden de keys; lo desconocido va a "Otros"
// y solo aparece si es distinto de cero.
type tally struct {
	keys   []string
	labels map[string]string
	counts map[string]int
	other  int
}

func newTally(keys, labels []string) *tally {
	t := &tally{keys: keys, labels: make(map[string]string, len(keys)), counts: make(map[string]int, len(keys))}
	for i, k := range keys {
		t.labels[k] = labels[i]
	}
	return t
}

func (t *tally) add(key string) {
	if _, ok := t.labels[key]; ok {
		t.counts[key]++
		return
	}
	t.other++
}

func (t *tally) summary(totalLabel string, total int) Summary {
	s := Summary{TotalLabel: totalLabel, Total: total, Counters: make([]Counter, 0, len(t.keys)+1)}
	for _, k := range t.keys {
		s.Counters = append(s.Counters, Counter{Key: k, Label: t.labels[k], Value: t.counts[k]})
	}
	if t.other > 0 {
		s.Counters = append(s.Counters, Counter{Key: otherKey, Label: "Otros", Value: t.other})
	}
	return s
}

// SummarizeItems total de items y conteo por estado.
func SummarizeItems(items []*entity.Item) Summary {
	t := newTally(entity.ItemStates, []string{"Activos", "Mantenimiento", "Baja"})
	n := 0
	for _, it := range items {
		if it == nil {
			continue
		}
		n++
		t.add(it.State)
	}
	return t.summary("Total Items", n)
}

// SummarizeConsumables total y conteo OK / stock bajo (LOW + CRITICAL).
func SummarizeConsumables(cs []*entity.Consumable) Summary {
	ok, low := 0, 0
	for _, c := range cs {
		if c == nil {
			continue
		}
		if inventory.ClassifyStock(c.Stock, c.MinStock).IsAlert() {
			low++
		} else {
			ok++
		}
	}
	s := Summary{
		TotalLabel: "Total Consumibles",
		Total:      ok + low,
		Counters: []Counter{
			{Key: "ok", Label: "Stock OK", Value: ok},
			{Key: "bajo", Label: "Stock Bajo", Value: low},
		},
	}
	return s
}

// SummarizeMovements total de movimientos y conteo por tipo.
func SummarizeMovements(ms []*entity.Movement) Summary {
	t := newTally(entity.MovementTypes, []string{"Entradas", "Salidas", "Mantenimiento", "Baja"})
	n := 0
	for _, m := range ms {
		if m == nil {
			continue
		}
		n++
		t.add(m.Type)
	}
	return t.summary("Total Movimientos", n)
}

// CategoryCount cantidad de items de una categoría.
type CategoryCount struct {
	Name  string
	Count int
}

// CountByCategory agrupa items por nombre de categoría, ordenado por nombre.
// Los items sin categoría se agrupan bajo "-".
func CountByCategory(items []*entity.Item) []CategoryCount {
	counts := make(map[string]int)
	for _, it := range items {
		if it == nil {
			continue
		}
		counts[entity.RefName(it.Category, placeholder)]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
