package repository_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-consola/internal/domain/repository"
)

func TestPaging_Offset(t *testing.T) {
	tests := []struct {
		name string
		p    repository.Paging
		want int
	}{
		{"sin informar", repository.Paging{}, 0},
		{"segunda página", repository.Paging{Page: 2, PerPage: 10}, 10},
		{"per_page por defecto", repository.Paging{Page: 3}, 2 * repository.DefaultPerPage},
		{"página enorme satura", repository.Paging{Page: 1 << 62, PerPage: 4}, math.MaxInt},
		{"página máxima", repository.Paging{Page: math.MaxInt, PerPage: 100}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Offset())
		})
	}
}
