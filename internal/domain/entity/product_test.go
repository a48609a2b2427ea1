package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

func TestProduct_Line(t *testing.T) {
	tests := []struct {
		name string
		p    entity.Product
		want string
	}{
		{
			name: "precio con dos decimales",
			p:    entity.Product{Name: "Widget", Description: "A widget", Price: decimal.RequireFromString("9.99"), Quantity: 10},
			want: "Widget,A widget,9.99,10",
		},
		{
			name: "completa decimales",
			p:    entity.Product{Name: "Tornillo", Price: decimal.NewFromInt(3), Quantity: 0},
			want: "Tornillo,,3.00,0",
		},
		{
			name: "redondea a dos decimales",
			p:    entity.Product{Name: "Tuerca", Description: "M8", Price: decimal.RequireFromString("1.005"), Quantity: 7},
			want: "Tuerca,M8,1.01,7",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Line())
		})
	}
}

func TestProduct_CloneEsIndependiente(t *testing.T) {
	p := &entity.Product{Name: "Widget", Quantity: 1}
	c := p.Clone()
	c.Quantity = 99

	assert.Equal(t, 1, p.Quantity)
}
