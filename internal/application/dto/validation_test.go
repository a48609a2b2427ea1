package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
)

func TestValidate_CreateProductRequest(t *testing.T) {
	tests := []struct {
		name    string
		in      dto.CreateProductRequest
		wantErr string
	}{
		{name: "válido", in: dto.CreateProductRequest{Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 10}},
		{name: "descripción vacía permitida", in: dto.CreateProductRequest{Name: "Widget", Price: decimal.NewFromInt(1)}},
		{name: "nombre vacío", in: dto.CreateProductRequest{Price: decimal.NewFromInt(1)}, wantErr: "nombre"},
		{name: "precio cero", in: dto.CreateProductRequest{Name: "W", Price: decimal.Zero}, wantErr: "precio"},
		{name: "precio negativo", in: dto.CreateProductRequest{Name: "W", Price: decimal.NewFromInt(-5)}, wantErr: "precio"},
		{name: "cantidad negativa", in: dto.CreateProductRequest{Name: "W", Price: decimal.NewFromInt(1), Quantity: -1}, wantErr: "cantidad"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := dto.Validate(tc.in)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_RegisterUserRequest(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.RegisterUserRequest{Username: "alice", Password: "secret123"}))
	assert.ErrorIs(t, dto.Validate(dto.RegisterUserRequest{Username: "alice", Password: "corta"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, dto.Validate(dto.RegisterUserRequest{Password: "secret123"}), domain.ErrInvalidInput)
}
