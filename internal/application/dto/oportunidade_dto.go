package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOportunidadeRequest entrada para criar uma oportunidade.
type CreateOportunidadeRequest struct {
	ClienteID     string          `json:"cliente_id" validate:"required"`
	Titulo        string          `json:"titulo" validate:"required,min=1,max=200"`
	ValorEstimado decimal.Decimal `json:"valor_estimado"`
	Status        string          `json:"status" validate:"omitempty,oneof=aberta ganha perdida suspensa"`
}

// UpdateOportunidadeRequest entrada para atualizar uma oportunidade (campos opcionais).
type UpdateOportunidadeRequest struct {
	Titulo        *string          `json:"titulo" validate:"omitempty,min=1,max=200"`
	ValorEstimado *decimal.Decimal `json:"valor_estimado"`
	Status        *string          `json:"status" validate:"omitempty,oneof=aberta ganha perdida suspensa"`
}

// OportunidadeResponse saída de uma oportunidade.
type OportunidadeResponse struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	Titulo        string          `json:"titulo"`
	ValorEstimado decimal.Decimal `json:"valor_estimado"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
