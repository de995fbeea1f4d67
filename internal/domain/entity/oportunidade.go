package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados do funil comercial.
const (
	OportunidadeAberta   = "aberta"
	OportunidadeGanha    = "ganha"
	OportunidadePerdida  = "perdida"
	OportunidadeSuspensa = "suspensa"
)

// Oportunidade representa uma oportunidade de venda vinculada a um cliente.
type Oportunidade struct {
	ID            string
	ClienteID     string
	Titulo        string
	ValorEstimado decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
