package entity

import "time"

// Cliente representa um cliente da carteira comercial.
type Cliente struct {
	ID        string
	Nome      string
	CNPJ      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
