package entity

import "time"

// Contato representa uma pessoa de contato vinculada a um cliente.
type Contato struct {
	ID        string
	ClienteID string
	Nome      string
	Email     string // único
	Telefone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
