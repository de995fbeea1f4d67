package entity

import "time"

// Perfis de acesso.
const (
	PerfilAdmin    = "admin"
	PerfilVendedor = "vendedor"
)

// Usuario representa um usuário interno da aplicação.
type Usuario struct {
	ID        string
	Nome      string
	Email     string // único
	SenhaHash string
	Perfil    string
	Status    string // active | inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
