package dto

import "time"

// CreateContatoRequest entrada para criar um contato de cliente.
type CreateContatoRequest struct {
	ClienteID string `json:"cliente_id" validate:"required"`
	Nome      string `json:"nome" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Telefone  string `json:"telefone"`
}

// UpdateContatoRequest entrada para atualizar um contato (campos opcionais).
type UpdateContatoRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
}

// ContatoResponse saída de um contato.
type ContatoResponse struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
