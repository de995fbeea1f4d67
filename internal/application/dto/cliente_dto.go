package dto

import "time"

// CreateClienteRequest entrada para criar um cliente.
type CreateClienteRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
	CNPJ string `json:"cnpj" validate:"omitempty,min=1,max=20"`
}

// UpdateClienteRequest entrada para atualizar um cliente (campos opcionais).
type UpdateClienteRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=1,max=200"`
	CNPJ *string `json:"cnpj" validate:"omitempty,min=1,max=20"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
