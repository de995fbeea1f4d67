package dto

import "time"

// CreateEmpresaSolicitanteRequest entrada para criar uma empresa solicitante.
type CreateEmpresaSolicitanteRequest struct {
	Nome        string `json:"nome" validate:"required,min=1,max=200"`
	CNPJ        string `json:"cnpj" validate:"omitempty,min=1,max=20"`
	Responsavel string `json:"responsavel"`
	Endereco    string `json:"endereco"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// UpdateEmpresaSolicitanteRequest entrada para atualizar uma empresa solicitante
// (campos opcionais; somente os presentes no payload são aplicados).
type UpdateEmpresaSolicitanteRequest struct {
	Nome        *string `json:"nome" validate:"omitempty,min=1,max=200"`
	CNPJ        *string `json:"cnpj" validate:"omitempty,min=1,max=20"`
	Responsavel *string `json:"responsavel"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// EmpresaSolicitanteResponse saída de uma empresa solicitante.
type EmpresaSolicitanteResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	CNPJ        string    `json:"cnpj"`
	Responsavel string    `json:"responsavel"`
	Endereco    string    `json:"endereco"`
	Telefone    string    `json:"telefone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
