package dto

import "time"

// CreateAmostraRequest entrada para criar uma amostra.
// DataSolicitacao no formato "2006-01-02"; vazio = sem data.
type CreateAmostraRequest struct {
	OportunidadeID  *string `json:"oportunidade_id"`
	Descricao       string  `json:"descricao" validate:"required,min=1"`
	DataSolicitacao string  `json:"data_solicitacao"`
	Status          string  `json:"status" validate:"required"`
}

// UpdateAmostraRequest entrada para atualizar uma amostra (campos opcionais).
type UpdateAmostraRequest struct {
	Descricao       *string `json:"descricao" validate:"omitempty,min=1"`
	DataSolicitacao *string `json:"data_solicitacao"`
	Status          *string `json:"status"`
}

// AmostraResponse saída de uma amostra.
type AmostraResponse struct {
	ID              string     `json:"id"`
	OportunidadeID  *string    `json:"oportunidade_id,omitempty"`
	Descricao       string     `json:"descricao"`
	DataSolicitacao *time.Time `json:"data_solicitacao,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
