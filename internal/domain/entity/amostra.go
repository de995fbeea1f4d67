package entity

import "time"

// Amostra representa uma amostra física solicitada durante a negociação.
// OportunidadeID é opcional: amostras avulsas não estão ligadas ao funil.
type Amostra struct {
	ID              string
	OportunidadeID  *string
	Descricao       string
	DataSolicitacao *time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
