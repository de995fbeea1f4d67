package entity

import "time"

// EmpresaSolicitante representa a empresa que solicita orçamentos de embalagens.
type EmpresaSolicitante struct {
	ID          string
	Nome        string
	CNPJ        string // único
	Responsavel string
	Endereco    string
	Telefone    string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
