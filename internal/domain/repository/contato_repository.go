package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// ContatoRepository define o porto de persistência para Contato.
type ContatoRepository interface {
	Create(contato *entity.Contato) error
	GetByID(id string) (*entity.Contato, error)
	GetByEmail(email string) (*entity.Contato, error)
	List(clienteID string, limit, offset int) ([]*entity.Contato, error)
	Update(contato *entity.Contato) error
	Delete(id string) error
}
