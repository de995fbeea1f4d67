package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente. List recebe q
// (filtro por nome, ignorando caixa e acentos) e aplica o filtro antes da paginação.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCNPJ(cnpj string) (*entity.Cliente, error)
	List(q string, limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
