package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// OportunidadeRepository define o porto de persistência para Oportunidade.
type OportunidadeRepository interface {
	Create(oportunidade *entity.Oportunidade) error
	GetByID(id string) (*entity.Oportunidade, error)
	List(clienteID, status string, limit, offset int) ([]*entity.Oportunidade, error)
	Update(oportunidade *entity.Oportunidade) error
	Delete(id string) error
}
