package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// AmostraRepository define o porto de persistência para Amostra.
type AmostraRepository interface {
	Create(amostra *entity.Amostra) error
	GetByID(id string) (*entity.Amostra, error)
	List(oportunidadeID, status string, limit, offset int) ([]*entity.Amostra, error)
	Update(amostra *entity.Amostra) error
	Delete(id string) error
}
