package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// EmpresaSolicitanteRepository define o porto de persistência para EmpresaSolicitante.
// List recebe q (filtro por nome, ignorando caixa e acentos) e aplica o filtro
// antes da paginação.
type EmpresaSolicitanteRepository interface {
	Create(empresa *entity.EmpresaSolicitante) error
	GetByID(id string) (*entity.EmpresaSolicitante, error)
	GetByCNPJ(cnpj string) (*entity.EmpresaSolicitante, error)
	List(q string, limit, offset int) ([]*entity.EmpresaSolicitante, error)
	Update(empresa *entity.EmpresaSolicitante) error
	Delete(id string) error
}
