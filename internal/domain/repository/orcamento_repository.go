package repository

import "github.com/caixaforte/comercial-api/internal/domain/entity"

// OrcamentoRepository define o porto de persistência para Orcamento e seus itens.
// Create/DeleteItens são chamados dentro da transação do TxRunner.
type OrcamentoRepository interface {
	Create(orcamento *entity.Orcamento) error
	CreateItem(item *entity.OrcamentoItem) error
	GetByID(id string) (*entity.Orcamento, error)
	ListItens(orcamentoID string) ([]*entity.OrcamentoItem, error)
	List(empresaSolicitanteID string, limit, offset int) ([]*entity.Orcamento, error)
	Delete(id string) error
	DeleteItens(orcamentoID string) error
}
