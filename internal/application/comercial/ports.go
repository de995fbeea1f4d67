package comercial

import (
	"context"

	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// TxRunner executa um callback com um repositório de orçamentos atado a uma
// transação. Implementado em infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(orcamentoRepo repository.OrcamentoRepository) error) error
}

// OrcamentoPDFGenerator gera a representação em PDF de um orçamento.
// Implementado em infrastructure/pdf.
type OrcamentoPDFGenerator interface {
	GenerateOrcamentoPDF(
		ctx context.Context,
		orcamento *entity.Orcamento,
		empresa *entity.EmpresaSolicitante,
		itens []*entity.OrcamentoItem,
	) ([]byte, error)
}
