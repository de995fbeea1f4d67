package comercial

import (
	"context"
	"fmt"

	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// PDFUseCase monta os dados e delega a renderização do PDF do orçamento.
type PDFUseCase struct {
	orcamentoRepo repository.OrcamentoRepository
	empresaRepo   repository.EmpresaSolicitanteRepository
	generator     OrcamentoPDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(
	orcamentoRepo repository.OrcamentoRepository,
	empresaRepo repository.EmpresaSolicitanteRepository,
	generator OrcamentoPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{orcamentoRepo: orcamentoRepo, empresaRepo: empresaRepo, generator: generator}
}

// Generate carrega orçamento, empresa e itens e devolve os bytes do PDF.
// Devolve domain.ErrNotFound se o orçamento não existir.
func (uc *PDFUseCase) Generate(ctx context.Context, orcamentoID string) ([]byte, error) {
	orcamento, err := uc.orcamentoRepo.GetByID(orcamentoID)
	if err != nil {
		return nil, err
	}
	if orcamento == nil {
		return nil, domain.ErrNotFound
	}
	empresa, err := uc.empresaRepo.GetByID(orcamento.EmpresaSolicitanteID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, fmt.Errorf("empresa solicitante %s do orçamento não existe", orcamento.EmpresaSolicitanteID)
	}
	itens, err := uc.orcamentoRepo.ListItens(orcamentoID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrcamentoPDF(ctx, orcamento, empresa, itens)
}
