package comercial

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// OrcamentoUseCase casos de uso de orçamentos. Criação e remoção do cabeçalho
// com itens acontecem dentro de uma transação (TxRunner).
type OrcamentoUseCase struct {
	txRunner    TxRunner
	repo        repository.OrcamentoRepository
	empresaRepo repository.EmpresaSolicitanteRepository
}

// NewOrcamentoUseCase constrói o caso de uso.
func NewOrcamentoUseCase(txRunner TxRunner, repo repository.OrcamentoRepository, empresaRepo repository.EmpresaSolicitanteRepository) *OrcamentoUseCase {
	return &OrcamentoUseCase{txRunner: txRunner, repo: repo, empresaRepo: empresaRepo}
}

// Create grava cabeçalho e itens em uma única transação. Exige empresa
// solicitante existente (domain.ErrNotFound). Os totais monetários são
// gravados como informados pelo emissor.
func (uc *OrcamentoUseCase) Create(ctx context.Context, in dto.CreateOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	if in.EmpresaSolicitanteID == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Itens {
		if item.Referencia == "" || item.Quantidade < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaSolicitanteID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orcamento := &entity.Orcamento{
		ID:                            uuid.New().String(),
		EmpresaSolicitanteID:          in.EmpresaSolicitanteID,
		DataCriacao:                   now,
		ValidadeDias:                  in.ValidadeDias,
		PrazoEntregaDias:              in.PrazoEntregaDias,
		CondicaoPagamento:             in.CondicaoPagamento,
		IPIPercentual:                 in.IPIPercentual,
		Observacoes:                   in.Observacoes,
		PrecoBrutoTotal:               in.PrecoBrutoTotal,
		ValorFerramentalTotal:         in.ValorFerramentalTotal,
		ValorDiluicaoFerramentalTotal: in.ValorDiluicaoFerramentalTotal,
		ValorIPITotal:                 in.ValorIPITotal,
		PrecoFinalTotal:               in.PrecoFinalTotal,
		CreatedAt:                     now,
		UpdatedAt:                     now,
	}
	itens := make([]*entity.OrcamentoItem, 0, len(in.Itens))
	for _, item := range in.Itens {
		itens = append(itens, &entity.OrcamentoItem{
			ID:                            uuid.New().String(),
			OrcamentoID:                   orcamento.ID,
			Referencia:                    item.Referencia,
			EstiloCaixa:                   item.EstiloCaixa,
			Fechamento:                    item.Fechamento,
			NumeroCores:                   item.NumeroCores,
			Medidas:                       item.Medidas,
			Qualidade:                     item.Qualidade,
			Quantidade:                    item.Quantidade,
			ValorFerramental:              item.ValorFerramental,
			ValorUnitario:                 item.ValorUnitario,
			ValorDiluicaoFerramentalTotal: item.ValorDiluicaoFerramentalTotal,
			ValorTotal:                    item.ValorTotal,
			IPIPercentual:                 item.IPIPercentual,
		})
	}

	err = uc.txRunner.Run(ctx, func(orcamentoRepo repository.OrcamentoRepository) error {
		if err := orcamentoRepo.Create(orcamento); err != nil {
			return err
		}
		for _, item := range itens {
			if err := orcamentoRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrcamentoResponse(orcamento, itens), nil
}

// GetByID obtém o orçamento com seus itens. Devolve nil se não existir.
func (uc *OrcamentoUseCase) GetByID(id string) (*dto.OrcamentoResponse, error) {
	orcamento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orcamento == nil {
		return nil, nil
	}
	itens, err := uc.repo.ListItens(id)
	if err != nil {
		return nil, err
	}
	return toOrcamentoResponse(orcamento, itens), nil
}

// List lista cabeçalhos de orçamento, com filtro opcional por empresa solicitante.
func (uc *OrcamentoUseCase) List(empresaSolicitanteID string, limit, offset int) ([]*dto.OrcamentoResponse, error) {
	list, err := uc.repo.List(empresaSolicitanteID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrcamentoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrcamentoResponse(o, nil))
	}
	return out, nil
}

// Delete remove itens e cabeçalho em uma única transação.
// Devolve domain.ErrNotFound se o ID não existir.
func (uc *OrcamentoUseCase) Delete(ctx context.Context, id string) error {
	orcamento, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if orcamento == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(orcamentoRepo repository.OrcamentoRepository) error {
		if err := orcamentoRepo.DeleteItens(id); err != nil {
			return err
		}
		return orcamentoRepo.Delete(id)
	})
}

func toOrcamentoResponse(o *entity.Orcamento, itens []*entity.OrcamentoItem) *dto.OrcamentoResponse {
	if o == nil {
		return nil
	}
	out := &dto.OrcamentoResponse{
		ID:                            o.ID,
		EmpresaSolicitanteID:          o.EmpresaSolicitanteID,
		DataCriacao:                   o.DataCriacao,
		ValidadeDias:                  o.ValidadeDias,
		PrazoEntregaDias:              o.PrazoEntregaDias,
		CondicaoPagamento:             o.CondicaoPagamento,
		IPIPercentual:                 o.IPIPercentual,
		Observacoes:                   o.Observacoes,
		PrecoBrutoTotal:               o.PrecoBrutoTotal,
		ValorFerramentalTotal:         o.ValorFerramentalTotal,
		ValorDiluicaoFerramentalTotal: o.ValorDiluicaoFerramentalTotal,
		ValorIPITotal:                 o.ValorIPITotal,
		PrecoFinalTotal:               o.PrecoFinalTotal,
	}
	for _, item := range itens {
		out.Itens = append(out.Itens, dto.OrcamentoItemResponse{
			ID:                            item.ID,
			OrcamentoID:                   item.OrcamentoID,
			Referencia:                    item.Referencia,
			EstiloCaixa:                   item.EstiloCaixa,
			Fechamento:                    item.Fechamento,
			NumeroCores:                   item.NumeroCores,
			Medidas:                       item.Medidas,
			Qualidade:                     item.Qualidade,
			Quantidade:                    item.Quantidade,
			ValorFerramental:              item.ValorFerramental,
			ValorUnitario:                 item.ValorUnitario,
			ValorDiluicaoFerramentalTotal: item.ValorDiluicaoFerramentalTotal,
			ValorTotal:                    item.ValorTotal,
			IPIPercentual:                 item.IPIPercentual,
		})
	}
	return out
}
