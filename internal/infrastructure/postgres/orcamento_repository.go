package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)

// OrcamentoRepo implementação do porto OrcamentoRepository sobre PostgreSQL.
type OrcamentoRepo struct {
	q Querier
}

// NewOrcamentoRepository constrói o adaptador. Passar pool ou tx (Querier);
// dentro do TxRunner recebe a transação.
func NewOrcamentoRepository(q Querier) *OrcamentoRepo {
	return &OrcamentoRepo{q: q}
}

// Create persiste o cabeçalho de um orçamento.
func (r *OrcamentoRepo) Create(o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamentos (
			id, empresa_solicitante_id, data_criacao, validade_dias, prazo_entrega_dias,
			condicao_pagamento, ipi_percentual, observacoes,
			preco_bruto_total, valor_ferramental_total, valor_diluicao_ferramental_total,
			valor_ipi_total, preco_final_total, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.EmpresaSolicitanteID, o.DataCriacao, o.ValidadeDias, o.PrazoEntregaDias,
		o.CondicaoPagamento, o.IPIPercentual, o.Observacoes,
		o.PrecoBrutoTotal, o.ValorFerramentalTotal, o.ValorDiluicaoFerramentalTotal,
		o.ValorIPITotal, o.PrecoFinalTotal, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orcamento: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do orçamento.
func (r *OrcamentoRepo) CreateItem(item *entity.OrcamentoItem) error {
	query := `
		INSERT INTO orcamento_itens (
			id, orcamento_id, referencia, estilo_caixa, fechamento, numero_cores,
			medidas, qualidade, quantidade, valor_ferramental, valor_unitario,
			valor_diluicao_ferramental_total, valor_total, ipi_percentual
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrcamentoID, item.Referencia, item.EstiloCaixa, item.Fechamento,
		item.NumeroCores, item.Medidas, item.Qualidade, item.Quantidade,
		item.ValorFerramental, item.ValorUnitario, item.ValorDiluicaoFerramentalTotal,
		item.ValorTotal, item.IPIPercentual,
	)
	if err != nil {
		return fmt.Errorf("insert orcamento item: %w", err)
	}
	return nil
}

// GetByID obtém o cabeçalho de um orçamento. Devolve nil, nil se não existir.
func (r *OrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	query := `
		SELECT id, empresa_solicitante_id, data_criacao, validade_dias, prazo_entrega_dias,
			condicao_pagamento, ipi_percentual, observacoes,
			preco_bruto_total, valor_ferramental_total, valor_diluicao_ferramental_total,
			valor_ipi_total, preco_final_total, created_at, updated_at
		FROM orcamentos WHERE id = $1`
	var o entity.Orcamento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.EmpresaSolicitanteID, &o.DataCriacao, &o.ValidadeDias, &o.PrazoEntregaDias,
		&o.CondicaoPagamento, &o.IPIPercentual, &o.Observacoes,
		&o.PrecoBrutoTotal, &o.ValorFerramentalTotal, &o.ValorDiluicaoFerramentalTotal,
		&o.ValorIPITotal, &o.PrecoFinalTotal, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orcamento: %w", err)
	}
	return &o, nil
}

// ListItens lista as linhas de um orçamento na ordem de referência.
func (r *OrcamentoRepo) ListItens(orcamentoID string) ([]*entity.OrcamentoItem, error) {
	query := `
		SELECT id, orcamento_id, referencia, estilo_caixa, fechamento, numero_cores,
			medidas, qualidade, quantidade, valor_ferramental, valor_unitario,
			valor_diluicao_ferramental_total, valor_total, ipi_percentual
		FROM orcamento_itens WHERE orcamento_id = $1 ORDER BY referencia`
	rows, err := r.q.Query(context.Background(), query, orcamentoID)
	if err != nil {
		return nil, fmt.Errorf("list orcamento itens: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrcamentoItem
	for rows.Next() {
		var item entity.OrcamentoItem
		if err := rows.Scan(
			&item.ID, &item.OrcamentoID, &item.Referencia, &item.EstiloCaixa, &item.Fechamento,
			&item.NumeroCores, &item.Medidas, &item.Qualidade, &item.Quantidade,
			&item.ValorFerramental, &item.ValorUnitario, &item.ValorDiluicaoFerramentalTotal,
			&item.ValorTotal, &item.IPIPercentual,
		); err != nil {
			return nil, fmt.Errorf("scan orcamento item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// List lista cabeçalhos com filtro opcional por empresa solicitante.
func (r *OrcamentoRepo) List(empresaSolicitanteID string, limit, offset int) ([]*entity.Orcamento, error) {
	query := `
		SELECT id, empresa_solicitante_id, data_criacao, validade_dias, prazo_entrega_dias,
			condicao_pagamento, ipi_percentual, observacoes,
			preco_bruto_total, valor_ferramental_total, valor_diluicao_ferramental_total,
			valor_ipi_total, preco_final_total, created_at, updated_at
		FROM orcamentos
		WHERE ($1 = '' OR empresa_solicitante_id = $1)
		ORDER BY data_criacao DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaSolicitanteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orcamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orcamento
	for rows.Next() {
		var o entity.Orcamento
		if err := rows.Scan(
			&o.ID, &o.EmpresaSolicitanteID, &o.DataCriacao, &o.ValidadeDias, &o.PrazoEntregaDias,
			&o.CondicaoPagamento, &o.IPIPercentual, &o.Observacoes,
			&o.PrecoBrutoTotal, &o.ValorFerramentalTotal, &o.ValorDiluicaoFerramentalTotal,
			&o.ValorIPITotal, &o.PrecoFinalTotal, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan orcamento: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete remove o cabeçalho de um orçamento. Os itens precisam ter sido
// removidos antes (DeleteItens) na mesma transação.
func (r *OrcamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orcamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orcamento: %w", err)
	}
	return nil
}

// DeleteItens remove todas as linhas de um orçamento.
func (r *OrcamentoRepo) DeleteItens(orcamentoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orcamento_itens WHERE orcamento_id = $1`, orcamentoID)
	if err != nil {
		return fmt.Errorf("delete orcamento itens: %w", err)
	}
	return nil
}
