package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

var _ repository.AmostraRepository = (*AmostraRepo)(nil)

// AmostraRepo implementação do porto AmostraRepository sobre PostgreSQL.
type AmostraRepo struct {
	q Querier
}

// NewAmostraRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAmostraRepository(q Querier) *AmostraRepo {
	return &AmostraRepo{q: q}
}

// Create persiste uma nova amostra.
func (r *AmostraRepo) Create(amostra *entity.Amostra) error {
	query := `
		INSERT INTO amostras (id, oportunidade_id, descricao, data_solicitacao, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		amostra.ID, amostra.OportunidadeID, amostra.Descricao, amostra.DataSolicitacao,
		amostra.Status, amostra.CreatedAt, amostra.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert amostra: %w", err)
	}
	return nil
}

// GetByID obtém uma amostra por ID. Devolve nil, nil se não existir.
func (r *AmostraRepo) GetByID(id string) (*entity.Amostra, error) {
	query := `
		SELECT id, oportunidade_id, descricao, data_solicitacao, status, created_at, updated_at
		FROM amostras WHERE id = $1`
	var a entity.Amostra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.OportunidadeID, &a.Descricao, &a.DataSolicitacao, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get amostra: %w", err)
	}
	return &a, nil
}

// List lista amostras com filtros opcionais de oportunidade e status.
func (r *AmostraRepo) List(oportunidadeID, status string, limit, offset int) ([]*entity.Amostra, error) {
	query := `
		SELECT id, oportunidade_id, descricao, data_solicitacao, status, created_at, updated_at
		FROM amostras
		WHERE ($1 = '' OR oportunidade_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, oportunidadeID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list amostras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Amostra
	for rows.Next() {
		var a entity.Amostra
		if err := rows.Scan(&a.ID, &a.OportunidadeID, &a.Descricao, &a.DataSolicitacao, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan amostra: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update atualiza uma amostra.
func (r *AmostraRepo) Update(amostra *entity.Amostra) error {
	query := `
		UPDATE amostras SET descricao = $2, data_solicitacao = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		amostra.ID, amostra.Descricao, amostra.DataSolicitacao, amostra.Status, amostra.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update amostra: %w", err)
	}
	return nil
}

// Delete remove uma amostra por ID.
func (r *AmostraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM amostras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete amostra: %w", err)
	}
	return nil
}
