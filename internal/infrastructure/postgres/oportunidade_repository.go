package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

var _ repository.OportunidadeRepository = (*OportunidadeRepo)(nil)

// OportunidadeRepo implementação do porto OportunidadeRepository sobre PostgreSQL.
type OportunidadeRepo struct {
	q Querier
}

// NewOportunidadeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOportunidadeRepository(q Querier) *OportunidadeRepo {
	return &OportunidadeRepo{q: q}
}

// Create persiste uma nova oportunidade.
func (r *OportunidadeRepo) Create(op *entity.Oportunidade) error {
	query := `
		INSERT INTO oportunidades (id, cliente_id, titulo, valor_estimado, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.ClienteID, op.Titulo, op.ValorEstimado, op.Status, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert oportunidade: %w", err)
	}
	return nil
}

// GetByID obtém uma oportunidade por ID. Devolve nil, nil se não existir.
func (r *OportunidadeRepo) GetByID(id string) (*entity.Oportunidade, error) {
	query := `
		SELECT id, cliente_id, titulo, valor_estimado, status, created_at, updated_at
		FROM oportunidades WHERE id = $1`
	var op entity.Oportunidade
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.ClienteID, &op.Titulo, &op.ValorEstimado, &op.Status, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oportunidade: %w", err)
	}
	return &op, nil
}

// List lista oportunidades com filtros opcionais de cliente e status.
func (r *OportunidadeRepo) List(clienteID, status string, limit, offset int) ([]*entity.Oportunidade, error) {
	query := `
		SELECT id, cliente_id, titulo, valor_estimado, status, created_at, updated_at
		FROM oportunidades
		WHERE ($1 = '' OR cliente_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, clienteID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list oportunidades: %w", err)
	}
	defer rows.Close()
	var list []*entity.Oportunidade
	for rows.Next() {
		var op entity.Oportunidade
		if err := rows.Scan(&op.ID, &op.ClienteID, &op.Titulo, &op.ValorEstimado, &op.Status, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan oportunidade: %w", err)
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}

// Update atualiza uma oportunidade.
func (r *OportunidadeRepo) Update(op *entity.Oportunidade) error {
	query := `
		UPDATE oportunidades SET titulo = $2, valor_estimado = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Titulo, op.ValorEstimado, op.Status, op.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update oportunidade: %w", err)
	}
	return nil
}

// Delete remove uma oportunidade por ID. Devolve domain.ErrConflict se houver
// amostras referenciando a oportunidade.
func (r *OportunidadeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM oportunidades WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete oportunidade: %w", err)
	}
	return nil
}
