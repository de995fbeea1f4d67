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

var _ repository.ContatoRepository = (*ContatoRepo)(nil)

// ContatoRepo implementação do porto ContatoRepository sobre PostgreSQL.
type ContatoRepo struct {
	q Querier
}

// NewContatoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContatoRepository(q Querier) *ContatoRepo {
	return &ContatoRepo{q: q}
}

// Create persiste um novo contato.
func (r *ContatoRepo) Create(contato *entity.Contato) error {
	query := `
		INSERT INTO contatos (id, cliente_id, nome, email, telefone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		contato.ID, contato.ClienteID, contato.Nome, contato.Email, contato.Telefone,
		contato.CreatedAt, contato.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contato: %w", err)
	}
	return nil
}

// GetByID obtém um contato por ID. Devolve nil, nil se não existir.
func (r *ContatoRepo) GetByID(id string) (*entity.Contato, error) {
	query := `
		SELECT id, cliente_id, nome, email, telefone, created_at, updated_at
		FROM contatos WHERE id = $1`
	var c entity.Contato
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClienteID, &c.Nome, &c.Email, &c.Telefone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contato: %w", err)
	}
	return &c, nil
}

// GetByEmail obtém um contato pelo email.
func (r *ContatoRepo) GetByEmail(email string) (*entity.Contato, error) {
	query := `
		SELECT id, cliente_id, nome, email, telefone, created_at, updated_at
		FROM contatos WHERE email = $1`
	var c entity.Contato
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.ClienteID, &c.Nome, &c.Email, &c.Telefone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contato by email: %w", err)
	}
	return &c, nil
}

// List lista contatos, opcionalmente filtrados por cliente, ordenados por nome.
func (r *ContatoRepo) List(clienteID string, limit, offset int) ([]*entity.Contato, error) {
	query := `
		SELECT id, cliente_id, nome, email, telefone, created_at, updated_at
		FROM contatos
		WHERE ($1 = '' OR cliente_id = $1)
		ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clienteID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contatos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contato
	for rows.Next() {
		var c entity.Contato
		if err := rows.Scan(&c.ID, &c.ClienteID, &c.Nome, &c.Email, &c.Telefone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contato: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um contato.
func (r *ContatoRepo) Update(contato *entity.Contato) error {
	query := `UPDATE contatos SET nome = $2, email = $3, telefone = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contato.ID, contato.Nome, contato.Email, contato.Telefone, contato.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contato: %w", err)
	}
	return nil
}

// Delete remove um contato por ID.
func (r *ContatoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contatos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contato: %w", err)
	}
	return nil
}
