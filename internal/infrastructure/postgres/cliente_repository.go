package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
	"github.com/caixaforte/comercial-api/pkg/textutil"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação do porto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, nome_normalizado, cnpj, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, textutil.Normalize(cliente.Nome), cliente.CNPJ,
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID. Devolve nil, nil se não existir.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT id, nome, cnpj, created_at, updated_at FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.CNPJ, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByCNPJ obtém um cliente pelo CNPJ.
func (r *ClienteRepo) GetByCNPJ(cnpj string) (*entity.Cliente, error) {
	query := `SELECT id, nome, cnpj, created_at, updated_at FROM clientes WHERE cnpj = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, cnpj).Scan(
		&c.ID, &c.Nome, &c.CNPJ, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by cnpj: %w", err)
	}
	return &c, nil
}

// List lista clientes ordenados por nome. O filtro q compara contra
// nome_normalizado no banco, antes do LIMIT/OFFSET.
func (r *ClienteRepo) List(q string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nome, cnpj, created_at, updated_at FROM clientes
		WHERE ($1 = '' OR nome_normalizado LIKE '%' || $1 || '%')
		ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, textutil.Normalize(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.CNPJ, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `UPDATE clientes SET nome = $2, nome_normalizado = $3, cnpj = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, textutil.Normalize(cliente.Nome), cliente.CNPJ, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID. Devolve domain.ErrConflict se houver
// contatos ou oportunidades referenciando o cliente.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
