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

var _ repository.EmpresaSolicitanteRepository = (*EmpresaSolicitanteRepo)(nil)

// EmpresaSolicitanteRepo implementação do porto EmpresaSolicitanteRepository sobre PostgreSQL.
type EmpresaSolicitanteRepo struct {
	q Querier
}

// NewEmpresaSolicitanteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmpresaSolicitanteRepository(q Querier) *EmpresaSolicitanteRepo {
	return &EmpresaSolicitanteRepo{q: q}
}

// Create persiste uma nova empresa solicitante.
func (r *EmpresaSolicitanteRepo) Create(empresa *entity.EmpresaSolicitante) error {
	query := `
		INSERT INTO empresas_solicitantes (id, nome, nome_normalizado, cnpj, responsavel, endereco, telefone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, textutil.Normalize(empresa.Nome), empresa.CNPJ, empresa.Responsavel,
		empresa.Endereco, empresa.Telefone, empresa.Email, empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa solicitante: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa solicitante por ID. Devolve nil, nil se não existir.
func (r *EmpresaSolicitanteRepo) GetByID(id string) (*entity.EmpresaSolicitante, error) {
	query := `
		SELECT id, nome, cnpj, responsavel, endereco, telefone, email, created_at, updated_at
		FROM empresas_solicitantes WHERE id = $1`
	var e entity.EmpresaSolicitante
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nome, &e.CNPJ, &e.Responsavel, &e.Endereco, &e.Telefone, &e.Email, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa solicitante: %w", err)
	}
	return &e, nil
}

// GetByCNPJ obtém uma empresa solicitante pelo CNPJ.
func (r *EmpresaSolicitanteRepo) GetByCNPJ(cnpj string) (*entity.EmpresaSolicitante, error) {
	query := `
		SELECT id, nome, cnpj, responsavel, endereco, telefone, email, created_at, updated_at
		FROM empresas_solicitantes WHERE cnpj = $1`
	var e entity.EmpresaSolicitante
	err := r.q.QueryRow(context.Background(), query, cnpj).Scan(
		&e.ID, &e.Nome, &e.CNPJ, &e.Responsavel, &e.Endereco, &e.Telefone, &e.Email, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa solicitante by cnpj: %w", err)
	}
	return &e, nil
}

// List lista empresas solicitantes ordenadas por nome. O filtro q compara
// contra nome_normalizado no banco, antes do LIMIT/OFFSET.
func (r *EmpresaSolicitanteRepo) List(q string, limit, offset int) ([]*entity.EmpresaSolicitante, error) {
	query := `
		SELECT id, nome, cnpj, responsavel, endereco, telefone, email, created_at, updated_at
		FROM empresas_solicitantes
		WHERE ($1 = '' OR nome_normalizado LIKE '%' || $1 || '%')
		ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, textutil.Normalize(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas solicitantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmpresaSolicitante
	for rows.Next() {
		var e entity.EmpresaSolicitante
		if err := rows.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Responsavel, &e.Endereco, &e.Telefone, &e.Email, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa solicitante: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update atualiza uma empresa solicitante.
func (r *EmpresaSolicitanteRepo) Update(empresa *entity.EmpresaSolicitante) error {
	query := `
		UPDATE empresas_solicitantes
		SET nome = $2, nome_normalizado = $3, cnpj = $4, responsavel = $5, endereco = $6, telefone = $7, email = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, textutil.Normalize(empresa.Nome), empresa.CNPJ, empresa.Responsavel,
		empresa.Endereco, empresa.Telefone, empresa.Email, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empresa solicitante: %w", err)
	}
	return nil
}

// Delete remove uma empresa solicitante por ID. Devolve domain.ErrConflict se
// houver orçamentos referenciando a empresa.
func (r *EmpresaSolicitanteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM empresas_solicitantes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete empresa solicitante: %w", err)
	}
	return nil
}
