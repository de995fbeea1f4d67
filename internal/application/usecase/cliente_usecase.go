package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// ClienteUseCase aplica as regras de negócio para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um novo cliente. Devolve domain.ErrDuplicate se o CNPJ já existir.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CNPJ != "" {
		existing, _ := uc.repo.GetByCNPJ(in.CNPJ)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      in.CNPJ,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtém um cliente por ID. Devolve nil se não existir.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes com paginação e filtro opcional por nome (sem acentos).
// O filtro é aplicado pelo repositório antes da paginação.
func (uc *ClienteUseCase) List(limit, offset int, q string) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update aplica uma atualização parcial. Devolve nil, nil se o ID não existir.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nome = *in.Nome
	}
	if in.CNPJ != nil && *in.CNPJ != cliente.CNPJ {
		if *in.CNPJ != "" {
			existing, _ := uc.repo.GetByCNPJ(*in.CNPJ)
			if existing != nil && existing.ID != cliente.ID {
				return nil, domain.ErrDuplicate
			}
		}
		cliente.CNPJ = *in.CNPJ
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete remove o cliente. Devolve domain.ErrNotFound se não existir e
// domain.ErrConflict se houver contatos ou oportunidades dependentes.
func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		CNPJ:      c.CNPJ,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
