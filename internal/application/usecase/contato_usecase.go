package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// ContatoUseCase aplica as regras de negócio para contatos de clientes.
type ContatoUseCase struct {
	repo        repository.ContatoRepository
	clienteRepo repository.ClienteRepository
}

// NewContatoUseCase constrói o caso de uso.
func NewContatoUseCase(repo repository.ContatoRepository, clienteRepo repository.ClienteRepository) *ContatoUseCase {
	return &ContatoUseCase{repo: repo, clienteRepo: clienteRepo}
}

// Create cria um novo contato. Exige cliente existente (domain.ErrNotFound) e
// email inédito (domain.ErrDuplicate).
func (uc *ContatoUseCase) Create(in dto.CreateContatoRequest) (*dto.ContatoResponse, error) {
	if in.Nome == "" || in.Email == "" || in.ClienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	contato := &entity.Contato{
		ID:        uuid.New().String(),
		ClienteID: in.ClienteID,
		Nome:      in.Nome,
		Email:     in.Email,
		Telefone:  in.Telefone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(contato); err != nil {
		return nil, err
	}
	return toContatoResponse(contato), nil
}

// GetByID obtém um contato por ID. Devolve nil se não existir.
func (uc *ContatoUseCase) GetByID(id string) (*dto.ContatoResponse, error) {
	contato, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contato == nil {
		return nil, nil
	}
	return toContatoResponse(contato), nil
}

// List lista contatos, opcionalmente filtrados por cliente.
func (uc *ContatoUseCase) List(clienteID string, limit, offset int) ([]*dto.ContatoResponse, error) {
	list, err := uc.repo.List(clienteID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContatoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContatoResponse(c))
	}
	return out, nil
}

// Update aplica uma atualização parcial. Devolve nil, nil se o ID não existir.
func (uc *ContatoUseCase) Update(id string, in dto.UpdateContatoRequest) (*dto.ContatoResponse, error) {
	contato, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contato == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		contato.Nome = *in.Nome
	}
	if in.Email != nil && *in.Email != contato.Email {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByEmail(*in.Email)
		if existing != nil && existing.ID != contato.ID {
			return nil, domain.ErrDuplicate
		}
		contato.Email = *in.Email
	}
	if in.Telefone != nil {
		contato.Telefone = *in.Telefone
	}
	contato.UpdatedAt = time.Now()
	if err := uc.repo.Update(contato); err != nil {
		return nil, err
	}
	return toContatoResponse(contato), nil
}

// Delete remove o contato. Devolve domain.ErrNotFound se não existir.
func (uc *ContatoUseCase) Delete(id string) error {
	contato, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if contato == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContatoResponse(c *entity.Contato) *dto.ContatoResponse {
	if c == nil {
		return nil
	}
	return &dto.ContatoResponse{
		ID:        c.ID,
		ClienteID: c.ClienteID,
		Nome:      c.Nome,
		Email:     c.Email,
		Telefone:  c.Telefone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
