package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// EmpresaSolicitanteUseCase aplica as regras de negócio para empresas solicitantes.
type EmpresaSolicitanteUseCase struct {
	repo repository.EmpresaSolicitanteRepository
}

// NewEmpresaSolicitanteUseCase constrói o caso de uso com o porto de persistência.
func NewEmpresaSolicitanteUseCase(repo repository.EmpresaSolicitanteRepository) *EmpresaSolicitanteUseCase {
	return &EmpresaSolicitanteUseCase{repo: repo}
}

// Create cria uma nova empresa solicitante. Gera o ID. Devolve domain.ErrInvalidInput
// se nome estiver vazio e domain.ErrDuplicate se o CNPJ já existir.
func (uc *EmpresaSolicitanteUseCase) Create(in dto.CreateEmpresaSolicitanteRequest) (*dto.EmpresaSolicitanteResponse, error) {
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
	empresa := &entity.EmpresaSolicitante{
		ID:          uuid.New().String(),
		Nome:        in.Nome,
		CNPJ:        in.CNPJ,
		Responsavel: in.Responsavel,
		Endereco:    in.Endereco,
		Telefone:    in.Telefone,
		Email:       in.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaSolicitanteResponse(empresa), nil
}

// GetByID obtém uma empresa solicitante por ID. Devolve nil se não existir.
func (uc *EmpresaSolicitanteUseCase) GetByID(id string) (*dto.EmpresaSolicitanteResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	return toEmpresaSolicitanteResponse(empresa), nil
}

// List lista empresas solicitantes com paginação. Se q não for vazio, filtra
// por nome ignorando caixa e acentos ("sao" encontra "São"). O filtro é
// aplicado pelo repositório antes da paginação.
func (uc *EmpresaSolicitanteUseCase) List(limit, offset int, q string) ([]*dto.EmpresaSolicitanteResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmpresaSolicitanteResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmpresaSolicitanteResponse(e))
	}
	return out, nil
}

// Update aplica uma atualização parcial: somente os campos presentes no payload
// mudam; os omitidos mantêm o valor anterior. Devolve nil, nil se o ID não existir.
func (uc *EmpresaSolicitanteUseCase) Update(id string, in dto.UpdateEmpresaSolicitanteRequest) (*dto.EmpresaSolicitanteResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		empresa.Nome = *in.Nome
	}
	if in.CNPJ != nil && *in.CNPJ != empresa.CNPJ {
		if *in.CNPJ != "" {
			existing, _ := uc.repo.GetByCNPJ(*in.CNPJ)
			if existing != nil && existing.ID != empresa.ID {
				return nil, domain.ErrDuplicate
			}
		}
		empresa.CNPJ = *in.CNPJ
	}
	if in.Responsavel != nil {
		empresa.Responsavel = *in.Responsavel
	}
	if in.Endereco != nil {
		empresa.Endereco = *in.Endereco
	}
	if in.Telefone != nil {
		empresa.Telefone = *in.Telefone
	}
	if in.Email != nil {
		empresa.Email = *in.Email
	}
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	return toEmpresaSolicitanteResponse(empresa), nil
}

// Delete remove a empresa solicitante. Devolve domain.ErrNotFound se o ID não existir
// e domain.ErrConflict se houver orçamentos dependentes.
func (uc *EmpresaSolicitanteUseCase) Delete(id string) error {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEmpresaSolicitanteResponse(e *entity.EmpresaSolicitante) *dto.EmpresaSolicitanteResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaSolicitanteResponse{
		ID:          e.ID,
		Nome:        e.Nome,
		CNPJ:        e.CNPJ,
		Responsavel: e.Responsavel,
		Endereco:    e.Endereco,
		Telefone:    e.Telefone,
		Email:       e.Email,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
