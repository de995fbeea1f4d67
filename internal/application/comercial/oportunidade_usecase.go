package comercial

import (
	"time"

	"github.com/google/uuid"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// OportunidadeUseCase casos de uso do funil comercial.
type OportunidadeUseCase struct {
	repo        repository.OportunidadeRepository
	clienteRepo repository.ClienteRepository
}

// NewOportunidadeUseCase constrói o caso de uso.
func NewOportunidadeUseCase(repo repository.OportunidadeRepository, clienteRepo repository.ClienteRepository) *OportunidadeUseCase {
	return &OportunidadeUseCase{repo: repo, clienteRepo: clienteRepo}
}

// Create cria uma nova oportunidade vinculada a um cliente existente.
// Status vazio entra como "aberta"; fora do funil é domain.ErrInvalidInput.
func (uc *OportunidadeUseCase) Create(in dto.CreateOportunidadeRequest) (*dto.OportunidadeResponse, error) {
	if in.Titulo == "" || in.ClienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OportunidadeAberta
	}
	if !statusValido(status) {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	op := &entity.Oportunidade{
		ID:            uuid.New().String(),
		ClienteID:     in.ClienteID,
		Titulo:        in.Titulo,
		ValorEstimado: in.ValorEstimado,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(op); err != nil {
		return nil, err
	}
	return toOportunidadeResponse(op), nil
}

// GetByID obtém uma oportunidade por ID. Devolve nil se não existir.
func (uc *OportunidadeUseCase) GetByID(id string) (*dto.OportunidadeResponse, error) {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	return toOportunidadeResponse(op), nil
}

// List lista oportunidades com filtros opcionais de cliente e status.
func (uc *OportunidadeUseCase) List(clienteID, status string, limit, offset int) ([]*dto.OportunidadeResponse, error) {
	list, err := uc.repo.List(clienteID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OportunidadeResponse, 0, len(list))
	for _, op := range list {
		out = append(out, toOportunidadeResponse(op))
	}
	return out, nil
}

// Update aplica uma atualização parcial. Devolve nil, nil se o ID não existir.
func (uc *OportunidadeUseCase) Update(id string, in dto.UpdateOportunidadeRequest) (*dto.OportunidadeResponse, error) {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		if *in.Titulo == "" {
			return nil, domain.ErrInvalidInput
		}
		op.Titulo = *in.Titulo
	}
	if in.ValorEstimado != nil {
		op.ValorEstimado = *in.ValorEstimado
	}
	if in.Status != nil {
		if !statusValido(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		op.Status = *in.Status
	}
	op.UpdatedAt = time.Now()
	if err := uc.repo.Update(op); err != nil {
		return nil, err
	}
	return toOportunidadeResponse(op), nil
}

// Delete remove a oportunidade. Devolve domain.ErrNotFound se não existir e
// domain.ErrConflict se houver amostras dependentes.
func (uc *OportunidadeUseCase) Delete(id string) error {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// statusValido informa se o status pertence ao funil comercial.
func statusValido(status string) bool {
	switch status {
	case entity.OportunidadeAberta, entity.OportunidadeGanha, entity.OportunidadePerdida, entity.OportunidadeSuspensa:
		return true
	}
	return false
}

func toOportunidadeResponse(op *entity.Oportunidade) *dto.OportunidadeResponse {
	if op == nil {
		return nil
	}
	return &dto.OportunidadeResponse{
		ID:            op.ID,
		ClienteID:     op.ClienteID,
		Titulo:        op.Titulo,
		ValorEstimado: op.ValorEstimado,
		Status:        op.Status,
		CreatedAt:     op.CreatedAt,
		UpdatedAt:     op.UpdatedAt,
	}
}
