package comercial

import (
	"time"

	"github.com/google/uuid"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// Formato aceito para data_solicitacao nos payloads.
const dataSolicitacaoLayout = "2006-01-02"

// AmostraUseCase casos de uso de amostras físicas.
type AmostraUseCase struct {
	repo             repository.AmostraRepository
	oportunidadeRepo repository.OportunidadeRepository
}

// NewAmostraUseCase constrói o caso de uso.
func NewAmostraUseCase(repo repository.AmostraRepository, oportunidadeRepo repository.OportunidadeRepository) *AmostraUseCase {
	return &AmostraUseCase{repo: repo, oportunidadeRepo: oportunidadeRepo}
}

// Create cria uma amostra. oportunidade_id é opcional; quando presente precisa
// referenciar uma oportunidade existente (domain.ErrNotFound caso contrário).
func (uc *AmostraUseCase) Create(in dto.CreateAmostraRequest) (*dto.AmostraResponse, error) {
	if in.Descricao == "" || in.Status == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OportunidadeID != nil && *in.OportunidadeID != "" {
		op, err := uc.oportunidadeRepo.GetByID(*in.OportunidadeID)
		if err != nil {
			return nil, err
		}
		if op == nil {
			return nil, domain.ErrNotFound
		}
	}
	var dataSolicitacao *time.Time
	if in.DataSolicitacao != "" {
		d, err := time.Parse(dataSolicitacaoLayout, in.DataSolicitacao)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dataSolicitacao = &d
	}
	now := time.Now()
	amostra := &entity.Amostra{
		ID:              uuid.New().String(),
		OportunidadeID:  normalizeOptionalID(in.OportunidadeID),
		Descricao:       in.Descricao,
		DataSolicitacao: dataSolicitacao,
		Status:          in.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(amostra); err != nil {
		return nil, err
	}
	return toAmostraResponse(amostra), nil
}

// GetByID obtém uma amostra por ID. Devolve nil se não existir.
func (uc *AmostraUseCase) GetByID(id string) (*dto.AmostraResponse, error) {
	amostra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if amostra == nil {
		return nil, nil
	}
	return toAmostraResponse(amostra), nil
}

// List lista amostras com filtros opcionais de oportunidade e status.
func (uc *AmostraUseCase) List(oportunidadeID, status string, limit, offset int) ([]*dto.AmostraResponse, error) {
	list, err := uc.repo.List(oportunidadeID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AmostraResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAmostraResponse(a))
	}
	return out, nil
}

// Update aplica uma atualização parcial. Devolve nil, nil se o ID não existir.
func (uc *AmostraUseCase) Update(id string, in dto.UpdateAmostraRequest) (*dto.AmostraResponse, error) {
	amostra, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if amostra == nil {
		return nil, nil
	}
	if in.Descricao != nil {
		if *in.Descricao == "" {
			return nil, domain.ErrInvalidInput
		}
		amostra.Descricao = *in.Descricao
	}
	if in.DataSolicitacao != nil {
		if *in.DataSolicitacao == "" {
			amostra.DataSolicitacao = nil
		} else {
			d, err := time.Parse(dataSolicitacaoLayout, *in.DataSolicitacao)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			amostra.DataSolicitacao = &d
		}
	}
	if in.Status != nil {
		if *in.Status == "" {
			return nil, domain.ErrInvalidInput
		}
		amostra.Status = *in.Status
	}
	amostra.UpdatedAt = time.Now()
	if err := uc.repo.Update(amostra); err != nil {
		return nil, err
	}
	return toAmostraResponse(amostra), nil
}

// Delete remove a amostra. Devolve domain.ErrNotFound se não existir.
func (uc *AmostraUseCase) Delete(id string) error {
	amostra, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if amostra == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// normalizeOptionalID trata "" como ausência de vínculo.
func normalizeOptionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

func toAmostraResponse(a *entity.Amostra) *dto.AmostraResponse {
	if a == nil {
		return nil
	}
	return &dto.AmostraResponse{
		ID:              a.ID,
		OportunidadeID:  a.OportunidadeID,
		Descricao:       a.Descricao,
		DataSolicitacao: a.DataSolicitacao,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
