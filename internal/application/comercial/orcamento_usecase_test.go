package comercial_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixaforte/comercial-api/internal/application/comercial"
	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	"github.com/caixaforte/comercial-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrcamentoRepo struct {
	orcamentos map[string]*entity.Orcamento
	itens      map[string][]*entity.OrcamentoItem

	deletedOrcamentos map[string]bool
	deletedItens      map[string]bool

	failOnCreateItem bool
}

func newFakeOrcamentoRepo() *fakeOrcamentoRepo {
	return &fakeOrcamentoRepo{
		orcamentos:        map[string]*entity.Orcamento{},
		itens:             map[string][]*entity.OrcamentoItem{},
		deletedOrcamentos: map[string]bool{},
		deletedItens:      map[string]bool{},
	}
}

func (r *fakeOrcamentoRepo) Create(o *entity.Orcamento) error {
	cp := *o
	r.orcamentos[o.ID] = &cp
	return nil
}

func (r *fakeOrcamentoRepo) CreateItem(item *entity.OrcamentoItem) error {
	if r.failOnCreateItem {
		return errors.New("falha simulada na gravação do item")
	}
	cp := *item
	r.itens[item.OrcamentoID] = append(r.itens[item.OrcamentoID], &cp)
	return nil
}

func (r *fakeOrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	o, ok := r.orcamentos[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrcamentoRepo) ListItens(orcamentoID string) ([]*entity.OrcamentoItem, error) {
	return r.itens[orcamentoID], nil
}

func (r *fakeOrcamentoRepo) List(empresaSolicitanteID string, limit, offset int) ([]*entity.Orcamento, error) {
	var out []*entity.Orcamento
	for _, o := range r.orcamentos {
		if empresaSolicitanteID != "" && o.EmpresaSolicitanteID != empresaSolicitanteID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrcamentoRepo) Delete(id string) error {
	delete(r.orcamentos, id)
	r.deletedOrcamentos[id] = true
	return nil
}

func (r *fakeOrcamentoRepo) DeleteItens(orcamentoID string) error {
	delete(r.itens, orcamentoID)
	r.deletedItens[orcamentoID] = true
	return nil
}

// fakeTxRunner executa o callback contra um repositório de staging e só aplica
// as escritas no repositório final se o callback não devolver erro, imitando
// commit/rollback.
type fakeTxRunner struct {
	repo *fakeOrcamentoRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(orcamentoRepo repository.OrcamentoRepository) error) error {
	staging := newFakeOrcamentoRepo()
	staging.failOnCreateItem = tx.repo.failOnCreateItem
	if err := fn(staging); err != nil {
		return err
	}
	for id, o := range staging.orcamentos {
		tx.repo.orcamentos[id] = o
	}
	for id, itens := range staging.itens {
		tx.repo.itens[id] = append(tx.repo.itens[id], itens...)
	}
	for id := range staging.deletedOrcamentos {
		delete(tx.repo.orcamentos, id)
	}
	for id := range staging.deletedItens {
		delete(tx.repo.itens, id)
	}
	return nil
}

type fakeEmpresaRepo struct {
	byID map[string]*entity.EmpresaSolicitante
}

func (r *fakeEmpresaRepo) Create(e *entity.EmpresaSolicitante) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmpresaRepo) GetByID(id string) (*entity.EmpresaSolicitante, error) {
	return r.byID[id], nil
}

func (r *fakeEmpresaRepo) GetByCNPJ(cnpj string) (*entity.EmpresaSolicitante, error) {
	for _, e := range r.byID {
		if e.CNPJ == cnpj {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmpresaRepo) List(q string, limit, offset int) ([]*entity.EmpresaSolicitante, error) {
	return nil, nil
}

func (r *fakeEmpresaRepo) Update(e *entity.EmpresaSolicitante) error { return nil }
func (r *fakeEmpresaRepo) Delete(id string) error                    { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const empresaID = "00000000-0000-0000-0000-0000000000aa"

func buildOrcamentoUC() (*comercial.OrcamentoUseCase, *fakeOrcamentoRepo) {
	repo := newFakeOrcamentoRepo()
	empresas := &fakeEmpresaRepo{byID: map[string]*entity.EmpresaSolicitante{
		empresaID: {ID: empresaID, Nome: "Caixas São Paulo Ltda", CreatedAt: time.Now()},
	}}
	uc := comercial.NewOrcamentoUseCase(&fakeTxRunner{repo: repo}, repo, empresas)
	return uc, repo
}

func orcamentoValido() dto.CreateOrcamentoRequest {
	return dto.CreateOrcamentoRequest{
		EmpresaSolicitanteID: empresaID,
		CondicaoPagamento:    "28 dias",
		PrecoBrutoTotal:      decimal.RequireFromString("1250.00"),
		PrecoFinalTotal:      decimal.RequireFromString("1312.50"),
		Itens: []dto.CreateOrcamentoItemRequest{
			{
				Referencia:    "CX-0001",
				EstiloCaixa:   "maleta",
				Quantidade:    500,
				ValorUnitario: decimal.RequireFromString("2.50"),
				ValorTotal:    decimal.RequireFromString("1250.00"),
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOrcamento_Create_GravaCabecalhoEItens(t *testing.T) {
	uc, repo := buildOrcamentoUC()

	out, err := uc.Create(context.Background(), orcamentoValido())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	require.Len(t, out.Itens, 1)
	assert.Equal(t, out.ID, out.Itens[0].OrcamentoID)
	assert.Equal(t, "CX-0001", out.Itens[0].Referencia)

	// Persistência observável pelo repositório
	saved, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	itens, err := repo.ListItens(out.ID)
	require.NoError(t, err)
	assert.Len(t, itens, 1)
}

func TestOrcamento_Create_TotaisGravadosComoInformados(t *testing.T) {
	uc, _ := buildOrcamentoUC()

	// Totais intencionalmente inconsistentes com os itens: o servidor não recalcula.
	in := orcamentoValido()
	in.PrecoBrutoTotal = decimal.RequireFromString("999.99")
	in.PrecoFinalTotal = decimal.RequireFromString("0.01")

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, out.PrecoBrutoTotal.Equal(decimal.RequireFromString("999.99")))
	assert.True(t, out.PrecoFinalTotal.Equal(decimal.RequireFromString("0.01")))
}

func TestOrcamento_Create_EmpresaInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := buildOrcamentoUC()

	in := orcamentoValido()
	in.EmpresaSolicitanteID = "id-inexistente"

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrcamento_Create_ItemSemReferencia_RetornaInvalidInput(t *testing.T) {
	uc, _ := buildOrcamentoUC()

	in := orcamentoValido()
	in.Itens[0].Referencia = ""

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrcamento_Create_FalhaNoItem_NaoGravaCabecalho(t *testing.T) {
	uc, repo := buildOrcamentoUC()
	repo.failOnCreateItem = true

	_, err := uc.Create(context.Background(), orcamentoValido())
	require.Error(t, err)

	// Rollback: nada deve ter sido aplicado
	list, err := repo.List("", 100, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "a falha em um item deve descartar o cabeçalho")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestOrcamento_GetByID_Inexistente_DevolveNil(t *testing.T) {
	uc, _ := buildOrcamentoUC()

	out, err := uc.GetByID("id-inexistente")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestOrcamento_Delete_RemoveCabecalhoEItens(t *testing.T) {
	uc, repo := buildOrcamentoUC()

	out, err := uc.Create(context.Background(), orcamentoValido())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	saved, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, saved)
	itens, err := repo.ListItens(out.ID)
	require.NoError(t, err)
	assert.Empty(t, itens)
}

func TestOrcamento_Delete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := buildOrcamentoUC()

	err := uc.Delete(context.Background(), "id-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
