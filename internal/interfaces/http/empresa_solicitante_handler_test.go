package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/application/usecase"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	apphttp "github.com/caixaforte/comercial-api/internal/interfaces/http"
	"github.com/caixaforte/comercial-api/pkg/textutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake em memória do repositório
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmpresaRepo struct {
	mu       sync.Mutex
	byID     map[string]*entity.EmpresaSolicitante
	ordering []string

	conflictOnDelete bool
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{byID: map[string]*entity.EmpresaSolicitante{}}
}

func (r *fakeEmpresaRepo) Create(e *entity.EmpresaSolicitante) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.byID[e.ID] = &cp
	r.ordering = append(r.ordering, e.ID)
	return nil
}

func (r *fakeEmpresaRepo) GetByID(id string) (*entity.EmpresaSolicitante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmpresaRepo) GetByCNPJ(cnpj string) (*entity.EmpresaSolicitante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.CNPJ == cnpj {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

// List filtra por nome normalizado antes de aplicar limit/offset, como o
// repositório PostgreSQL faz no SQL.
func (r *fakeEmpresaRepo) List(q string, limit, offset int) ([]*entity.EmpresaSolicitante, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matching []*entity.EmpresaSolicitante
	for _, id := range r.ordering {
		e, ok := r.byID[id]
		if !ok {
			continue
		}
		if q != "" && !textutil.ContainsFold(e.Nome, q) {
			continue
		}
		cp := *e
		matching = append(matching, &cp)
	}
	var out []*entity.EmpresaSolicitante
	for i := offset; i < len(matching) && len(out) < limit; i++ {
		out = append(out, matching[i])
	}
	return out, nil
}

func (r *fakeEmpresaRepo) Update(e *entity.EmpresaSolicitante) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEmpresaRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflictOnDelete {
		return domain.ErrConflict
	}
	delete(r.byID, id)
	for i, v := range r.ordering {
		if v == id {
			r.ordering = append(r.ordering[:i], r.ordering[i+1:]...)
			break
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

func buildEmpresaApp() (*fiber.App, *fakeEmpresaRepo) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaSolicitanteUseCase(repo)
	handler := apphttp.NewEmpresaSolicitanteHandler(uc)

	app := fiber.New()
	g := app.Group("/empresasolicitante")
	g.Post("/", handler.Create)
	g.Get("/", handler.List)
	g.Get("/:id", handler.GetByID)
	g.Put("/:id", handler.Update)
	g.Delete("/:id", handler.Delete)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEmpresa(t *testing.T, resp *http.Response) dto.EmpresaSolicitanteResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.EmpresaSolicitanteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func criaEmpresa(t *testing.T, app *fiber.App, nome, cnpj string) dto.EmpresaSolicitanteResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/empresasolicitante/", dto.CreateEmpresaSolicitanteRequest{
		Nome: nome,
		CNPJ: cnpj,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeEmpresa(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresaSolicitante_Create_Retorna200ComID(t *testing.T) {
	app, _ := buildEmpresaApp()

	out := criaEmpresa(t, app, "Caixas São Paulo Ltda", "12.345.678/0001-90")

	assert.NotEmpty(t, out.ID, "o ID deve ser gerado pelo servidor")
	assert.Equal(t, "Caixas São Paulo Ltda", out.Nome)
	assert.Equal(t, "12.345.678/0001-90", out.CNPJ)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestEmpresaSolicitante_Create_NomeVazio_Retorna400(t *testing.T) {
	app, _ := buildEmpresaApp()

	resp := doJSON(t, app, http.MethodPost, "/empresasolicitante/", dto.CreateEmpresaSolicitanteRequest{
		Nome: "",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmpresaSolicitante_Create_CNPJDuplicado_Retorna409(t *testing.T) {
	app, _ := buildEmpresaApp()
	criaEmpresa(t, app, "Empresa A", "11.111.111/0001-11")

	resp := doJSON(t, app, http.MethodPost, "/empresasolicitante/", dto.CreateEmpresaSolicitanteRequest{
		Nome: "Empresa B",
		CNPJ: "11.111.111/0001-11",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"duas empresas não podem ter o mesmo CNPJ")

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DUPLICATE", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresaSolicitante_GetByID_Existente(t *testing.T) {
	app, _ := buildEmpresaApp()
	criada := criaEmpresa(t, app, "Empresa X", "22.222.222/0001-22")

	resp := doJSON(t, app, http.MethodGet, "/empresasolicitante/"+criada.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeEmpresa(t, resp)
	assert.Equal(t, criada.ID, out.ID)
	assert.Equal(t, "Empresa X", out.Nome)
}

func TestEmpresaSolicitante_GetByID_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildEmpresaApp()

	resp := doJSON(t, app, http.MethodGet, "/empresasolicitante/id-inexistente", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "empresa solicitante não encontrada", body.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresaSolicitante_Update_ParcialPreservaCamposOmitidos(t *testing.T) {
	app, _ := buildEmpresaApp()
	criada := criaEmpresa(t, app, "Nome Original", "33.333.333/0001-33")

	novoTelefone := "(11) 99999-0000"
	resp := doJSON(t, app, http.MethodPut, "/empresasolicitante/"+criada.ID, dto.UpdateEmpresaSolicitanteRequest{
		Telefone: &novoTelefone,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeEmpresa(t, resp)
	assert.Equal(t, novoTelefone, out.Telefone, "o campo enviado deve mudar")
	assert.Equal(t, "Nome Original", out.Nome, "campos omitidos mantêm o valor anterior")
	assert.Equal(t, "33.333.333/0001-33", out.CNPJ, "campos omitidos mantêm o valor anterior")
}

func TestEmpresaSolicitante_Update_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildEmpresaApp()

	nome := "Qualquer"
	resp := doJSON(t, app, http.MethodPut, "/empresasolicitante/id-inexistente", dto.UpdateEmpresaSolicitanteRequest{
		Nome: &nome,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmpresaSolicitante_Update_CNPJDuplicado_Retorna409(t *testing.T) {
	app, _ := buildEmpresaApp()
	criaEmpresa(t, app, "Empresa A", "44.444.444/0001-44")
	empresaB := criaEmpresa(t, app, "Empresa B", "55.555.555/0001-55")

	cnpjDeA := "44.444.444/0001-44"
	resp := doJSON(t, app, http.MethodPut, "/empresasolicitante/"+empresaB.ID, dto.UpdateEmpresaSolicitanteRequest{
		CNPJ: &cnpjDeA,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresaSolicitante_Delete_DevolveOKELeituraPosterior404(t *testing.T) {
	app, _ := buildEmpresaApp()
	criada := criaEmpresa(t, app, "Para Remover", "66.666.666/0001-66")

	resp := doJSON(t, app, http.MethodDelete, "/empresasolicitante/"+criada.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ok dto.OKResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	resp.Body.Close()
	assert.True(t, ok.OK, `a resposta do delete deve ser {"ok": true}`)

	// Leitura posterior do mesmo ID deve falhar
	resp2 := doJSON(t, app, http.MethodGet, "/empresasolicitante/"+criada.ID, nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestEmpresaSolicitante_Delete_Inexistente_Retorna404(t *testing.T) {
	app, _ := buildEmpresaApp()

	resp := doJSON(t, app, http.MethodDelete, "/empresasolicitante/id-inexistente", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmpresaSolicitante_Delete_ComOrcamentosVinculados_Retorna409(t *testing.T) {
	app, repo := buildEmpresaApp()
	criada := criaEmpresa(t, app, "Com Orçamentos", "99.999.999/0001-99")
	repo.conflictOnDelete = true

	resp := doJSON(t, app, http.MethodDelete, "/empresasolicitante/"+criada.ID, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"empresa com orçamentos dependentes não pode ser removida")

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CONFLICT", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpresaSolicitante_List_RefleteRegistros(t *testing.T) {
	app, _ := buildEmpresaApp()
	for i := 1; i <= 3; i++ {
		criaEmpresa(t, app, fmt.Sprintf("Empresa %d", i), fmt.Sprintf("00.000.000/000%d-00", i))
	}

	resp := doJSON(t, app, http.MethodGet, "/empresasolicitante/", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.EmpresaSolicitanteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 3)
}

func TestEmpresaSolicitante_List_FiltroPorNomeIgnoraAcentos(t *testing.T) {
	app, _ := buildEmpresaApp()
	criaEmpresa(t, app, "Caixas São Paulo", "77.777.777/0001-77")
	criaEmpresa(t, app, "Embalagens Rio", "88.888.888/0001-88")

	resp := doJSON(t, app, http.MethodGet, "/empresasolicitante/?q=sao", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.EmpresaSolicitanteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1, `"sao" deve encontrar "São"`)
	assert.Equal(t, "Caixas São Paulo", list[0].Nome)
}

func TestEmpresaSolicitante_List_FiltroEncontraAlemDaPrimeiraPagina(t *testing.T) {
	app, _ := buildEmpresaApp()

	// A única empresa que casa com o filtro vem depois das 20 primeiras posições.
	for i := 1; i <= 25; i++ {
		criaEmpresa(t, app, fmt.Sprintf("Embalagens %02d", i), fmt.Sprintf("20.000.000/00%02d-00", i))
	}
	criaEmpresa(t, app, "Zebra São Carlos", "21.000.000/0001-00")

	resp := doJSON(t, app, http.MethodGet, "/empresasolicitante/?q=sao", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.EmpresaSolicitanteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1, "o filtro deve ser aplicado antes da paginação")
	assert.Equal(t, "Zebra São Carlos", list[0].Nome)
}

func TestEmpresaSolicitante_List_Paginacao(t *testing.T) {
	app, _ := buildEmpresaApp()
	for i := 1; i <= 5; i++ {
		criaEmpresa(t, app, fmt.Sprintf("Empresa %d", i), fmt.Sprintf("10.000.000/000%d-00", i))
	}

	resp := doJSON(t, app, http.MethodGet, "/empresasolicitante/?limit=2&offset=2", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.EmpresaSolicitanteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}
