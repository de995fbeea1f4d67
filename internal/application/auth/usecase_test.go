package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixaforte/comercial-api/internal/application/auth"
	"github.com/caixaforte/comercial-api/internal/application/dto"
	"github.com/caixaforte/comercial-api/internal/domain"
	"github.com/caixaforte/comercial-api/internal/domain/entity"
	pkgjwt "github.com/caixaforte/comercial-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	byID map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{byID: map[string]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func buildAuthUC() (*auth.AuthUseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "comercial-api-test",
	})
	return uc, repo
}

func TestAuth_Register_HasheiaSenhaEDefinePerfilPadrao(t *testing.T) {
	uc, repo := buildAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "vendedor@caixaforte.com.br",
		Senha: "senha-secreta",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.PerfilVendedor, out.Perfil, "perfil padrão deve ser vendedor")

	saved, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, "senha-secreta", saved.SenhaHash, "a senha nunca é gravada em claro")
	assert.NotEmpty(t, saved.SenhaHash)
}

func TestAuth_Register_EmailDuplicado_RetornaErro(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Senha: "123456"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Senha: "outra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_Login_DevolveTokenValido(t *testing.T) {
	uc, _ := buildAuthUC()

	reg, err := uc.RegisterUser(dto.RegisterRequest{
		Email:  "admin@caixaforte.com.br",
		Senha:  "senha-admin",
		Perfil: entity.PerfilAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@caixaforte.com.br", Senha: "senha-admin"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.Usuario.ID)

	userID, perfil, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.PerfilAdmin, perfil)
}

func TestAuth_Login_SenhaErrada_RetornaUnauthorized(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Senha: "correta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_Login_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nao@existe.com", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
