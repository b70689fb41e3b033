package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/auth"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	pkgjwt "github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func buildAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste-auth",
		ExpMinutes: 30,
		Issuer:     "vrtd-inventory-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheiaSenhaENuncaDevolveHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "chefe@bar.com",
		Password: "senha-bem-longa",
		Name:     "Chefe",
		Role:     "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "chefe@bar.com", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "active", user.Status)

	stored := repo.byEmail["chefe@bar.com"]
	require.NotNil(t, stored, "o usuário deve ser persistido")
	assert.NotEqual(t, "senha-bem-longa", stored.PasswordHash,
		"a senha nunca deve ser persistida em claro")
}

func TestRegisterUser_RoleVazioViraAtendente(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "garcom@bar.com",
		Password: "senha-bem-longa",
	})
	require.NoError(t, err)
	assert.Equal(t, "atendente", user.Role)
}

func TestRegisterUser_Validacoes(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "", Password: "senha-bem-longa"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vazio deve ser rejeitado")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "senha com menos de 8 caracteres deve ser rejeitada")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.com", Password: "senha-bem-longa", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "role desconhecido deve ser rejeitado")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@bar.com", Password: "senha-bem-longa"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "x@bar.com", Password: "outra-senha-longa"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevolveTokenComClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)

	registered, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "estoque@bar.com",
		Password: "senha-bem-longa",
		Role:     "estoquista",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "estoque@bar.com", Password: "senha-bem-longa"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	userID, role, err := pkgjwt.Parse("segredo-de-teste-auth", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "estoquista", role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "x@bar.com", Password: "senha-bem-longa"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "x@bar.com", Password: "senha-errada!"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@bar.com", Password: "tanto-faz-123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInativo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ex@bar.com", Password: "senha-bem-longa"})
	require.NoError(t, err)

	repo.byEmail["ex@bar.com"].Status = "disabled"

	_, err = uc.Login(dto.LoginRequest{Email: "ex@bar.com", Password: "senha-bem-longa"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
