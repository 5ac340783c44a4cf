package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/flatfile"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

const testSecret = "secreto-de-test-no-usar"

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	repo, err := flatfile.NewUserRepository(filepath.Join(t.TempDir(), "users.txt"), logger.Nop())
	require.NoError(t, err)
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "tienda-test",
	})
}

func aliceRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "alice_w",
		Password: "pass12",
		Email:    "alice@x.com",
		Mobile:   "0412345678",
	}
}

// Registro válido seguido de un reintento con el mismo nombre: el
// segundo debe fallar por duplicado aunque el resto de los datos cambie.
func TestRegisterCustomer_DuplicadoRechazado(t *testing.T) {
	uc := newAuthUC(t)

	first, err := uc.RegisterCustomer(aliceRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "customer", first.Role)

	again := aliceRequest()
	again.Email = "otra@y.org"
	again.Mobile = "0311111111"
	_, err = uc.RegisterCustomer(again)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterCustomer_ValidaCadaCampo(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"usuario corto", func(r *dto.RegisterRequest) { r.Username = "abcd" }},
		{"usuario con guion", func(r *dto.RegisterRequest) { r.Username = "ab-cd" }},
		{"clave sin dígito", func(r *dto.RegisterRequest) { r.Password = "abcde" }},
		{"email sin arroba", func(r *dto.RegisterRequest) { r.Email = "alicex.com" }},
		{"móvil con prefijo malo", func(r *dto.RegisterRequest) { r.Mobile = "0512345678" }},
		{"móvil de 9 dígitos", func(r *dto.RegisterRequest) { r.Mobile = "041234567" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newAuthUC(t)
			req := aliceRequest()
			tc.mutate(&req)
			_, err := uc.RegisterCustomer(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			// Nada quedó a medias: el nombre sigue libre para un registro válido.
			_, err = uc.RegisterCustomer(aliceRequest())
			assert.NoError(t, err)
		})
	}
}

func TestRegisterCustomer_RecortaEspacios(t *testing.T) {
	uc := newAuthUC(t)
	req := dto.RegisterRequest{
		Username: "  alice_w  ",
		Password: " pass12 ",
		Email:    " alice@x.com ",
		Mobile:   " 0412345678 ",
	}
	out, err := uc.RegisterCustomer(req)
	require.NoError(t, err)
	assert.Equal(t, "alice_w", out.Username)
}

// Login con las credenciales del registro devuelve el mismo cliente;
// una clave equivocada devuelve no-encontrado sin distinguir el motivo.
func TestLogin_DespuesDelRegistro(t *testing.T) {
	uc := newAuthUC(t)

	registered, err := uc.RegisterCustomer(aliceRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "alice_w", Password: "pass12"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID, "el login devuelve el cliente registrado")
	assert.Equal(t, "customer", out.User.Role)
	assert.Equal(t, "alice@x.com", out.User.Email)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(dto.LoginRequest{Username: "alice_w", Password: "wrong1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie_aqui", Password: "pass12"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_AdminDevuelveRolAdmin(t *testing.T) {
	uc := newAuthUC(t)
	require.NoError(t, uc.EnsureAdmin("admin_root", "admin123"))

	out, err := uc.Login(dto.LoginRequest{Username: "admin_root", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Role)
	assert.Empty(t, out.User.Email, "un admin no tiene campos de contacto")
}

func TestEnsureAdmin_EsIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	repo, err := flatfile.NewUserRepository(path, logger.Nop())
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "t"})

	require.NoError(t, uc.EnsureAdmin("admin_root", "admin123"))
	require.NoError(t, uc.EnsureAdmin("admin_root", "admin123"))

	page, err := repo.ListCustomers(1)
	require.NoError(t, err)
	assert.Empty(t, page.Items, "el admin no aparece como cliente")

	got, err := repo.FindByUsername("admin_root")
	require.NoError(t, err)
	require.NotNil(t, got)
}
