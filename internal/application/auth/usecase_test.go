package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hamster-api/internal/application/auth"
	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/pkg/jwt"
)

const testSecret = "secreto-de-test-suficientemente-largo"

type fakeUsers struct {
	byUsername map[string]*entity.User
}

func (r *fakeUsers) Create(context.Context, *entity.User) error { panic("no usado") }
func (r *fakeUsers) GetByID(context.Context, string) (*entity.User, error) {
	panic("no usado")
}
func (r *fakeUsers) Update(context.Context, *entity.User) error { panic("no usado") }
func (r *fakeUsers) List(context.Context) ([]*entity.User, error) {
	panic("no usado")
}

func (r *fakeUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newAuthUC(t *testing.T, password string) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{byUsername: map[string]*entity.User{
		"ana": {ID: "user-1", Username: "ana", DisplayName: "Ana", PasswordHash: string(hash)},
	}}
	return auth.NewUseCase(users, auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "hamster-test"})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthUC(t, "password-correcto")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "password-correcto"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, "ana", out.User.Username)

	// El token emitido es parseable y lleva al usuario autenticado.
	userID, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(t, "password-correcto")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente produce el mismo error que password incorrecto: la API
// no revela qué cuentas existen.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t, "password-correcto")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
