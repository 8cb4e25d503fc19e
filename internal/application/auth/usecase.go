package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
	"github.com/jhoicas/hamster-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación: login con username/password y emisión de JWT.
// Las altas de usuario viven en la CLI usermgr.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt y retorna token +
// usuario. Username inexistente y password incorrecto colapsan en
// ErrUnauthorized para no filtrar qué cuentas existen.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponseFrom(user),
	}, nil
}
