package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// UserUseCase consultas y edición de perfil. Las altas y el cambio de
// password viven en la CLI usermgr, no en la API.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista los usuarios en su vista pública.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserResponseFrom(u))
	}
	return out, nil
}

// GetByID obtiene el detalle de un usuario.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserDetailResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.UserDetailResponseFrom(u)
	return &resp, nil
}

// Update actualización parcial del perfil (displayName, email, avatar,
// preferences). Username y password no se tocan por este camino.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserDetailResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.DisplayName != nil {
		if *in.DisplayName == "" {
			return nil, domain.ErrInvalidInput
		}
		u.DisplayName = *in.DisplayName
	}
	if in.Email != nil {
		if *in.Email == "" {
			u.Email = nil
		} else {
			u.Email = in.Email
		}
	}
	if in.Avatar != nil {
		if *in.Avatar == "" {
			u.Avatar = nil
		} else {
			u.Avatar = in.Avatar
		}
	}
	if in.Preferences != nil {
		u.Preferences = in.Preferences
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.UserDetailResponseFrom(u)
	return &resp, nil
}
