package usecase

import (
	"github.com/jhoicas/arsenal-api/internal/application/dto"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
	"github.com/jhoicas/arsenal-api/internal/domain/repository"
)

// UserUseCase consultas de administración de usuarios (solo admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserItem(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID (nil si no existe).
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	item := toUserItem(u)
	return &item, nil
}

func toUserItem(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		BaseID:    u.BaseID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
