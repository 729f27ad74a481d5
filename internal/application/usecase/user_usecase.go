package usecase

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// UserUseCase lectura de usuarios de la empresa y de grupos.
type UserUseCase struct {
	repo      repository.UserRepository
	groupRepo repository.GroupRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, groupRepo repository.GroupRepository) *UserUseCase {
	return &UserUseCase{repo: repo, groupRepo: groupRepo}
}

// GetByID obtiene un usuario de la empresa por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista los usuarios de la empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListGroups lista los grupos de usuarios (solo lectura).
func (uc *UserUseCase) ListGroups(ctx context.Context, limit, offset int) (*dto.GroupListResponse, error) {
	list, err := uc.groupRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, dto.GroupResponse{ID: g.ID, Name: g.Name})
	}
	return &dto.GroupListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// GetGroup obtiene un grupo por ID.
func (uc *UserUseCase) GetGroup(ctx context.Context, id string) (*dto.GroupResponse, error) {
	g, err := uc.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return &dto.GroupResponse{ID: g.ID, Name: g.Name}, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}
