package repository

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// ProblemCategoryTypeRepository persistencia de tipos de categoría de problema.
type ProblemCategoryTypeRepository interface {
	Create(ctx context.Context, t *entity.ProblemCategoryType) error
	GetByID(ctx context.Context, id string) (*entity.ProblemCategoryType, error)
	Update(ctx context.Context, t *entity.ProblemCategoryType) error
	List(ctx context.Context, limit, offset int) ([]*entity.ProblemCategoryType, error)
	Delete(ctx context.Context, id string) error
}

// ProblemCategoryRepository persistencia de categorías de problema.
type ProblemCategoryRepository interface {
	Create(ctx context.Context, c *entity.ProblemCategory) error
	GetByID(ctx context.Context, id string) (*entity.ProblemCategory, error)
	Update(ctx context.Context, c *entity.ProblemCategory) error
	List(ctx context.Context, limit, offset int) ([]*entity.ProblemCategory, error)
	Delete(ctx context.Context, id string) error
}

// BreakdownLogRepository persistencia de paradas. ListByCompany ordena por breakdown_start descendente.
type BreakdownLogRepository interface {
	Create(ctx context.Context, b *entity.BreakdownLog) error
	GetByID(ctx context.Context, id string) (*entity.BreakdownLog, error)
	Update(ctx context.Context, b *entity.BreakdownLog) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.BreakdownLog, error)
	Delete(ctx context.Context, id string) error
}
