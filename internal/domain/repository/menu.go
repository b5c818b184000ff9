package repository

import (
	"context"

	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
)

// MenuRepository describes persistence operations for the catalog.
type MenuRepository interface {
	List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)
	Search(ctx context.Context, term string) ([]model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	ToggleAvailability(ctx context.Context, id int64) (*model.MenuItem, error)
}
