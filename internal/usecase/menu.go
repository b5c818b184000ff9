package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/repository"
)

// MenuUseCase encapsulates catalog management logic.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// CreateMenuItemInput carries a validated create request. A nil IsAvailable
// defaults to true.
type CreateMenuItemInput struct {
	Name            string
	Description     string
	Category        model.MenuCategory
	Price           decimal.Decimal
	Ingredients     []string
	IsAvailable     *bool
	PreparationTime *int
	ImageURL        string
}

// List returns catalog entries matching the filter, newest first.
func (u *MenuUseCase) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	return u.menu.List(ctx, filter)
}

// Search matches the term against item names and ingredients, ordered by
// name. A blank term short-circuits to an empty result instead of matching
// everything.
func (u *MenuUseCase) Search(ctx context.Context, term string) ([]model.MenuItem, error) {
	if strings.TrimSpace(term) == "" {
		return []model.MenuItem{}, nil
	}
	return u.menu.Search(ctx, term)
}

// Get fetches one menu item.
func (u *MenuUseCase) Get(ctx context.Context, id int64) (*model.MenuItem, error) {
	return u.menu.GetByID(ctx, id)
}

// Create validates and persists a new menu item.
func (u *MenuUseCase) Create(ctx context.Context, in CreateMenuItemInput) (*model.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", domainErrors.ErrValidation, in.Category)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}

	item := &model.MenuItem{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Price:           in.Price,
		Ingredients:     in.Ingredients,
		IsAvailable:     in.IsAvailable == nil || *in.IsAvailable,
		PreparationTime: in.PreparationTime,
		ImageURL:        in.ImageURL,
	}
	if err := u.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies a partial update. Absent fields keep their stored values;
// updated_at always refreshes.
func (u *MenuUseCase) Update(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", domainErrors.ErrValidation)
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", domainErrors.ErrValidation, *patch.Category)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}
	return u.menu.Update(ctx, id, patch)
}

// Delete removes a menu item for good. Historical order lines keep their
// snapshot of it.
func (u *MenuUseCase) Delete(ctx context.Context, id int64) error {
	return u.menu.Delete(ctx, id)
}

// ToggleAvailability flips the current availability flag.
func (u *MenuUseCase) ToggleAvailability(ctx context.Context, id int64) (*model.MenuItem, error) {
	return u.menu.ToggleAvailability(ctx, id)
}
