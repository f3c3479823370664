package app

import (
	"context"
	"fmt"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/ports/secondary"
)

// CategoryServiceImpl implements the CategoryService interface.
type CategoryServiceImpl struct {
	categoryRepo secondary.CategoryRepository
	categories   *OrdinalManager[secondary.CategoryRecord, ordinal.Board]
	tags         *OrdinalManager[secondary.CategoryTagRecord, ordinal.ParentID]
	tx           secondary.Transactor
}

// NewCategoryService creates a new CategoryService with injected dependencies.
func NewCategoryService(
	categoryRepo secondary.CategoryRepository,
	categories *OrdinalManager[secondary.CategoryRecord, ordinal.Board],
	tags *OrdinalManager[secondary.CategoryTagRecord, ordinal.ParentID],
	tx secondary.Transactor,
) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		categories:   categories,
		tags:         tags,
		tx:           tx,
	}
}

// CreateCategory creates a category.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, req primary.CreateCategoryRequest) (*primary.Category, error) {
	if err := validateName("category", req.Name); err != nil {
		return nil, err
	}

	record := secondary.CategoryRecord{Name: req.Name}

	var (
		id  int64
		err error
	)
	if req.Ordinal == nil {
		id, err = s.categories.Append(ctx, ordinal.Board{}, record)
	} else {
		id, err = s.categories.Insert(ctx, ordinal.Board{}, *req.Ordinal, record)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	created, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created category: %w", err)
	}
	return categoryToPrimary(created), nil
}

// RenameCategory changes a category's name.
func (s *CategoryServiceImpl) RenameCategory(ctx context.Context, categoryID int64, name string) error {
	if err := validateName("category", name); err != nil {
		return err
	}
	return s.categoryRepo.Rename(ctx, categoryID, name)
}

// MoveCategory moves a category to a new position.
func (s *CategoryServiceImpl) MoveCategory(ctx context.Context, categoryID int64, ord int) error {
	return s.categories.MoveWithin(ctx, categoryID, ord)
}

// DeleteCategory makes the category's tags uncategorized, appended after the
// existing uncategorized tags, then deletes the category.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.categories.Position(ctx, categoryID); err != nil {
			return err
		}
		if _, err := s.tags.Rebase(ctx, ordinal.Parent(categoryID), ordinal.NoParent); err != nil {
			return fmt.Errorf("failed to uncategorize tags: %w", err)
		}
		return s.categories.Delete(ctx, categoryID)
	})
}

// ListCategories retrieves all categories in order.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*primary.Category, error) {
	records, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*primary.Category, len(records))
	for i, r := range records {
		categories[i] = categoryToPrimary(r)
	}
	return categories, nil
}

func categoryToPrimary(r *secondary.CategoryRecord) *primary.Category {
	return &primary.Category{
		ID:        r.ID,
		Name:      r.Name,
		Ordinal:   r.Ordinal,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure CategoryServiceImpl implements the interface.
var _ primary.CategoryService = (*CategoryServiceImpl)(nil)
