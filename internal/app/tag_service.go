package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/core/tag"
	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/ports/secondary"
)

// TagServiceImpl implements the TagService interface.
type TagServiceImpl struct {
	tagRepo      secondary.CategoryTagRepository
	categoryRepo secondary.CategoryRepository
	tags         *OrdinalManager[secondary.CategoryTagRecord, ordinal.ParentID]
}

// NewTagService creates a new TagService with injected dependencies.
func NewTagService(
	tagRepo secondary.CategoryTagRepository,
	categoryRepo secondary.CategoryRepository,
	tags *OrdinalManager[secondary.CategoryTagRecord, ordinal.ParentID],
) *TagServiceImpl {
	return &TagServiceImpl{
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		tags:         tags,
	}
}

// CreateTag creates a new tag. Without an explicit colour the tag gets the
// colour hashed from its name.
func (s *TagServiceImpl) CreateTag(ctx context.Context, req primary.CreateTagRequest) (*primary.Tag, error) {
	if check := tag.CanUseName(tag.NameContext{Name: req.Name}); !check.Allowed {
		return nil, check.Error()
	}

	color := strings.ToUpper(req.Color)
	if color == "" {
		color = tag.ColorFor(req.Name)
	}
	if check := tag.CanUseColor(tag.ColorContext{Color: color}); !check.Allowed {
		return nil, check.Error()
	}

	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	record := secondary.CategoryTagRecord{Name: req.Name, Color: color}

	var (
		id  int64
		err error
	)
	if req.Ordinal == nil {
		id, err = s.tags.Append(ctx, req.CategoryID, record)
	} else {
		id, err = s.tags.Insert(ctx, req.CategoryID, *req.Ordinal, record)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return s.GetTag(ctx, id)
}

// GetTag retrieves a tag by ID.
func (s *TagServiceImpl) GetTag(ctx context.Context, tagID int64) (*primary.Tag, error) {
	record, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	return tagToPrimary(record), nil
}

// RenameTag changes a tag's name. The colour is kept.
func (s *TagServiceImpl) RenameTag(ctx context.Context, tagID int64, name string) error {
	if check := tag.CanUseName(tag.NameContext{Name: name}); !check.Allowed {
		return check.Error()
	}
	return s.tagRepo.Rename(ctx, tagID, name)
}

// RecolorTag changes a tag's colour.
func (s *TagServiceImpl) RecolorTag(ctx context.Context, tagID int64, color string) error {
	color = strings.ToUpper(color)
	if check := tag.CanUseColor(tag.ColorContext{Color: color}); !check.Allowed {
		return check.Error()
	}
	return s.tagRepo.Recolor(ctx, tagID, color)
}

// MoveTag moves a tag within its category or to another one.
func (s *TagServiceImpl) MoveTag(ctx context.Context, req primary.MoveRequest) error {
	if req.Partition != nil {
		if err := s.requireCategory(ctx, *req.Partition); err != nil {
			return err
		}
	}
	return moveParented(ctx, s.tags, req)
}

// DeleteTag deletes a tag. The schema cascades the delete to activity links.
func (s *TagServiceImpl) DeleteTag(ctx context.Context, tagID int64) error {
	return s.tags.Delete(ctx, tagID)
}

// ListTags retrieves the tags of one category, or the uncategorized tags.
func (s *TagServiceImpl) ListTags(ctx context.Context, category ordinal.ParentID) ([]*primary.Tag, error) {
	records, err := s.tagRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*primary.Tag, len(records))
	for i, r := range records {
		tags[i] = tagToPrimary(r)
	}
	return tags, nil
}

func (s *TagServiceImpl) requireCategory(ctx context.Context, category ordinal.ParentID) error {
	if !category.Valid {
		return nil
	}
	_, err := s.categoryRepo.GetByID(ctx, category.ID)
	return err
}

func tagToPrimary(r *secondary.CategoryTagRecord) *primary.Tag {
	return &primary.Tag{
		ID:         r.ID,
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Ordinal:    r.Ordinal,
		Color:      r.Color,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Ensure TagServiceImpl implements the interface.
var _ primary.TagService = (*TagServiceImpl)(nil)
