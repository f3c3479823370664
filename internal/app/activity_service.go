package app

import (
	"context"
	"fmt"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityRepository
	columnRepo   secondary.ColumnRepository
	tagRepo      secondary.CategoryTagRepository
	activities   *OrdinalManager[secondary.ActivityRecord, ordinal.ParentID]
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(
	activityRepo secondary.ActivityRepository,
	columnRepo secondary.ColumnRepository,
	tagRepo secondary.CategoryTagRepository,
	activities *OrdinalManager[secondary.ActivityRecord, ordinal.ParentID],
) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		columnRepo:   columnRepo,
		tagRepo:      tagRepo,
		activities:   activities,
	}
}

// CreateActivity creates an activity in a column or the stash.
func (s *ActivityServiceImpl) CreateActivity(ctx context.Context, req primary.CreateActivityRequest) (*primary.Activity, error) {
	if err := validateName("activity", req.Name); err != nil {
		return nil, err
	}
	if err := s.requireColumn(ctx, req.ColumnID); err != nil {
		return nil, err
	}

	record := secondary.ActivityRecord{Name: req.Name, Body: req.Body}

	var (
		id  int64
		err error
	)
	if req.Ordinal == nil {
		id, err = s.activities.Append(ctx, req.ColumnID, record)
	} else {
		id, err = s.activities.Insert(ctx, req.ColumnID, *req.Ordinal, record)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.GetActivity(ctx, id)
}

// GetActivity retrieves an activity by ID, with its tags.
func (s *ActivityServiceImpl) GetActivity(ctx context.Context, activityID int64) (*primary.Activity, error) {
	record, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	activity := activityToPrimary(record)
	activity.TagIDs, err = s.activityRepo.TagIDs(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity tags: %w", err)
	}
	return activity, nil
}

// UpdateActivity changes an activity's name and body.
func (s *ActivityServiceImpl) UpdateActivity(ctx context.Context, req primary.UpdateActivityRequest) error {
	if err := validateName("activity", req.Name); err != nil {
		return err
	}
	return s.activityRepo.UpdateContent(ctx, req.ActivityID, req.Name, req.Body)
}

// MoveActivity moves an activity within its column or to another one.
func (s *ActivityServiceImpl) MoveActivity(ctx context.Context, req primary.MoveRequest) error {
	if req.Partition != nil {
		if err := s.requireColumn(ctx, *req.Partition); err != nil {
			return err
		}
	}
	return moveParented(ctx, s.activities, req)
}

// DeleteActivity deletes an activity.
func (s *ActivityServiceImpl) DeleteActivity(ctx context.Context, activityID int64) error {
	return s.activities.Delete(ctx, activityID)
}

// ListActivities retrieves the activities of one column, or the stash.
func (s *ActivityServiceImpl) ListActivities(ctx context.Context, column ordinal.ParentID) ([]*primary.Activity, error) {
	records, err := s.activityRepo.List(ctx, column)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	activities := make([]*primary.Activity, len(records))
	for i, r := range records {
		activities[i] = activityToPrimary(r)
	}
	return activities, nil
}

// AddTag attaches a tag to an activity.
func (s *ActivityServiceImpl) AddTag(ctx context.Context, activityID, tagID int64) error {
	if _, err := s.activityRepo.GetByID(ctx, activityID); err != nil {
		return err
	}
	if _, err := s.tagRepo.GetByID(ctx, tagID); err != nil {
		return err
	}
	return s.activityRepo.AddTag(ctx, activityID, tagID)
}

// RemoveTag detaches a tag from an activity.
func (s *ActivityServiceImpl) RemoveTag(ctx context.Context, activityID, tagID int64) error {
	return s.activityRepo.RemoveTag(ctx, activityID, tagID)
}

// requireColumn returns ordinal.ErrNotFound for a column that does not exist.
// The stash always exists.
func (s *ActivityServiceImpl) requireColumn(ctx context.Context, column ordinal.ParentID) error {
	if !column.Valid {
		return nil
	}
	_, err := s.columnRepo.GetByID(ctx, column.ID)
	return err
}

func activityToPrimary(r *secondary.ActivityRecord) *primary.Activity {
	return &primary.Activity{
		ID:        r.ID,
		Name:      r.Name,
		Body:      r.Body,
		ColumnID:  r.ColumnID,
		Ordinal:   r.Ordinal,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// moveParented applies a MoveRequest to a collection partitioned by parent.
func moveParented[E any](ctx context.Context, m *OrdinalManager[E, ordinal.ParentID], req primary.MoveRequest) error {
	switch {
	case req.Partition == nil && req.Ordinal == nil:
		return m.tx.InTx(ctx, func(ctx context.Context) error {
			pos, err := m.Position(ctx, req.ID)
			if err != nil {
				return err
			}
			return m.MoveToEnd(ctx, req.ID, pos.Partition)
		})
	case req.Partition == nil:
		return m.MoveWithin(ctx, req.ID, *req.Ordinal)
	case req.Ordinal == nil:
		return m.MoveToEnd(ctx, req.ID, *req.Partition)
	default:
		return m.MoveAcross(ctx, req.ID, *req.Partition, *req.Ordinal)
	}
}

// Ensure ActivityServiceImpl implements the interface.
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
