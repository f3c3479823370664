package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/ports/secondary"
)

// ColumnServiceImpl implements the ColumnService interface.
type ColumnServiceImpl struct {
	columnRepo secondary.ColumnRepository
	columns    *OrdinalManager[secondary.ColumnRecord, ordinal.Board]
	activities *OrdinalManager[secondary.ActivityRecord, ordinal.ParentID]
	tx         secondary.Transactor
}

// NewColumnService creates a new ColumnService with injected dependencies.
func NewColumnService(
	columnRepo secondary.ColumnRepository,
	columns *OrdinalManager[secondary.ColumnRecord, ordinal.Board],
	activities *OrdinalManager[secondary.ActivityRecord, ordinal.ParentID],
	tx secondary.Transactor,
) *ColumnServiceImpl {
	return &ColumnServiceImpl{
		columnRepo: columnRepo,
		columns:    columns,
		activities: activities,
		tx:         tx,
	}
}

// CreateColumn creates a column.
func (s *ColumnServiceImpl) CreateColumn(ctx context.Context, req primary.CreateColumnRequest) (*primary.Column, error) {
	if err := validateName("column", req.Name); err != nil {
		return nil, err
	}

	record := secondary.ColumnRecord{Name: req.Name}

	var (
		id  int64
		err error
	)
	if req.Ordinal == nil {
		id, err = s.columns.Append(ctx, ordinal.Board{}, record)
	} else {
		id, err = s.columns.Insert(ctx, ordinal.Board{}, *req.Ordinal, record)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	created, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created column: %w", err)
	}
	return columnToPrimary(created), nil
}

// RenameColumn changes a column's name.
func (s *ColumnServiceImpl) RenameColumn(ctx context.Context, columnID int64, name string) error {
	if err := validateName("column", name); err != nil {
		return err
	}
	return s.columnRepo.Rename(ctx, columnID, name)
}

// MoveColumn moves a column to a new position on the board.
func (s *ColumnServiceImpl) MoveColumn(ctx context.Context, columnID int64, ord int) error {
	return s.columns.MoveWithin(ctx, columnID, ord)
}

// DeleteColumn moves the column's activities to the end of the stash, then
// deletes the column, in one transaction.
func (s *ColumnServiceImpl) DeleteColumn(ctx context.Context, columnID int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.columns.Position(ctx, columnID); err != nil {
			return err
		}
		if _, err := s.activities.Rebase(ctx, ordinal.Parent(columnID), ordinal.NoParent); err != nil {
			return fmt.Errorf("failed to stash column activities: %w", err)
		}
		return s.columns.Delete(ctx, columnID)
	})
}

// ListColumns retrieves all columns in board order.
func (s *ColumnServiceImpl) ListColumns(ctx context.Context) ([]*primary.Column, error) {
	records, err := s.columnRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	columns := make([]*primary.Column, len(records))
	for i, r := range records {
		columns[i] = columnToPrimary(r)
	}
	return columns, nil
}

func columnToPrimary(r *secondary.ColumnRecord) *primary.Column {
	return &primary.Column{
		ID:        r.ID,
		Name:      r.Name,
		Ordinal:   r.Ordinal,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// validateName rejects blank names.
func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s name cannot be empty", kind)
	}
	return nil
}

// Ensure ColumnServiceImpl implements the interface.
var _ primary.ColumnService = (*ColumnServiceImpl)(nil)
