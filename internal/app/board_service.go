package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/ports/secondary"
)

// orderedCollection is the whole-collection view of an OrdinalManager.
type orderedCollection interface {
	Check(ctx context.Context) ([]ordinal.Violation, error)
	Repair(ctx context.Context) (int, error)
}

// NamedCollection pairs a collection with the name reports use for it.
type NamedCollection struct {
	Name       string
	Collection orderedCollection
}

// BoardServiceImpl implements the BoardService interface.
type BoardServiceImpl struct {
	columnRepo   secondary.ColumnRepository
	activityRepo secondary.ActivityRepository
	categoryRepo secondary.CategoryRepository
	tagRepo      secondary.CategoryTagRepository
	collections  []NamedCollection
	tx           secondary.Transactor
	log          logrus.FieldLogger
}

// NewBoardService creates a new BoardService with injected dependencies.
// A nil logger discards output.
func NewBoardService(
	columnRepo secondary.ColumnRepository,
	activityRepo secondary.ActivityRepository,
	categoryRepo secondary.CategoryRepository,
	tagRepo secondary.CategoryTagRepository,
	collections []NamedCollection,
	tx secondary.Transactor,
	logger logrus.FieldLogger,
) *BoardServiceImpl {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &BoardServiceImpl{
		columnRepo:   columnRepo,
		activityRepo: activityRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		collections:  collections,
		tx:           tx,
		log:          logger,
	}
}

// Snapshot loads the full board in one read transaction.
func (s *BoardServiceImpl) Snapshot(ctx context.Context) (*primary.Board, error) {
	board := &primary.Board{}
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.loadColumns(ctx, board); err != nil {
			return err
		}
		return s.loadCategories(ctx, board)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return board, nil
}

func (s *BoardServiceImpl) loadColumns(ctx context.Context, board *primary.Board) error {
	columns, err := s.columnRepo.List(ctx)
	if err != nil {
		return err
	}
	records, err := s.activityRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	byColumn := make(map[ordinal.ParentID][]*primary.Activity)
	for _, r := range records {
		activity := activityToPrimary(r)
		activity.TagIDs, err = s.activityRepo.TagIDs(ctx, r.ID)
		if err != nil {
			return err
		}
		byColumn[r.ColumnID] = append(byColumn[r.ColumnID], activity)
	}

	for _, c := range columns {
		board.Columns = append(board.Columns, &primary.ColumnActivities{
			Column:     columnToPrimary(c),
			Activities: byColumn[ordinal.Parent(c.ID)],
		})
	}
	board.Stash = byColumn[ordinal.NoParent]
	return nil
}

func (s *BoardServiceImpl) loadCategories(ctx context.Context, board *primary.Board) error {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	records, err := s.tagRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	byCategory := make(map[ordinal.ParentID][]*primary.Tag)
	for _, r := range records {
		byCategory[r.CategoryID] = append(byCategory[r.CategoryID], tagToPrimary(r))
	}

	for _, c := range categories {
		board.Categories = append(board.Categories, &primary.CategoryTags{
			Category: categoryToPrimary(c),
			Tags:     byCategory[ordinal.Parent(c.ID)],
		})
	}
	board.Uncategorized = byCategory[ordinal.NoParent]
	return nil
}

// Check reports ordinal violations in every collection.
func (s *BoardServiceImpl) Check(ctx context.Context) (*primary.CheckReport, error) {
	report := &primary.CheckReport{}
	for _, c := range s.collections {
		violations, err := c.Collection.Check(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", c.Name, err)
		}
		report.Collections = append(report.Collections, primary.CollectionCheck{
			Name:       c.Name,
			Violations: violations,
		})
	}
	return report, nil
}

// Repair renumbers every collection in a single transaction.
func (s *BoardServiceImpl) Repair(ctx context.Context) (*primary.RepairReport, error) {
	report := &primary.RepairReport{}
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		for _, c := range s.collections {
			n, err := c.Collection.Repair(ctx)
			if err != nil {
				return fmt.Errorf("failed to repair %s: %w", c.Name, err)
			}
			report.Collections = append(report.Collections, primary.CollectionRepair{
				Name:       c.Name,
				Renumbered: n,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, c := range report.Collections {
		if c.Renumbered > 0 {
			s.log.WithFields(logrus.Fields{"collection": c.Name, "rows": c.Renumbered}).Info("renumbered ordinals")
		}
	}
	return report, nil
}

// Ensure BoardServiceImpl implements the interface.
var _ primary.BoardService = (*BoardServiceImpl)(nil)
