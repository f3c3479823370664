package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

// OrdinalManager keeps the ordinals of one orderable collection dense.
// Every operation runs in a single transaction: it either fully applies or
// leaves the collection as it was.
type OrdinalManager[E any, K comparable] struct {
	repo  secondary.OrderedRepository[E, K]
	tx    secondary.Transactor
	table string
	log   logrus.FieldLogger
}

// NewOrdinalManager creates an OrdinalManager over repo. A nil logger
// discards output.
func NewOrdinalManager[E any, K comparable](
	repo secondary.OrderedRepository[E, K],
	tx secondary.Transactor,
	table string,
	logger logrus.FieldLogger,
) *OrdinalManager[E, K] {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &OrdinalManager[E, K]{
		repo:  repo,
		tx:    tx,
		table: table,
		log:   logger.WithField("table", table),
	}
}

// run executes fn in a transaction and logs the outcome of op.
func (m *OrdinalManager[E, K]) run(ctx context.Context, op string, fields logrus.Fields, fn func(ctx context.Context) error) error {
	entry := m.log.WithFields(fields)
	if err := m.tx.InTx(ctx, fn); err != nil {
		entry.WithError(err).Warnf("%s failed", op)
		return err
	}
	entry.Debug(op)
	return nil
}

// Insert opens a slot at ord in partition and stores payload there.
// ord must be within [0, count].
func (m *OrdinalManager[E, K]) Insert(ctx context.Context, partition K, ord int, payload E) (int64, error) {
	var id int64
	err := m.run(ctx, "insert", logrus.Fields{"partition": partition, "ordinal": ord}, func(ctx context.Context) error {
		count, err := m.repo.Count(ctx, partition)
		if err != nil {
			return err
		}
		if check := ordinal.CanInsert(ordinal.InsertContext{Ordinal: ord, Count: count}); !check.Allowed {
			return check.Error()
		}

		if err := m.repo.ShiftRight(ctx, partition, ord); err != nil {
			return err
		}
		id, err = m.repo.Insert(ctx, ordinal.Position[K]{Partition: partition, Ordinal: ord}, payload)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Append stores payload after the last row of partition.
func (m *OrdinalManager[E, K]) Append(ctx context.Context, partition K, payload E) (int64, error) {
	var id int64
	err := m.tx.InTx(ctx, func(ctx context.Context) error {
		count, err := m.repo.Count(ctx, partition)
		if err != nil {
			return err
		}
		id, err = m.Insert(ctx, partition, count, payload)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes id and closes the gap it leaves.
func (m *OrdinalManager[E, K]) Delete(ctx context.Context, id int64) error {
	return m.run(ctx, "delete", logrus.Fields{"id": id}, func(ctx context.Context) error {
		pos, err := m.repo.Position(ctx, id)
		if err != nil {
			return err
		}
		if err := m.repo.Delete(ctx, id); err != nil {
			return err
		}
		return m.repo.ShiftLeft(ctx, pos.Partition, pos.Ordinal)
	})
}

// MoveWithin moves id to ord inside its current partition.
// ord must be within [0, count-1].
func (m *OrdinalManager[E, K]) MoveWithin(ctx context.Context, id int64, ord int) error {
	return m.run(ctx, "move within", logrus.Fields{"id": id, "to": ord}, func(ctx context.Context) error {
		pos, err := m.repo.Position(ctx, id)
		if err != nil {
			return err
		}
		return m.moveWithin(ctx, id, pos, ord)
	})
}

func (m *OrdinalManager[E, K]) moveWithin(ctx context.Context, id int64, pos ordinal.Position[K], ord int) error {
	count, err := m.repo.Count(ctx, pos.Partition)
	if err != nil {
		return err
	}
	check := ordinal.CanMoveWithin(ordinal.MoveWithinContext{From: pos.Ordinal, To: ord, Count: count})
	if !check.Allowed {
		return check.Error()
	}
	if pos.Ordinal == ord {
		return nil
	}

	// Close the old slot, open the new one, then overwrite id's own ordinal,
	// which the right shift may have touched.
	if err := m.repo.ShiftLeft(ctx, pos.Partition, pos.Ordinal); err != nil {
		return err
	}
	if err := m.repo.ShiftRight(ctx, pos.Partition, ord); err != nil {
		return err
	}
	return m.repo.Place(ctx, id, ordinal.Position[K]{Partition: pos.Partition, Ordinal: ord})
}

// MoveAcross moves id to ord in partition. When partition is the one id is
// already in, this is MoveWithin.
// ord must be within [0, count(partition)].
func (m *OrdinalManager[E, K]) MoveAcross(ctx context.Context, id int64, partition K, ord int) error {
	return m.run(ctx, "move across", logrus.Fields{"id": id, "to": partition, "ordinal": ord}, func(ctx context.Context) error {
		pos, err := m.repo.Position(ctx, id)
		if err != nil {
			return err
		}
		if pos.Partition == partition {
			return m.moveWithin(ctx, id, pos, ord)
		}

		count, err := m.repo.Count(ctx, partition)
		if err != nil {
			return err
		}
		check := ordinal.CanMoveAcross(ordinal.MoveAcrossContext{To: ord, TargetCount: count})
		if !check.Allowed {
			return check.Error()
		}

		if err := m.repo.ShiftLeft(ctx, pos.Partition, pos.Ordinal); err != nil {
			return err
		}
		if err := m.repo.ShiftRight(ctx, partition, ord); err != nil {
			return err
		}
		return m.repo.Place(ctx, id, ordinal.Position[K]{Partition: partition, Ordinal: ord})
	})
}

// MoveToEnd moves id after the last row of partition.
func (m *OrdinalManager[E, K]) MoveToEnd(ctx context.Context, id int64, partition K) error {
	return m.tx.InTx(ctx, func(ctx context.Context) error {
		pos, err := m.repo.Position(ctx, id)
		if err != nil {
			return err
		}
		count, err := m.repo.Count(ctx, partition)
		if err != nil {
			return err
		}
		if pos.Partition == partition {
			return m.MoveWithin(ctx, id, count-1)
		}
		return m.MoveAcross(ctx, id, partition, count)
	})
}

// Position returns the partition and ordinal of id.
func (m *OrdinalManager[E, K]) Position(ctx context.Context, id int64) (ordinal.Position[K], error) {
	return m.repo.Position(ctx, id)
}

// Count returns the number of rows in partition.
func (m *OrdinalManager[E, K]) Count(ctx context.Context, partition K) (int, error) {
	return m.repo.Count(ctx, partition)
}

// Rebase appends every row of from after the rows of to, keeping their
// relative order. It is the cascade run before a parent is deleted.
func (m *OrdinalManager[E, K]) Rebase(ctx context.Context, from, to K) (int, error) {
	var moved int
	err := m.run(ctx, "rebase", logrus.Fields{"from": from, "to": to}, func(ctx context.Context) error {
		if from == to {
			return nil
		}
		offset, err := m.repo.Count(ctx, to)
		if err != nil {
			return err
		}
		moved, err = m.repo.Rebase(ctx, from, to, offset)
		return err
	})
	if err != nil {
		return 0, err
	}
	return moved, nil
}

// Check reports every partition whose ordinals are not exactly 0..n-1.
func (m *OrdinalManager[E, K]) Check(ctx context.Context) ([]ordinal.Violation, error) {
	entries, err := m.repo.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return ordinal.Check(entries), nil
}

// Repair renumbers every partition to its dense rank order (ordinal, then
// id) and returns the number of rows that moved.
func (m *OrdinalManager[E, K]) Repair(ctx context.Context) (int, error) {
	var changed int
	err := m.run(ctx, "repair", nil, func(ctx context.Context) error {
		entries, err := m.repo.Entries(ctx)
		if err != nil {
			return err
		}
		dense := ordinal.Dense(entries)
		for _, e := range dense {
			if err := m.repo.Place(ctx, e.ID, e.Position); err != nil {
				return err
			}
		}
		changed = len(dense)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}
