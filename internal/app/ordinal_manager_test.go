package app

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/banban/internal/core/ordinal"
)

var (
	col1 = ordinal.Parent(1)
	col2 = ordinal.Parent(2)
)

func requireDense(t *testing.T, repo *fakeOrdered[string, ordinal.ParentID]) {
	t.Helper()
	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	require.Empty(t, ordinal.Check(entries))
}

func TestOrdinalManager_AppendAssignsCount(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	ids := seedPartition(m, col1, 3)

	for i, id := range ids {
		pos, err := m.Position(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i, pos.Ordinal)
		assert.Equal(t, col1, pos.Partition)
	}
	requireDense(t, repo)
}

func TestOrdinalManager_InsertOpensSlot(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	ids := seedPartition(m, col1, 2)

	id, err := m.Insert(ctx, col1, 1, "middle")
	require.NoError(t, err)

	assert.Equal(t, []int64{ids[0], id, ids[1]}, repo.order(col1))
	requireDense(t, repo)
}

func TestOrdinalManager_InsertRejectsOutOfRange(t *testing.T) {
	m, repo, tx := newFakeManager()
	ctx := context.Background()

	seedPartition(m, col1, 2)

	for _, ord := range []int{-1, 3} {
		_, err := m.Insert(ctx, col1, ord, "bad")
		assert.ErrorIs(t, err, ordinal.ErrInvalidOrdinal, "ordinal %d", ord)
	}
	assert.Len(t, repo.rows, 2)
	assert.Equal(t, 2, tx.rollbacks)
}

func TestOrdinalManager_DeleteClosesGap(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	ids := seedPartition(m, col1, 3)

	require.NoError(t, m.Delete(ctx, ids[0]))

	assert.Equal(t, []int64{ids[1], ids[2]}, repo.order(col1))
	pos, _ := m.Position(ctx, ids[1])
	assert.Equal(t, 0, pos.Ordinal)
	pos, _ = m.Position(ctx, ids[2])
	assert.Equal(t, 1, pos.Ordinal)
}

func TestOrdinalManager_DeleteNotFound(t *testing.T) {
	m, _, _ := newFakeManager()

	err := m.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ordinal.ErrNotFound)
	assert.EqualError(t, err, "activity 99: not found")
}

func TestOrdinalManager_MoveWithin(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want []int // indexes into the seeded IDs
	}{
		{"last to middle", 2, 1, []int{0, 2, 1}},
		{"first to last", 0, 2, []int{1, 2, 0}},
		{"last to first", 2, 0, []int{2, 0, 1}},
		{"adjacent down", 0, 1, []int{1, 0, 2}},
		{"same slot", 1, 1, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo, _ := newFakeManager()
			ids := seedPartition(m, col1, 3)

			require.NoError(t, m.MoveWithin(context.Background(), ids[tt.from], tt.to))

			want := make([]int64, len(tt.want))
			for i, idx := range tt.want {
				want[i] = ids[idx]
			}
			assert.Equal(t, want, repo.order(col1))
			requireDense(t, repo)
		})
	}
}

func TestOrdinalManager_MoveWithinRejectsCount(t *testing.T) {
	m, _, _ := newFakeManager()
	ids := seedPartition(m, col1, 3)

	err := m.MoveWithin(context.Background(), ids[0], 3)
	assert.ErrorIs(t, err, ordinal.ErrInvalidOrdinal)
}

func TestOrdinalManager_MoveAcross(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	c1 := seedPartition(m, col1, 2) // A, B
	c2 := seedPartition(m, col2, 1) // X

	require.NoError(t, m.MoveAcross(ctx, c1[0], col2, 0))

	assert.Equal(t, []int64{c1[1]}, repo.order(col1))
	assert.Equal(t, []int64{c1[0], c2[0]}, repo.order(col2))
	requireDense(t, repo)
}

func TestOrdinalManager_MoveAcrossToEndOfTarget(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	c1 := seedPartition(m, col1, 1)
	c2 := seedPartition(m, col2, 2)

	require.NoError(t, m.MoveAcross(ctx, c1[0], col2, 2))

	assert.Empty(t, repo.order(col1))
	assert.Equal(t, []int64{c2[0], c2[1], c1[0]}, repo.order(col2))
}

func TestOrdinalManager_MoveAcrossSamePartitionIsWithin(t *testing.T) {
	m, repo, _ := newFakeManager()
	ids := seedPartition(m, col1, 3)

	require.NoError(t, m.MoveAcross(context.Background(), ids[2], col1, 0))
	assert.Equal(t, []int64{ids[2], ids[0], ids[1]}, repo.order(col1))

	// count is not a valid slot inside the same partition.
	err := m.MoveAcross(context.Background(), ids[0], col1, 3)
	assert.ErrorIs(t, err, ordinal.ErrInvalidOrdinal)
}

func TestOrdinalManager_MoveToEnd(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	c1 := seedPartition(m, col1, 3)
	stash := seedPartition(m, ordinal.NoParent, 1)

	require.NoError(t, m.MoveToEnd(ctx, c1[0], col1))
	assert.Equal(t, []int64{c1[1], c1[2], c1[0]}, repo.order(col1))

	require.NoError(t, m.MoveToEnd(ctx, c1[1], ordinal.NoParent))
	assert.Equal(t, []int64{stash[0], c1[1]}, repo.order(ordinal.NoParent))
	requireDense(t, repo)
}

func TestOrdinalManager_NullPartitionIsolated(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	stash := seedPartition(m, ordinal.NoParent, 2)
	c1 := seedPartition(m, col1, 2)

	require.NoError(t, m.Delete(ctx, stash[0]))

	pos, _ := m.Position(ctx, c1[1])
	assert.Equal(t, 1, pos.Ordinal, "column rows must not shift with the stash")
	assert.Equal(t, []int64{stash[1]}, repo.order(ordinal.NoParent))
}

func TestOrdinalManager_Rebase(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	stash := seedPartition(m, ordinal.NoParent, 2)
	c1 := seedPartition(m, col1, 2)

	moved, err := m.Rebase(ctx, col1, ordinal.NoParent)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	assert.Equal(t, []int64{stash[0], stash[1], c1[0], c1[1]}, repo.order(ordinal.NoParent))
	requireDense(t, repo)
}

func TestOrdinalManager_RebaseSamePartition(t *testing.T) {
	m, repo, _ := newFakeManager()
	ids := seedPartition(m, col1, 2)

	moved, err := m.Rebase(context.Background(), col1, col1)
	require.NoError(t, err)
	assert.Zero(t, moved)
	assert.Equal(t, ids, repo.order(col1))
}

func TestOrdinalManager_StorageFailureRollsBack(t *testing.T) {
	steps := []string{"Position", "ShiftLeft", "ShiftRight", "Place"}

	for _, step := range steps {
		t.Run(step, func(t *testing.T) {
			m, repo, _ := newFakeManager()
			c1 := seedPartition(m, col1, 2)
			c2 := seedPartition(m, col2, 1)

			repo.failOn[step] = errors.New("disk I/O error")
			err := m.MoveAcross(context.Background(), c1[0], col2, 0)
			require.ErrorIs(t, err, ordinal.ErrStorage)

			delete(repo.failOn, step)
			assert.Equal(t, c1, repo.order(col1))
			assert.Equal(t, c2, repo.order(col2))
		})
	}
}

func TestOrdinalManager_DeleteFailureKeepsRow(t *testing.T) {
	m, repo, _ := newFakeManager()
	ids := seedPartition(m, col1, 3)

	repo.failOn["ShiftLeft"] = errors.New("constraint failed")
	err := m.Delete(context.Background(), ids[0])
	require.ErrorIs(t, err, ordinal.ErrStorage)

	delete(repo.failOn, "ShiftLeft")
	assert.Equal(t, ids, repo.order(col1))
}

func TestOrdinalManager_CheckAndRepair(t *testing.T) {
	m, repo, _ := newFakeManager()
	ctx := context.Background()

	ids := seedPartition(m, col1, 3)
	// Leave a gap at ordinal 1.
	repo.rows[ids[1]] = fakeRow[string, ordinal.ParentID]{pos: ordinal.Position[ordinal.ParentID]{Partition: col1, Ordinal: 5}, payload: "p1"}

	violations, err := m.Check(ctx)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "1", violations[0].Partition)

	changed, err := m.Repair(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	assert.Equal(t, []int64{ids[0], ids[2], ids[1]}, repo.order(col1))
	requireDense(t, repo)
}

func TestOrdinalManager_LogsFailuresAtWarn(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	repo := newFakeOrdered[string, ordinal.ParentID]("activity")
	m := NewOrdinalManager[string, ordinal.ParentID](repo, newFakeTransactor(repo), "activities", logger)

	_, err := m.Append(context.Background(), col1, "a")
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "activities", hook.LastEntry().Data["table"])

	err = m.Delete(context.Background(), 42)
	require.Error(t, err)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "delete failed", entry.Message)
	assert.Equal(t, int64(42), entry.Data["id"])
}

// TestOrdinalManager_RandomOperations drives random operations against the
// manager and a slice model, checking order and density after every step.
func TestOrdinalManager_RandomOperations(t *testing.T) {
	partitions := []ordinal.ParentID{ordinal.NoParent, col1, col2}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m, repo, _ := newFakeManager()
		ctx := context.Background()
		model := map[ordinal.ParentID][]int64{}

		pick := func() ordinal.ParentID { return partitions[rng.Intn(len(partitions))] }
		randomRow := func() (int64, ordinal.ParentID, int, bool) {
			p := pick()
			if len(model[p]) == 0 {
				return 0, p, 0, false
			}
			i := rng.Intn(len(model[p]))
			return model[p][i], p, i, true
		}

		for step := 0; step < 200; step++ {
			switch rng.Intn(5) {
			case 0: // insert
				p := pick()
				ord := rng.Intn(len(model[p]) + 1)
				id, err := m.Insert(ctx, p, ord, "x")
				require.NoError(t, err)
				model[p] = insertAt(model[p], ord, id)
			case 1: // delete
				id, p, i, ok := randomRow()
				if !ok {
					continue
				}
				require.NoError(t, m.Delete(ctx, id))
				model[p] = removeAt(model[p], i)
			case 2: // move within
				id, p, i, ok := randomRow()
				if !ok {
					continue
				}
				to := rng.Intn(len(model[p]))
				require.NoError(t, m.MoveWithin(ctx, id, to))
				model[p] = insertAt(removeAt(model[p], i), to, id)
			case 3: // move across
				id, p, i, ok := randomRow()
				if !ok {
					continue
				}
				target := pick()
				if target == p {
					continue
				}
				to := rng.Intn(len(model[target]) + 1)
				require.NoError(t, m.MoveAcross(ctx, id, target, to))
				model[p] = removeAt(model[p], i)
				model[target] = insertAt(model[target], to, id)
			case 4: // cascade
				from, to := pick(), pick()
				if from == to || rng.Intn(4) != 0 {
					continue
				}
				_, err := m.Rebase(ctx, from, to)
				require.NoError(t, err)
				model[to] = append(model[to], model[from]...)
				model[from] = nil
			}

			requireDense(t, repo)
			for _, p := range partitions {
				if len(model[p]) == 0 {
					require.Empty(t, repo.order(p), "seed %d step %d partition %s", seed, step, p)
					continue
				}
				require.Equal(t, model[p], repo.order(p), "seed %d step %d partition %s", seed, step, p)
			}
		}
	}
}

func insertAt(s []int64, i int, v int64) []int64 {
	out := make([]int64, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}

func removeAt(s []int64, i int) []int64 {
	out := make([]int64, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
