package app

import (
	"context"
	"fmt"
	"maps"
	"sort"

	"github.com/example/banban/internal/core/ordinal"
	"github.com/example/banban/internal/ports/secondary"
)

// ============================================================================
// Fake ordered repository
// ============================================================================

type fakeRow[E any, K comparable] struct {
	pos     ordinal.Position[K]
	payload E
}

// fakeOrdered is an in-memory secondary.OrderedRepository. Setting failOn[m]
// makes method m fail with that error.
type fakeOrdered[E any, K comparable] struct {
	kind   string
	rows   map[int64]fakeRow[E, K]
	nextID int64
	failOn map[string]error
}

var _ secondary.OrderedRepository[string, ordinal.ParentID] = (*fakeOrdered[string, ordinal.ParentID])(nil)

func newFakeOrdered[E any, K comparable](kind string) *fakeOrdered[E, K] {
	return &fakeOrdered[E, K]{
		kind:   kind,
		rows:   make(map[int64]fakeRow[E, K]),
		failOn: make(map[string]error),
	}
}

func (f *fakeOrdered[E, K]) fail(method string) error {
	if err, ok := f.failOn[method]; ok {
		return ordinal.Storage("fake "+method, err)
	}
	return nil
}

// snapshot returns a func restoring the current state.
func (f *fakeOrdered[E, K]) snapshot() func() {
	rows := maps.Clone(f.rows)
	nextID := f.nextID
	return func() {
		f.rows = rows
		f.nextID = nextID
	}
}

func (f *fakeOrdered[E, K]) Position(ctx context.Context, id int64) (ordinal.Position[K], error) {
	if err := f.fail("Position"); err != nil {
		return ordinal.Position[K]{}, err
	}
	row, ok := f.rows[id]
	if !ok {
		return ordinal.Position[K]{}, ordinal.NotFound(f.kind, id)
	}
	return row.pos, nil
}

func (f *fakeOrdered[E, K]) Count(ctx context.Context, partition K) (int, error) {
	if err := f.fail("Count"); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range f.rows {
		if row.pos.Partition == partition {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrdered[E, K]) ShiftLeft(ctx context.Context, partition K, start int) error {
	if err := f.fail("ShiftLeft"); err != nil {
		return err
	}
	for id, row := range f.rows {
		if row.pos.Partition == partition && row.pos.Ordinal > start {
			row.pos.Ordinal--
			f.rows[id] = row
		}
	}
	return nil
}

func (f *fakeOrdered[E, K]) ShiftRight(ctx context.Context, partition K, start int) error {
	if err := f.fail("ShiftRight"); err != nil {
		return err
	}
	for id, row := range f.rows {
		if row.pos.Partition == partition && row.pos.Ordinal >= start {
			row.pos.Ordinal++
			f.rows[id] = row
		}
	}
	return nil
}

func (f *fakeOrdered[E, K]) Insert(ctx context.Context, pos ordinal.Position[K], payload E) (int64, error) {
	if err := f.fail("Insert"); err != nil {
		return 0, err
	}
	f.nextID++
	f.rows[f.nextID] = fakeRow[E, K]{pos: pos, payload: payload}
	return f.nextID, nil
}

func (f *fakeOrdered[E, K]) Delete(ctx context.Context, id int64) error {
	if err := f.fail("Delete"); err != nil {
		return err
	}
	if _, ok := f.rows[id]; !ok {
		return ordinal.NotFound(f.kind, id)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeOrdered[E, K]) Place(ctx context.Context, id int64, pos ordinal.Position[K]) error {
	if err := f.fail("Place"); err != nil {
		return err
	}
	row, ok := f.rows[id]
	if !ok {
		return ordinal.NotFound(f.kind, id)
	}
	row.pos = pos
	f.rows[id] = row
	return nil
}

func (f *fakeOrdered[E, K]) Rebase(ctx context.Context, from, to K, offset int) (int, error) {
	if err := f.fail("Rebase"); err != nil {
		return 0, err
	}
	moved := 0
	for id, row := range f.rows {
		if row.pos.Partition == from {
			row.pos = ordinal.Position[K]{Partition: to, Ordinal: row.pos.Ordinal + offset}
			f.rows[id] = row
			moved++
		}
	}
	return moved, nil
}

func (f *fakeOrdered[E, K]) Entries(ctx context.Context) ([]ordinal.Entry[K], error) {
	if err := f.fail("Entries"); err != nil {
		return nil, err
	}
	entries := make([]ordinal.Entry[K], 0, len(f.rows))
	for id, row := range f.rows {
		entries = append(entries, ordinal.Entry[K]{ID: id, Position: row.pos})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// order returns the IDs of partition sorted by ordinal.
func (f *fakeOrdered[E, K]) order(partition K) []int64 {
	var ids []int64
	for id, row := range f.rows {
		if row.pos.Partition == partition {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return f.rows[ids[i]].pos.Ordinal < f.rows[ids[j]].pos.Ordinal
	})
	return ids
}

// ============================================================================
// Fake transactor
// ============================================================================

type fakeTxKey struct{}

type snapshotter interface {
	snapshot() func()
}

// fakeTransactor restores every participant when the outermost unit of
// work fails.
type fakeTransactor struct {
	participants []snapshotter
	commits      int
	rollbacks    int
}

var _ secondary.Transactor = (*fakeTransactor)(nil)

func newFakeTransactor(participants ...snapshotter) *fakeTransactor {
	return &fakeTransactor{participants: participants}
}

func (t *fakeTransactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(fakeTxKey{}) != nil {
		return fn(ctx)
	}

	restores := make([]func(), len(t.participants))
	for i, p := range t.participants {
		restores[i] = p.snapshot()
	}

	if err := fn(context.WithValue(ctx, fakeTxKey{}, true)); err != nil {
		for _, restore := range restores {
			restore()
		}
		t.rollbacks++
		return err
	}
	t.commits++
	return nil
}

// ============================================================================
// Fixtures
// ============================================================================

type activityManager = OrdinalManager[string, ordinal.ParentID]

// newFakeManager returns a manager over a fresh fake repository.
func newFakeManager() (*activityManager, *fakeOrdered[string, ordinal.ParentID], *fakeTransactor) {
	repo := newFakeOrdered[string, ordinal.ParentID]("activity")
	tx := newFakeTransactor(repo)
	return NewOrdinalManager[string, ordinal.ParentID](repo, tx, "activities", nil), repo, tx
}

// seedPartition appends n rows named p0..pn-1 to partition.
func seedPartition(m *activityManager, partition ordinal.ParentID, n int) []int64 {
	ids := make([]int64, n)
	for i := range n {
		id, err := m.Append(context.Background(), partition, fmt.Sprintf("p%d", i))
		if err != nil {
			panic(err)
		}
		ids[i] = id
	}
	return ids
}
