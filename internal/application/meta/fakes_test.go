package meta_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de lectura que consume el agregador.
// Cada fake implementa solo lo que el agregador toca; el resto entra en
// pánico si alguna vez se llama.

type metaStore struct {
	items      map[string]*entity.Item
	groups     map[string]*entity.Group
	categories []*entity.Category
	locations  []*entity.StorageLocation
	entries    map[string]*entity.StockEntry
	history    []*entity.HistoryEntry
}

func newMetaStore() *metaStore {
	return &metaStore{
		items:   make(map[string]*entity.Item),
		groups:  make(map[string]*entity.Group),
		entries: make(map[string]*entity.StockEntry),
	}
}

// ── ItemRepository (solo lecturas del agregador) ──────────────────────────────

type fakeItems struct{ s *metaStore }

func (r *fakeItems) Create(context.Context, *entity.Item) error { panic("no usado") }
func (r *fakeItems) GetByID(context.Context, string) (*entity.Item, error) {
	panic("no usado")
}
func (r *fakeItems) GetBySlug(context.Context, string) (*entity.Item, error) {
	panic("no usado")
}
func (r *fakeItems) Update(context.Context, *entity.Item) error { panic("no usado") }
func (r *fakeItems) Delete(context.Context, string) error       { panic("no usado") }

func (r *fakeItems) List(_ context.Context) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeItems) Count(_ context.Context) (int, error) { return len(r.s.items), nil }

func (r *fakeItems) ListWithTarget(_ context.Context) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.TargetStock >= 1 {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *fakeItems) ListRecent(_ context.Context, limit int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.After(out[b].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeItems) ClearCategory(context.Context, string, string) error { panic("no usado") }
func (r *fakeItems) ClearGroup(context.Context, string, string) error    { panic("no usado") }
func (r *fakeItems) ClearUnit(context.Context, string, string) error     { panic("no usado") }
func (r *fakeItems) ClearDefaultLocation(context.Context, string, string) error {
	panic("no usado")
}
func (r *fakeItems) RemoveTag(context.Context, string, string) error { panic("no usado") }

// ── GroupRepository ───────────────────────────────────────────────────────────

type fakeGroups struct{ s *metaStore }

func (r *fakeGroups) Create(context.Context, *entity.Group) error { panic("no usado") }
func (r *fakeGroups) GetByID(context.Context, string) (*entity.Group, error) {
	panic("no usado")
}
func (r *fakeGroups) Update(context.Context, *entity.Group) error { panic("no usado") }
func (r *fakeGroups) Delete(context.Context, string) error        { panic("no usado") }

func (r *fakeGroups) List(_ context.Context) ([]*entity.Group, error) {
	var out []*entity.Group
	for _, g := range r.s.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGroups) ListWithTarget(_ context.Context) ([]*entity.Group, error) {
	var out []*entity.Group
	for _, g := range r.s.groups {
		if g.TargetStock >= 1 {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *fakeGroups) ListRecent(_ context.Context, limit int) ([]*entity.Group, error) {
	var out []*entity.Group
	for _, g := range r.s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.After(out[b].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeGroups) ClearDefaultLocation(context.Context, string, string) error {
	panic("no usado")
}

// ── CategoryRepository ────────────────────────────────────────────────────────

type fakeCategories struct{ s *metaStore }

func (r *fakeCategories) Create(context.Context, *entity.Category) error { panic("no usado") }
func (r *fakeCategories) GetByID(context.Context, string) (*entity.Category, error) {
	panic("no usado")
}
func (r *fakeCategories) Update(context.Context, *entity.Category) error { panic("no usado") }
func (r *fakeCategories) Delete(context.Context, string) error           { panic("no usado") }

func (r *fakeCategories) List(_ context.Context) ([]*entity.Category, error) {
	return r.s.categories, nil
}

func (r *fakeCategories) ListRecent(_ context.Context, limit int) ([]*entity.Category, error) {
	out := append([]*entity.Category(nil), r.s.categories...)
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.After(out[b].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── StorageLocationRepository ─────────────────────────────────────────────────

type fakeLocations struct{ s *metaStore }

func (r *fakeLocations) Create(context.Context, *entity.StorageLocation) error {
	panic("no usado")
}
func (r *fakeLocations) GetByID(context.Context, string) (*entity.StorageLocation, error) {
	panic("no usado")
}
func (r *fakeLocations) Update(context.Context, *entity.StorageLocation) error {
	panic("no usado")
}
func (r *fakeLocations) Delete(context.Context, string) error { panic("no usado") }

func (r *fakeLocations) List(_ context.Context) ([]*entity.StorageLocation, error) {
	return r.s.locations, nil
}

func (r *fakeLocations) ListRecent(_ context.Context, limit int) ([]*entity.StorageLocation, error) {
	out := append([]*entity.StorageLocation(nil), r.s.locations...)
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.After(out[b].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeLocations) ClearParent(context.Context, string) error { panic("no usado") }

// ── StockEntryRepository ──────────────────────────────────────────────────────

type fakeEntries struct{ s *metaStore }

func (r *fakeEntries) Create(context.Context, *entity.StockEntry) error { panic("no usado") }
func (r *fakeEntries) GetByID(context.Context, string) (*entity.StockEntry, error) {
	panic("no usado")
}
func (r *fakeEntries) GetByIDForUpdate(context.Context, string) (*entity.StockEntry, error) {
	panic("no usado")
}
func (r *fakeEntries) Update(context.Context, *entity.StockEntry) error { panic("no usado") }
func (r *fakeEntries) Delete(context.Context, string) error             { panic("no usado") }
func (r *fakeEntries) DeleteByItem(context.Context, string) error       { panic("no usado") }
func (r *fakeEntries) ListByItem(context.Context, string, bool) ([]*entity.StockEntry, error) {
	panic("no usado")
}

func (r *fakeEntries) ListExpiring(_ context.Context, until time.Time) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.entries {
		if !e.BestBefore.After(until) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].BestBefore.Before(out[b].BestBefore) })
	return out, nil
}

func (r *fakeEntries) CountActive(_ context.Context, itemID string) (int, error) {
	n := 0
	for _, e := range r.s.entries {
		if e.Item == itemID && !e.Consumed {
			n++
		}
	}
	return n, nil
}

func (r *fakeEntries) CountActiveTotal(_ context.Context) (int, error) {
	n := 0
	for _, e := range r.s.entries {
		if !e.Consumed {
			n++
		}
	}
	return n, nil
}

func (r *fakeEntries) ActiveCounts(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, e := range r.s.entries {
		if !e.Consumed {
			counts[e.Item]++
		}
	}
	return counts, nil
}

func (r *fakeEntries) ActiveCountsByGroup(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, e := range r.s.entries {
		if e.Consumed {
			continue
		}
		if i, ok := r.s.items[e.Item]; ok && i.Group != nil {
			counts[*i.Group]++
		}
	}
	return counts, nil
}

func (r *fakeEntries) ClearLocation(context.Context, string) error { panic("no usado") }

// ── HistoryRepository ─────────────────────────────────────────────────────────

type fakeHistory struct{ s *metaStore }

func (r *fakeHistory) Append(context.Context, *entity.HistoryEntry) error { panic("no usado") }
func (r *fakeHistory) RemoveByEntryAndType(context.Context, string, string) error {
	panic("no usado")
}
func (r *fakeHistory) DeleteByEntry(context.Context, string) error { panic("no usado") }
func (r *fakeHistory) DeleteByItem(context.Context, string) error  { panic("no usado") }
func (r *fakeHistory) ListByItem(context.Context, string) ([]*entity.HistoryEntry, error) {
	panic("no usado")
}
func (r *fakeHistory) ListByEntry(context.Context, string) ([]*entity.HistoryEntry, error) {
	panic("no usado")
}

func (r *fakeHistory) ListRecent(_ context.Context, limit int) ([]*entity.HistoryEntry, error) {
	out := append([]*entity.HistoryEntry(nil), r.s.history...)
	sort.Slice(out, func(a, b int) bool { return out[a].Date.After(out[b].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
