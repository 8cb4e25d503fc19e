package stock_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. El TxRunner falso ejecuta
// el callback directamente: los tests verifican semántica, no atomicidad.

type memStore struct {
	items   map[string]*entity.Item
	entries map[string]*entity.StockEntry
	history []*entity.HistoryEntry
}

func newMemStore() *memStore {
	return &memStore{
		items:   make(map[string]*entity.Item),
		entries: make(map[string]*entity.StockEntry),
	}
}

func (s *memStore) historyByEntryAndType(entryID, eventType string) []*entity.HistoryEntry {
	var out []*entity.HistoryEntry
	for _, h := range s.history {
		if h.Entry == entryID && h.Type == eventType {
			out = append(out, h)
		}
	}
	return out
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTx struct{ s *memStore }

func (t *fakeTx) Run(_ context.Context, fn func(
	items repository.ItemRepository,
	entries repository.StockEntryRepository,
	history repository.HistoryRepository,
) error) error {
	return fn(&fakeItems{t.s}, &fakeEntries{t.s}, &fakeHistory{t.s})
}

// ── ItemRepository ────────────────────────────────────────────────────────────

type fakeItems struct{ s *memStore }

func (r *fakeItems) Create(_ context.Context, item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItems) GetByID(_ context.Context, id string) (*entity.Item, error) {
	i, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeItems) GetBySlug(_ context.Context, slug string) (*entity.Item, error) {
	for _, i := range r.s.items {
		if i.Slug == slug {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItems) Update(_ context.Context, item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItems) Delete(_ context.Context, id string) error {
	delete(r.s.items, id)
	return nil
}

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
	return out, nil
}

func (r *fakeItems) ListRecent(_ context.Context, limit int) ([]*entity.Item, error) {
	out, _ := r.List(context.Background())
	sort.Slice(out, func(a, b int) bool { return out[a].UpdatedAt.After(out[b].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeItems) ClearCategory(_ context.Context, categoryID, updatedBy string) error {
	for _, i := range r.s.items {
		if i.Category != nil && *i.Category == categoryID {
			i.Category = nil
			i.UpdatedBy = &updatedBy
		}
	}
	return nil
}

func (r *fakeItems) ClearGroup(_ context.Context, groupID, updatedBy string) error {
	for _, i := range r.s.items {
		if i.Group != nil && *i.Group == groupID {
			i.Group = nil
			i.UpdatedBy = &updatedBy
		}
	}
	return nil
}

func (r *fakeItems) ClearUnit(_ context.Context, unitID, updatedBy string) error {
	for _, i := range r.s.items {
		if i.Unit != nil && *i.Unit == unitID {
			i.Unit = nil
			i.UpdatedBy = &updatedBy
		}
	}
	return nil
}

func (r *fakeItems) ClearDefaultLocation(_ context.Context, locationID, updatedBy string) error {
	for _, i := range r.s.items {
		if i.DefaultLocation != nil && *i.DefaultLocation == locationID {
			i.DefaultLocation = nil
			i.UpdatedBy = &updatedBy
		}
	}
	return nil
}

func (r *fakeItems) RemoveTag(_ context.Context, tagID, updatedBy string) error {
	for _, i := range r.s.items {
		var tags []string
		for _, t := range i.Tags {
			if t != tagID {
				tags = append(tags, t)
			}
		}
		i.Tags = tags
		i.UpdatedBy = &updatedBy
	}
	return nil
}

// ── StockEntryRepository ──────────────────────────────────────────────────────

type fakeEntries struct{ s *memStore }

func (r *fakeEntries) Create(_ context.Context, e *entity.StockEntry) error {
	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntries) GetByID(_ context.Context, id string) (*entity.StockEntry, error) {
	e, ok := r.s.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntries) GetByIDForUpdate(ctx context.Context, id string) (*entity.StockEntry, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeEntries) Update(_ context.Context, e *entity.StockEntry) error {
	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntries) Delete(_ context.Context, id string) error {
	delete(r.s.entries, id)
	return nil
}

func (r *fakeEntries) DeleteByItem(_ context.Context, itemID string) error {
	for id, e := range r.s.entries {
		if e.Item == itemID {
			delete(r.s.entries, id)
		}
	}
	return nil
}

func (r *fakeEntries) ListByItem(_ context.Context, itemID string, onlyActive bool) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.s.entries {
		if e.Item == itemID && (!onlyActive || !e.Consumed) {
			out = append(out, e)
		}
	}
	return out, nil
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

func (r *fakeEntries) ClearLocation(_ context.Context, locationID string) error {
	for _, e := range r.s.entries {
		if e.Location != nil && *e.Location == locationID {
			e.Location = nil
		}
	}
	return nil
}

// ── HistoryRepository ─────────────────────────────────────────────────────────

type fakeHistory struct{ s *memStore }

func (r *fakeHistory) Append(_ context.Context, h *entity.HistoryEntry) error {
	cp := *h
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *fakeHistory) RemoveByEntryAndType(_ context.Context, entryID, eventType string) error {
	for i, h := range r.s.history {
		if h.Entry == entryID && h.Type == eventType {
			r.s.history = append(r.s.history[:i], r.s.history[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeHistory) DeleteByEntry(_ context.Context, entryID string) error {
	var kept []*entity.HistoryEntry
	for _, h := range r.s.history {
		if h.Entry != entryID {
			kept = append(kept, h)
		}
	}
	r.s.history = kept
	return nil
}

func (r *fakeHistory) DeleteByItem(_ context.Context, itemID string) error {
	var kept []*entity.HistoryEntry
	for _, h := range r.s.history {
		if h.Item != itemID {
			kept = append(kept, h)
		}
	}
	r.s.history = kept
	return nil
}

func (r *fakeHistory) ListByItem(_ context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	var out []*entity.HistoryEntry
	for _, h := range r.s.history {
		if h.Item == itemID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHistory) ListByEntry(_ context.Context, entryID string) ([]*entity.HistoryEntry, error) {
	var out []*entity.HistoryEntry
	for _, h := range r.s.history {
		if h.Entry == entryID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHistory) ListRecent(_ context.Context, limit int) ([]*entity.HistoryEntry, error) {
	out := append([]*entity.HistoryEntry(nil), r.s.history...)
	sort.Slice(out, func(a, b int) bool { return out[a].Date.After(out[b].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
