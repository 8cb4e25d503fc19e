// Package meta contiene el agregador de stock: conteos activos, items y
// grupos bajo objetivo, ventanas de vencimiento y el resumen del dashboard.
package meta

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
	"github.com/jhoicas/hamster-api/internal/domain/repository"
)

const (
	maxLatestActions = 10 // eventos de historial en el dashboard
	maxRecentChanges = 5  // entidades recientes por lista
)

// UseCase construye el agregado de GET /api/meta. Todas las lecturas son
// instantáneas punto-en-el-tiempo contra la persistencia, sin caché.
//
// Ventanas de vencimiento (decisión documentada): "vencido" es
// bestBefore <= inicioDeDía(hoy); "casi vencido" es estrictamente posterior a
// hoy y <= hoy+span. Las ventanas son mutuamente excluyentes e incluyen las
// entradas consumidas: el vencimiento es independiente del consumo.
type UseCase struct {
	items      repository.ItemRepository
	groups     repository.GroupRepository
	categories repository.CategoryRepository
	locations  repository.StorageLocationRepository
	entries    repository.StockEntryRepository
	history    repository.HistoryRepository

	apiVersion  string
	defaultSpan int // días, configurable por env
}

// NewUseCase construye el agregador.
func NewUseCase(
	items repository.ItemRepository,
	groups repository.GroupRepository,
	categories repository.CategoryRepository,
	locations repository.StorageLocationRepository,
	entries repository.StockEntryRepository,
	history repository.HistoryRepository,
	apiVersion string,
	defaultSpan int,
) *UseCase {
	return &UseCase{
		items:       items,
		groups:      groups,
		categories:  categories,
		locations:   locations,
		entries:     entries,
		history:     history,
		apiVersion:  apiVersion,
		defaultSpan: defaultSpan,
	}
}

// Fetch arma el agregado del dashboard. spanDays <= 0 usa el valor por defecto.
func (uc *UseCase) Fetch(ctx context.Context, spanDays int) (*dto.MetaResponse, error) {
	if spanDays <= 0 {
		spanDays = uc.defaultSpan
	}
	today := startOfDay(time.Now())

	// Los conteos activos por item se usan tanto en "bajo objetivo" como al
	// mapear items recientes; una sola consulta agrupada para ambos.
	counts, err := uc.entries.ActiveCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("meta: conteos activos: %w", err)
	}

	// ── Lecturas independientes en paralelo ───────────────────────────────────
	type expiryResult struct {
		expired, almost []*entity.StockEntry
		err             error
	}
	type belowResult struct {
		items  []*entity.Item
		groups []*entity.Group
		err    error
	}
	type totalsResult struct {
		items, stock int
		err          error
	}
	type recentsResult struct {
		actions    []*entity.HistoryEntry
		items      []*entity.Item
		groups     []*entity.Group
		categories []*entity.Category
		locations  []*entity.StorageLocation
		err        error
	}

	expiryCh := make(chan expiryResult, 1)
	belowCh := make(chan belowResult, 1)
	totalsCh := make(chan totalsResult, 1)
	recentsCh := make(chan recentsResult, 1)

	go func() {
		until := today.AddDate(0, 0, spanDays)
		all, err := uc.entries.ListExpiring(ctx, until)
		if err != nil {
			expiryCh <- expiryResult{err: fmt.Errorf("meta: vencimientos: %w", err)}
			return
		}
		expired, almost := splitByExpiry(all, today)
		expiryCh <- expiryResult{expired: expired, almost: almost}
	}()

	go func() {
		var r belowResult
		r.items, r.err = uc.itemsBelowTarget(ctx, counts)
		if r.err == nil {
			r.groups, r.err = uc.groupsBelowTarget(ctx)
		}
		belowCh <- r
	}()

	go func() {
		var r totalsResult
		r.items, r.err = uc.items.Count(ctx)
		if r.err == nil {
			r.stock, r.err = uc.entries.CountActiveTotal(ctx)
		}
		totalsCh <- r
	}()

	go func() {
		var r recentsResult
		r.actions, r.err = uc.history.ListRecent(ctx, maxLatestActions)
		if r.err == nil {
			r.items, r.err = uc.items.ListRecent(ctx, maxRecentChanges)
		}
		if r.err == nil {
			r.groups, r.err = uc.groups.ListRecent(ctx, maxRecentChanges)
		}
		if r.err == nil {
			r.categories, r.err = uc.categories.ListRecent(ctx, maxRecentChanges)
		}
		if r.err == nil {
			r.locations, r.err = uc.locations.ListRecent(ctx, maxRecentChanges)
		}
		recentsCh <- r
	}()

	expiry := <-expiryCh
	below := <-belowCh
	totals := <-totalsCh
	recents := <-recentsCh

	if expiry.err != nil {
		return nil, expiry.err
	}
	if below.err != nil {
		return nil, below.err
	}
	if totals.err != nil {
		return nil, fmt.Errorf("meta: totales: %w", totals.err)
	}
	if recents.err != nil {
		return nil, fmt.Errorf("meta: recientes: %w", recents.err)
	}

	// ── Construir la respuesta ────────────────────────────────────────────────
	out := &dto.MetaResponse{
		APIVersion:         uc.apiVersion,
		AlmostExpiredSpan:  spanDays,
		TotalItems:         totals.items,
		TotalStock:         totals.stock,
		ExpiredStock:       dto.StockEntryResponsesFrom(expiry.expired),
		AlmostExpiredStock: dto.StockEntryResponsesFrom(expiry.almost),
		BelowStockItems:    itemResponses(below.items, counts),
		BelowStockGroups:   groupResponses(below.groups),
		LatestActions:      dto.HistoryResponsesFrom(recents.actions),
		RecentItemChanges:  itemResponses(recents.items, counts),
		RecentGroupChanges: groupResponses(recents.groups),
	}
	out.RecentCategoryChanges = make([]dto.CategoryResponse, 0, len(recents.categories))
	for _, c := range recents.categories {
		out.RecentCategoryChanges = append(out.RecentCategoryChanges, dto.CategoryResponseFrom(c))
	}
	out.RecentLocationChanges = make([]dto.LocationResponse, 0, len(recents.locations))
	for _, l := range recents.locations {
		out.RecentLocationChanges = append(out.RecentLocationChanges, dto.LocationResponseFrom(l))
	}
	return out, nil
}

// itemsBelowTarget devuelve los items con objetivo >= 1 cuyo stock activo es
// estrictamente menor que el objetivo. Items con targetStock 0 nunca aparecen.
func (uc *UseCase) itemsBelowTarget(ctx context.Context, counts map[string]int) ([]*entity.Item, error) {
	candidates, err := uc.items.ListWithTarget(ctx)
	if err != nil {
		return nil, fmt.Errorf("meta: items con objetivo: %w", err)
	}
	below := make([]*entity.Item, 0)
	for _, i := range candidates {
		if counts[i.ID] < i.TargetStock {
			below = append(below, i)
		}
	}
	return below, nil
}

// groupsBelowTarget compara el objetivo de cada grupo con la suma del stock
// activo de sus items, calculada con una única consulta agrupada.
func (uc *UseCase) groupsBelowTarget(ctx context.Context) ([]*entity.Group, error) {
	candidates, err := uc.groups.ListWithTarget(ctx)
	if err != nil {
		return nil, fmt.Errorf("meta: grupos con objetivo: %w", err)
	}
	groupCounts, err := uc.entries.ActiveCountsByGroup(ctx)
	if err != nil {
		return nil, fmt.Errorf("meta: conteos por grupo: %w", err)
	}
	below := make([]*entity.Group, 0)
	for _, g := range candidates {
		if groupCounts[g.ID] < g.TargetStock {
			below = append(below, g)
		}
	}
	return below, nil
}

// splitByExpiry separa las entradas en vencidas (bestBefore <= today) y casi
// vencidas (el resto de la ventana). Nunca se solapan.
func splitByExpiry(list []*entity.StockEntry, today time.Time) (expired, almost []*entity.StockEntry) {
	expired = make([]*entity.StockEntry, 0)
	almost = make([]*entity.StockEntry, 0)
	for _, e := range list {
		if !e.BestBefore.After(today) {
			expired = append(expired, e)
		} else {
			almost = append(almost, e)
		}
	}
	return expired, almost
}

func itemResponses(list []*entity.Item, counts map[string]int) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, dto.ItemResponseFrom(i, counts[i.ID]))
	}
	return out
}

func groupResponses(list []*entity.Group) []dto.GroupResponse {
	out := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.GroupResponseFrom(g))
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
