package meta_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hamster-api/internal/application/dto"
	"github.com/jhoicas/hamster-api/internal/application/meta"
	"github.com/jhoicas/hamster-api/internal/domain/entity"
)

const (
	testVersion = "1.0.0-test"
	defaultSpan = 5
)

func newMetaUC(s *metaStore) *meta.UseCase {
	return meta.NewUseCase(
		&fakeItems{s}, &fakeGroups{s}, &fakeCategories{s}, &fakeLocations{s},
		&fakeEntries{s}, &fakeHistory{s},
		testVersion, defaultSpan,
	)
}

// day devuelve el inicio del día de hoy desplazado en días.
func day(offset int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, offset)
}

func addItem(s *metaStore, id string, target int, group *string) {
	s.items[id] = &entity.Item{ID: id, Name: id, Slug: id, TargetStock: target, Group: group}
}

func addEntry(s *metaStore, id, item string, bestBefore time.Time, consumed bool) {
	s.entries[id] = &entity.StockEntry{ID: id, Item: item, BestBefore: bestBefore, Consumed: consumed}
}

func strPtr(v string) *string { return &v }

func ids(t *testing.T, list []dto.StockEntryResponse) []string {
	t.Helper()
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Bajo objetivo
// ──────────────────────────────────────────────────────────────────────────────

func TestFetch_ItemsBajoObjetivo(t *testing.T) {
	s := newMetaStore()
	addItem(s, "escaso", 3, nil)    // 1 activa < 3
	addItem(s, "sin-meta", 0, nil)  // objetivo 0: nunca aparece
	addItem(s, "cubierto", 2, nil)  // 2 activas >= 2
	addEntry(s, "e1", "escaso", day(30), false)
	addEntry(s, "e2", "cubierto", day(30), false)
	addEntry(s, "e3", "cubierto", day(30), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, out.BelowStockItems, 1)
	assert.Equal(t, "escaso", out.BelowStockItems[0].ID)
	assert.Equal(t, 1, out.BelowStockItems[0].Stock, "el item bajo objetivo lleva su conteo activo")
}

// Consumir una entrada mueve el item hacia "bajo objetivo"; las consumidas no
// cuentan para el stock activo.
func TestFetch_ConsumirMueveBajoObjetivo(t *testing.T) {
	s := newMetaStore()
	addItem(s, "leche", 2, nil)
	addEntry(s, "e1", "leche", day(30), false)
	addEntry(s, "e2", "leche", day(30), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, out.BelowStockItems)

	s.entries["e2"].Consumed = true

	out, err = uc.Fetch(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, out.BelowStockItems, 1)
	assert.Equal(t, "leche", out.BelowStockItems[0].ID)
}

// El objetivo de un grupo se compara contra la suma del stock activo de todos
// sus items.
func TestFetch_GruposBajoObjetivo(t *testing.T) {
	s := newMetaStore()
	s.groups["pasta"] = &entity.Group{ID: "pasta", Name: "Pasta", TargetStock: 3}
	s.groups["arroz"] = &entity.Group{ID: "arroz", Name: "Arroz", TargetStock: 1}
	addItem(s, "espagueti", 0, strPtr("pasta"))
	addItem(s, "macarrones", 0, strPtr("pasta"))
	addItem(s, "basmati", 0, strPtr("arroz"))
	addEntry(s, "e1", "espagueti", day(30), false)
	addEntry(s, "e2", "macarrones", day(30), false)
	addEntry(s, "e3", "basmati", day(30), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	// pasta: 2 activas < 3; arroz: 1 >= 1.
	require.Len(t, out.BelowStockGroups, 1)
	assert.Equal(t, "pasta", out.BelowStockGroups[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventanas de vencimiento
// ──────────────────────────────────────────────────────────────────────────────

// bestBefore de hoy ya cuenta como vencido; mañana hasta hoy+span es casi
// vencido; más allá queda fuera. El vencimiento es independiente del consumo:
// las consumidas también aparecen en su ventana.
func TestFetch_VentanasDeVencimiento(t *testing.T) {
	s := newMetaStore()
	addItem(s, "yogur", 0, nil)
	addEntry(s, "ayer", "yogur", day(-1), false)
	addEntry(s, "hoy", "yogur", day(0), false)
	addEntry(s, "manana", "yogur", day(1), false)
	addEntry(s, "borde", "yogur", day(defaultSpan), false)
	addEntry(s, "lejos", "yogur", day(defaultSpan+1), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	expired := ids(t, out.ExpiredStock)
	almost := ids(t, out.AlmostExpiredStock)

	assert.ElementsMatch(t, []string{"ayer", "hoy"}, expired)
	assert.ElementsMatch(t, []string{"manana", "borde"}, almost)
}

// Una entrada consumida y vencida sigue listada como vencida; el conteo de
// stock activo, en cambio, no la incluye.
func TestFetch_ConsumidaVencidaSigueVencida(t *testing.T) {
	s := newMetaStore()
	addItem(s, "yogur", 0, nil)
	addEntry(s, "vencida-consumida", "yogur", day(-2), true)
	addEntry(s, "casi-consumida", "yogur", day(1), true)
	addEntry(s, "activa", "yogur", day(30), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"vencida-consumida"}, ids(t, out.ExpiredStock))
	assert.ElementsMatch(t, []string{"casi-consumida"}, ids(t, out.AlmostExpiredStock))
	assert.Equal(t, 1, out.TotalStock, "las consumidas no cuentan como stock activo")
}

// El span del query param manda; <= 0 cae al valor configurado.
func TestFetch_SpanPersonalizado(t *testing.T) {
	s := newMetaStore()
	addItem(s, "pan", 0, nil)
	addEntry(s, "e1", "pan", day(10), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, 15, out.AlmostExpiredSpan)
	assert.ElementsMatch(t, []string{"e1"}, ids(t, out.AlmostExpiredStock))

	out, err = uc.Fetch(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, defaultSpan, out.AlmostExpiredSpan)
	assert.Empty(t, out.AlmostExpiredStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales y recientes
// ──────────────────────────────────────────────────────────────────────────────

func TestFetch_TotalesYVersion(t *testing.T) {
	s := newMetaStore()
	addItem(s, "a", 0, nil)
	addItem(s, "b", 0, nil)
	addEntry(s, "e1", "a", day(30), false)
	addEntry(s, "e2", "a", day(30), true) // consumida: fuera del total de stock
	addEntry(s, "e3", "b", day(30), false)
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, testVersion, out.APIVersion)
	assert.Equal(t, 2, out.TotalItems)
	assert.Equal(t, 2, out.TotalStock)
}

// latestActions se limita a 10 eventos, los más recientes primero.
func TestFetch_LatestActionsLimitado(t *testing.T) {
	s := newMetaStore()
	base := day(0)
	for i := 0; i < 12; i++ {
		s.history = append(s.history, &entity.HistoryEntry{
			ID:    fmt.Sprintf("h%02d", i),
			Date:  base.Add(time.Duration(i) * time.Minute),
			Type:  entity.HistoryAdded,
			Entry: "e1",
			Item:  "a",
			User:  "u1",
		})
	}
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, out.LatestActions, 10)
	assert.Equal(t, "h11", out.LatestActions[0].ID, "el evento más reciente va primero")
	assert.Equal(t, "h02", out.LatestActions[9].ID)
}

// Las listas de cambios recientes llevan a lo sumo 5 elementos.
func TestFetch_RecentChangesLimitado(t *testing.T) {
	s := newMetaStore()
	base := day(0)
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("item-%d", i)
		s.items[id] = &entity.Item{ID: id, Name: id, Slug: id, UpdatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	uc := newMetaUC(s)

	out, err := uc.Fetch(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, out.RecentItemChanges, 5)
	assert.Equal(t, "item-6", out.RecentItemChanges[0].ID, "el más recientemente modificado primero")
	assert.Equal(t, 7, out.TotalItems)
}
