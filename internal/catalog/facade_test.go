package catalog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoparts/internal/catalog"
	"motoparts/internal/domain"
	"motoparts/internal/kv"
	"motoparts/internal/store"
)

type fixture struct {
	structured *store.Store
	kv         *kv.Store
	blob       *catalog.Blob
	state      *catalog.State
	facade     *catalog.Facade
}

// newFixture wires a facade over an in-memory structured store and a
// temp-dir kv store. quota<=0 means the default quota.
func newFixture(t *testing.T, quota int) *fixture {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	kvs := kv.Open(filepath.Join(t.TempDir(), "local.json"), quota)
	blob := catalog.NewBlob(kvs)
	state := catalog.NewState()
	return &fixture{
		structured: st,
		kv:         kvs,
		blob:       blob,
		state:      state,
		facade:     catalog.NewFacade(st, blob, state),
	}
}

func sample(id int64, name string) domain.Record {
	return domain.Record{ID: id, Name: name, Subcategory: "Pastilha Dianteira", Category: "freios", Brand: "honda", Status: domain.StatusActive}
}

func byID(records []domain.Record) map[int64]domain.Record {
	m := map[int64]domain.Record{}
	for _, r := range records {
		m[r.ID] = r
	}
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fx := newFixture(t, 0)

	want := []domain.Record{sample(1, "Pastilha"), sample(2, "Disco")}
	require.NoError(t, fx.facade.Save(want))

	got := fx.facade.Load()
	require.Len(t, got, 2)
	assert.Equal(t, byID(want), byID(got)) // order-independent
}

func TestLoadMigratesBlobIntoStructuredOnce(t *testing.T) {
	fx := newFixture(t, 0)

	seedBlob := []domain.Record{sample(10, "Corrente"), sample(11, "Coroa")}
	require.NoError(t, fx.blob.Save(seedBlob))

	// first load: structured empty, blob promoted
	got := fx.facade.Load()
	assert.Equal(t, byID(seedBlob), byID(got))

	inStore, err := fx.structured.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, byID(seedBlob), byID(inStore), "structured store must hold exactly the migrated list")

	// blob copy stays behind as backup
	inBlob, err := fx.blob.Load()
	require.NoError(t, err)
	assert.Equal(t, byID(seedBlob), byID(inBlob))

	// second load: trigger condition gone, same answer
	again := fx.facade.Load()
	assert.Equal(t, byID(seedBlob), byID(again))
}

func TestLoadFallsBackToBlobWhenStructuredDisabled(t *testing.T) {
	fx := newFixture(t, 0)
	facade := catalog.NewFacade(nil, fx.blob, fx.state)

	want := []domain.Record{sample(5, "Farol")}
	require.NoError(t, fx.blob.Save(want))

	got := facade.Load()
	assert.Equal(t, byID(want), byID(got))
}

func TestLoadReturnsSeedWhenEverythingEmpty(t *testing.T) {
	fx := newFixture(t, 0)
	got := fx.facade.Load()
	assert.Equal(t, len(domain.SeedRecords()), len(got))
	assert.Equal(t, "Pastilha de Freio", got[0].Name)
}

func TestLoadTreatsCorruptBlobAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(path, []byte("][ nonsense"), 0o644))

	blob := catalog.NewBlob(kv.Open(path, 0))
	facade := catalog.NewFacade(nil, blob, catalog.NewState())

	got := facade.Load() // must not panic or error, falls to seed
	assert.Equal(t, len(domain.SeedRecords()), len(got))
}

func TestSaveQuotaFailurePreservesPriorState(t *testing.T) {
	kvs := kv.Open(filepath.Join(t.TempDir(), "local.json"), 2048)
	blob := catalog.NewBlob(kvs)
	state := catalog.NewState()
	facade := catalog.NewFacade(nil, blob, state) // blob is the write target

	r1 := []domain.Record{sample(1, "Pastilha")}
	require.NoError(t, facade.Save(r1))

	big := sample(2, "Disco")
	big.Image = "data:image/jpeg;base64," + strings.Repeat("A", 8192)
	err := facade.Save([]domain.Record{r1[0], big})
	require.ErrorIs(t, err, kv.ErrQuotaExceeded)

	// in-memory catalog unchanged: the failed save is not treated as committed
	assert.Equal(t, byID(r1), byID(state.Records()))
	// and storage still answers with the prior list
	assert.Equal(t, byID(r1), byID(facade.Load()))
}

func TestSaveNeverFallsBackToBlob(t *testing.T) {
	fx := newFixture(t, 0)
	require.NoError(t, fx.facade.Save([]domain.Record{sample(1, "Pastilha")}))

	// the structured write must not have touched the blob key
	raw, ok, err := fx.kv.Get(catalog.ProductsKey)
	require.NoError(t, err)
	assert.False(t, ok, "blob store written during a structured save: %s", raw)
}

func TestSaveReplacesStateAndRecomputesStats(t *testing.T) {
	fx := newFixture(t, 0)

	renders := 0
	fx.state.Subscribe(func([]domain.Record) { renders++ })

	r2 := sample(2, "Vela")
	r2.Category = "motor"
	r2.Brand = "ngk"
	require.NoError(t, fx.facade.Save([]domain.Record{sample(1, "Pastilha"), r2}))

	assert.Equal(t, 1, renders)
	assert.Equal(t, catalog.Stats{Products: 2, Categories: 2, Brands: 2}, fx.state.Stats())
}

func TestBlobSaveEmptyCatalog(t *testing.T) {
	fx := newFixture(t, 0)
	require.NoError(t, fx.blob.Save(nil))
	raw, ok, err := fx.kv.Get(catalog.ProductsKey)
	require.NoError(t, err)
	require.True(t, ok)
	var arr []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &arr))
	assert.Empty(t, arr)
}
