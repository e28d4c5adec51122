package catalog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoparts/internal/catalog"
	"motoparts/internal/domain"
	"motoparts/internal/taxonomy"
)

func newService(t *testing.T) (*catalog.Service, *fixture) {
	t.Helper()
	fx := newFixture(t, 0)
	tax := taxonomy.NewService(fx.kv, fx.state)
	return catalog.NewService(fx.facade, tax), fx
}

func TestUpsertCreateAssignsIDAndCategory(t *testing.T) {
	svc, fx := newService(t)

	saved, err := svc.Upsert(domain.Record{
		Name:        "Pastilha X",
		Subcategory: "Pastilha Dianteira",
		Brand:       "cobreq",
	})
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	assert.Equal(t, "freios", saved.Category, "category derives from the subcategory")
	assert.Equal(t, fmt.Sprintf("AUTO-%d", saved.ID), saved.Code)
	assert.Equal(t, domain.StatusActive, saved.Status)

	persisted, err := fx.structured.LoadAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, saved.ID, persisted[0].ID)
}

func TestUpsertIDsStayMonotonic(t *testing.T) {
	svc, _ := newService(t)

	seen := map[int64]bool{}
	var last int64
	for i := 0; i < 5; i++ {
		saved, err := svc.Upsert(domain.Record{Name: "Vela", Subcategory: "Vela de Ignição"})
		require.NoError(t, err)
		assert.False(t, seen[saved.ID], "duplicate id %d", saved.ID)
		assert.Greater(t, saved.ID, last)
		seen[saved.ID] = true
		last = saved.ID
	}
}

func TestUpsertReplaceIsWholesale(t *testing.T) {
	svc, fx := newService(t)

	saved, err := svc.Upsert(domain.Record{Name: "Disco", Subcategory: "Disco Dianteiro", Description: "original", Stock: 4})
	require.NoError(t, err)

	// the edit omits description and stock: the stored record must not keep them
	saved.Description = ""
	saved.Stock = 0
	saved.Name = "Disco Ventilado"
	_, err = svc.Upsert(saved)
	require.NoError(t, err)

	records := fx.state.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Disco Ventilado", records[0].Name)
	assert.Empty(t, records[0].Description)
	assert.Zero(t, records[0].Stock)
}

func TestUpsertRejectsOverfullGallery(t *testing.T) {
	svc, fx := newService(t)

	r := domain.Record{Name: "Farol", Subcategory: "Farol"}
	for i := 0; i <= domain.GalleryMax; i++ {
		r.Gallery = append(r.Gallery, fmt.Sprintf("data:image/jpeg;base64,img%d", i))
	}
	_, err := svc.Upsert(r)
	require.ErrorIs(t, err, catalog.ErrGalleryFull)

	// rejected before any persistence
	n, err := fx.structured.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpsertGalleryAtCapIsAccepted(t *testing.T) {
	svc, _ := newService(t)
	r := domain.Record{Name: "Farol", Subcategory: "Farol"}
	for i := 0; i < domain.GalleryMax; i++ {
		r.Gallery = append(r.Gallery, fmt.Sprintf("img%d", i))
	}
	_, err := svc.Upsert(r)
	require.NoError(t, err)
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	svc, fx := newService(t)
	a, err := svc.Upsert(domain.Record{Name: "Corrente", Subcategory: "Corrente"})
	require.NoError(t, err)
	b, err := svc.Upsert(domain.Record{Name: "Coroa", Subcategory: "Coroa"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(a.ID))

	records := fx.state.Records()
	require.Len(t, records, 1)
	assert.Equal(t, b.ID, records[0].ID)
}

func TestImportReplacesCatalog(t *testing.T) {
	svc, fx := newService(t)
	_, err := svc.Upsert(domain.Record{Name: "Old", Subcategory: "Corrente"})
	require.NoError(t, err)

	doc := `[
		{"id": 100, "name": "Pastilha", "category": "freios", "brand": "cobreq"},
		{"id": 101, "name": "Vela", "category": "motor", "brand": "ngk", "application": "CG 150, Fan 150"}
	]`
	n, err := svc.Import(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records := fx.state.Records()
	require.Len(t, records, 2)
	imported := byID(records)
	assert.Equal(t, []string{"CG 150", "Fan 150"}, imported[101].Applications, "legacy fields fold in on import")
}

func TestImportRejectsNonArray(t *testing.T) {
	svc, fx := newService(t)
	before, err := svc.Upsert(domain.Record{Name: "Keep", Subcategory: "Corrente"})
	require.NoError(t, err)

	for _, doc := range []string{`{"foo": 1}`, `"texto"`, `42`, ``, `  `} {
		_, err := svc.Import(strings.NewReader(doc))
		assert.ErrorIs(t, err, catalog.ErrFormat, "input %q", doc)
	}

	records := fx.state.Records()
	require.Len(t, records, 1)
	assert.Equal(t, before.ID, records[0].ID, "failed import leaves the catalog untouched")
}

func TestImportRejectsMalformedArray(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Import(strings.NewReader(`[{"id": "not a number"}]`))
	assert.ErrorIs(t, err, catalog.ErrFormat)
}

func TestExportIsPrettyPrintedArray(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Upsert(domain.Record{Name: "Pastilha", Subcategory: "Pastilha Dianteira"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "["))
	assert.Contains(t, out, "\n  {")

	var records []domain.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Pastilha", records[0].Name)
}

func TestExportFilenameCarriesDate(t *testing.T) {
	svc, _ := newService(t)
	want := fmt.Sprintf("motoparts-produtos-%s.json", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, svc.ExportFilename())
}

func TestUpsertConcurrentWritesAllSurvive(t *testing.T) {
	svc, fx := newService(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Upsert(domain.Record{Name: fmt.Sprintf("Peça %d", i), Subcategory: "Corrente"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, fx.state.Records(), n, "no concurrent upsert may overwrite another")
	count, err := fx.structured.Count()
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestRenameBrandRejectedCollisionLeavesRecordsUntouched(t *testing.T) {
	svc, fx := newService(t)
	_, err := svc.Upsert(domain.Record{Name: "Pastilha", Subcategory: "Pastilha Dianteira", Brand: "honda"})
	require.NoError(t, err)

	// both names are built in, so the registry must reject the rename
	err = svc.RenameBrand("honda", "yamaha")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	records := fx.state.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "honda", records[0].Brand, "a rejected rename must not rewrite records")

	persisted, err := fx.structured.LoadAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "honda", persisted[0].Brand)
}

func TestRenameBrandRewritesRecords(t *testing.T) {
	svc, fx := newService(t)
	tax := taxonomy.NewService(fx.kv, fx.state)

	require.NoError(t, tax.AddBrand("allparts"))
	_, err := svc.Upsert(domain.Record{Name: "Pastilha", Subcategory: "Pastilha Dianteira", Brand: "Allparts"})
	require.NoError(t, err)

	require.NoError(t, svc.RenameBrand("allparts", "megaparts"))

	records := fx.state.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "megaparts", records[0].Brand)

	brands := tax.Brands()
	assert.Contains(t, brands, "megaparts")
	assert.NotContains(t, brands, "allparts")
}
