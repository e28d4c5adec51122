package taxonomy_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoparts/internal/kv"
	"motoparts/internal/taxonomy"
)

// stubRefs answers reference counts from fixed maps.
type stubRefs struct {
	categories map[string]int
	brands     map[string]int
}

func (s stubRefs) CountByCategory(key string) int { return s.categories[key] }
func (s stubRefs) CountByBrand(brand string) int  { return s.brands[brand] }

func newTaxService(t *testing.T, refs taxonomy.RefCounter) *taxonomy.Service {
	t.Helper()
	if refs == nil {
		refs = stubRefs{}
	}
	store := kv.Open(filepath.Join(t.TempDir(), "local.json"), 0)
	return taxonomy.NewService(store, refs)
}

func TestResolvePrecedence(t *testing.T) {
	base := taxonomy.Taxonomy{
		"freios": {Label: "Freios", Items: []string{"Pastilha Dianteira"}},
		"motor":  {Label: "Motor", Items: []string{"Vela de Ignição"}},
	}
	overlay := taxonomy.Taxonomy{
		"freios":   {Label: "Sistema de Freio", Items: []string{"Pastilha Dianteira", "Disco Dianteiro"}},
		"fantasma": {Label: "Nunca Existiu", Items: []string{"x"}},
	}
	custom := taxonomy.Taxonomy{
		"led":   {Label: "Iluminação LED", Items: []string{"Farol LED"}},
		"motor": {Label: "Motor Custom", Items: []string{"Pistão Forjado"}},
	}

	out := taxonomy.Resolve(base, overlay, custom)

	assert.Equal(t, "Sistema de Freio", out["freios"].Label, "overlay wins over base")
	assert.Equal(t, "Motor Custom", out["motor"].Label, "custom wins over everything")
	assert.Equal(t, "Iluminação LED", out["led"].Label)
	assert.NotContains(t, out, "fantasma", "overlay entries for unknown base keys are ignored")
}

func TestResolveTombstoneDeletesBuiltin(t *testing.T) {
	base := taxonomy.Defaults()
	overlay := taxonomy.Taxonomy{"ferramentas": {}}

	out := taxonomy.Resolve(base, overlay, nil)

	assert.NotContains(t, out, "ferramentas")
	assert.Contains(t, base, "ferramentas", "inputs are never mutated")
}

func TestCategoryOf(t *testing.T) {
	svc := newTaxService(t, nil)

	assert.Equal(t, "freios", svc.CategoryOf("Pastilha Dianteira"))
	assert.Equal(t, "transmissao", svc.CategoryOf("Kit Relação"))
	assert.Equal(t, "", svc.CategoryOf("Subcategoria Inexistente"))
	assert.Equal(t, "", svc.CategoryOf(""))
}

func TestCategoryOfDuplicateSubcategoryIsDeterministic(t *testing.T) {
	svc := newTaxService(t, nil)

	// "Vela de Ignição" appears under both eletrica and motor; the sorted
	// key order makes eletrica the stable answer.
	for i := 0; i < 10; i++ {
		assert.Equal(t, "eletrica", svc.CategoryOf("Vela de Ignição"))
	}
}

func TestAddCategory(t *testing.T) {
	svc := newTaxService(t, nil)

	require.NoError(t, svc.AddCategory("led", "Iluminação LED", []string{"Farol LED", "Fita LED"}))
	assert.Equal(t, "led", svc.CategoryOf("Farol LED"))

	err := svc.AddCategory("freios", "Duplicata", nil)
	assert.Error(t, err, "colliding with a built-in key is rejected")
	err = svc.AddCategory("led", "Duplicata", nil)
	assert.Error(t, err, "colliding with an existing custom key is rejected")
	err = svc.AddCategory("", "Sem Chave", nil)
	assert.Error(t, err)
}

func TestUpdateCategoryBuiltinLandsInOverlay(t *testing.T) {
	svc := newTaxService(t, nil)

	require.NoError(t, svc.UpdateCategory("freios", "Sistema de Freio", []string{"Pastilha Especial"}))

	resolved := svc.Categories()
	assert.Equal(t, "Sistema de Freio", resolved["freios"].Label)
	assert.Equal(t, []string{"Pastilha Especial"}, resolved["freios"].Items)
	assert.Equal(t, "freios", svc.CategoryOf("Pastilha Especial"))
	assert.Equal(t, "", svc.CategoryOf("Pastilha Dianteira"), "replaced item list drops the old entries")
}

func TestUpdateCategoryUnknownKey(t *testing.T) {
	svc := newTaxService(t, nil)
	assert.Error(t, svc.UpdateCategory("nope", "Nada", nil))
}

func TestDeleteCategoryGuardedByReferences(t *testing.T) {
	svc := newTaxService(t, stubRefs{categories: map[string]int{"freios": 3}})

	err := svc.DeleteCategory("freios")
	var refErr *taxonomy.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "category", refErr.Kind)
	assert.Equal(t, 3, refErr.Count)
	assert.Contains(t, svc.Categories(), "freios")
}

func TestDeleteBuiltinCategorySurvivesReload(t *testing.T) {
	store := kv.Open(filepath.Join(t.TempDir(), "local.json"), 0)
	svc := taxonomy.NewService(store, stubRefs{})

	require.NoError(t, svc.DeleteCategory("ferramentas"))
	assert.NotContains(t, svc.Categories(), "ferramentas")

	// a fresh service over the same kv file still sees the deletion
	again := taxonomy.NewService(store, stubRefs{})
	assert.NotContains(t, again.Categories(), "ferramentas")
}

func TestDeleteCustomCategory(t *testing.T) {
	svc := newTaxService(t, nil)
	require.NoError(t, svc.AddCategory("led", "LED", []string{"Farol LED"}))
	require.NoError(t, svc.DeleteCategory("led"))
	assert.NotContains(t, svc.Categories(), "led")
	assert.Error(t, svc.DeleteCategory("led"), "second delete reports unknown key")
}
