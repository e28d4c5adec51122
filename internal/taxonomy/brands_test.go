package taxonomy_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoparts/internal/taxonomy"
)

func TestBrandsStartFromBuiltins(t *testing.T) {
	svc := newTaxService(t, nil)
	brands := svc.Brands()

	assert.True(t, sort.StringsAreSorted(brands))
	assert.Contains(t, brands, "honda")
	assert.Contains(t, brands, "cobreq")
	assert.ElementsMatch(t, taxonomy.BuiltinBrands(), brands)
}

func TestAddBrand(t *testing.T) {
	svc := newTaxService(t, nil)

	require.NoError(t, svc.AddBrand("  AllParts  "))
	assert.Contains(t, svc.Brands(), "allparts", "stored trimmed and lowercase")

	assert.Error(t, svc.AddBrand("allparts"), "duplicate custom brand")
	assert.Error(t, svc.AddBrand("honda"), "duplicate built-in brand")
	assert.Error(t, svc.AddBrand("   "))
}

func TestRemoveBrandGuardedByReferences(t *testing.T) {
	svc := newTaxService(t, stubRefs{brands: map[string]int{"honda": 2}})

	err := svc.RemoveBrand("honda")
	var refErr *taxonomy.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "brand", refErr.Kind)
	assert.Equal(t, 2, refErr.Count)
	assert.Contains(t, svc.Brands(), "honda")
}

func TestRemoveBuiltinBrandIsDurable(t *testing.T) {
	svc := newTaxService(t, nil)

	require.NoError(t, svc.RemoveBrand("yuasa"))
	assert.NotContains(t, svc.Brands(), "yuasa")

	// removing again is a no-op, not an error
	require.NoError(t, svc.RemoveBrand("yuasa"))
}

func TestRemoveCustomBrandDropsFromCustomList(t *testing.T) {
	svc := newTaxService(t, nil)
	require.NoError(t, svc.AddBrand("allparts"))
	require.NoError(t, svc.RemoveBrand("allparts"))
	assert.NotContains(t, svc.Brands(), "allparts")

	// the name can come back later as a fresh custom brand
	require.NoError(t, svc.AddBrand("allparts"))
	assert.Contains(t, svc.Brands(), "allparts")
}

func TestRenameBrandCustom(t *testing.T) {
	svc := newTaxService(t, nil)
	require.NoError(t, svc.AddBrand("allparts"))

	require.NoError(t, svc.RenameBrand("allparts", "MegaParts"))

	brands := svc.Brands()
	assert.Contains(t, brands, "megaparts")
	assert.NotContains(t, brands, "allparts")
}

func TestRenameBrandBuiltin(t *testing.T) {
	svc := newTaxService(t, nil)

	require.NoError(t, svc.RenameBrand("yuasa", "yuasa brasil"))

	brands := svc.Brands()
	assert.Contains(t, brands, "yuasa brasil")
	assert.NotContains(t, brands, "yuasa")
}

func TestRenameBrandRejectsCollision(t *testing.T) {
	svc := newTaxService(t, nil)
	assert.Error(t, svc.RenameBrand("yuasa", "honda"))
	assert.NoError(t, svc.RenameBrand("honda", "HONDA"), "case-only rename is a no-op")
	assert.Contains(t, svc.Brands(), "honda")
}
