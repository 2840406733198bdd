package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gildedrose/internal/inventory"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func assertShop(t *testing.T, c *Catalog) {
	t.Helper()
	require.Len(t, c.Items, 4)
	assert.Equal(t, "+5 Dexterity Vest, 10, 20", c.Items[0].String())
	assert.Equal(t, inventory.CategoryNormal, c.Items[0].Category())
	assert.Equal(t, inventory.CategoryAged, c.Items[1].Category())
	assert.Equal(t, inventory.CategoryLegendary, c.Items[2].Category())
	assert.Equal(t, 80, c.Items[2].Quality)
	assert.Equal(t, inventory.CategoryBackstage, c.Items[3].Category())
	assert.Equal(t, 15, c.Items[3].SellIn)
}

func TestLoad_YAML(t *testing.T) {
	c, err := Load("testdata/shop.yaml")
	require.NoError(t, err)
	assert.Equal(t, "testdata/shop.yaml", c.Source)
	assertShop(t, c)
}

func TestLoad_CUE(t *testing.T) {
	c, err := Load("testdata/shop.cue")
	require.NoError(t, err)
	assertShop(t, c)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/shop.yaml")
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeNotFound, le.Code)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeCatalog(t, "shop.json", `{"items": []}`)

	_, err := Load(path)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeFormat, le.Code)
	assert.Contains(t, le.Error(), ".json")
}

func TestParseYAML_UnknownField(t *testing.T) {
	_, err := ParseYAML("bad.yaml", []byte(`
items:
  - name: foo
    sell_in: 1
    quality: 2
    price: 10
`))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeParse, le.Code)
	assert.Contains(t, le.Message, "price")
}

func TestParseYAML_EmptyName(t *testing.T) {
	_, err := ParseYAML("bad.yaml", []byte(`
items:
  - name: ""
    sell_in: 1
    quality: 2
`))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeSchema, le.Code)
}

func TestParseYAML_Empty(t *testing.T) {
	c, err := ParseYAML("empty.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	c, err = ParseYAML("empty.yaml", []byte("items: []\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestParseCUE_SyntaxError(t *testing.T) {
	_, err := ParseCUE("bad.cue", []byte("items: [\n{name: \n"))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeParse, le.Code)
}

func TestParseCUE_SchemaMismatch(t *testing.T) {
	_, err := ParseCUE("bad.cue", []byte(`items: [{name: "foo", sell_in: "ten", quality: 1}]`))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeSchema, le.Code)
}

func TestParseCUE_IncompleteItem(t *testing.T) {
	_, err := ParseCUE("bad.cue", []byte(`items: [{name: "foo", sell_in: 3}]`))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeSchema, le.Code)
}

func TestParse_NormalizesNames(t *testing.T) {
	decomposed := "Cre\u0300me bru\u0302le\u0301e"
	composed := "Cr\u00e8me br\u00fbl\u00e9e"

	c, err := ParseYAML("shop.yaml", []byte("items:\n  - name: \""+decomposed+"\"\n    sell_in: 1\n    quality: 2\n"))
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, composed, c.Items[0].Name)
}

func TestFixture(t *testing.T) {
	c := Fixture()
	require.Len(t, c.Items, 9)
	assert.Equal(t, "fixture", c.Source)
	assert.Empty(t, Validate(c))
	assert.Equal(t, inventory.CategoryNormal, c.Items[8].Category())
}
