package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_KnownLocales(t *testing.T) {
	en, ok := Labels("en")
	require.True(t, ok)
	assert.Equal(t, "Fair Dashboard", en["dashboard"])

	es, ok := Labels("es")
	require.True(t, ok)
	assert.Equal(t, "Panel de Ferias", es["dashboard"])
}

func TestLabels_SameKeySets(t *testing.T) {
	en, _ := Labels("en")
	es, _ := Labels("es")

	require.Equal(t, len(en), len(es))
	for key := range en {
		assert.Contains(t, es, key)
	}
}

func TestLabels_UnknownLocale(t *testing.T) {
	_, ok := Labels("fr")

	assert.False(t, ok)
}

func TestLabels_ReturnsCopy(t *testing.T) {
	first, _ := Labels("en")
	first["dashboard"] = "tampered"

	second, _ := Labels("en")
	assert.Equal(t, "Fair Dashboard", second["dashboard"])
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("es"))
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
}

func TestDefaultLocale(t *testing.T) {
	assert.Equal(t, "es", DefaultLocale)
}
