package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBundles(t *testing.T) {
	res, err := CheckBundles("testdata/full")
	require.NoError(t, err)

	assert.Equal(t, []string{"b@d", "de"}, res.Locales)
	assert.Equal(t, []string{"goodbye", "hello {0}"}, res.AllKeys)

	t.Run("CheckBundles_LocaleTags", func(t *testing.T) {
		assert.Contains(t, res.BadLocaleTags, "b@d")
		assert.NotContains(t, res.BadLocaleTags, "de")
	})

	t.Run("CheckBundles_KeyAlignment", func(t *testing.T) {
		assert.Equal(t, []string{"goodbye"}, res.MissingKeys["de"])
		assert.Equal(t, []string{"extra"}, res.ExtraKeys["de"])
		assert.Empty(t, res.MissingKeys["b@d"])
		assert.Empty(t, res.ExtraKeys["b@d"])
	})

	t.Run("CheckBundles_PlaceholderDrift", func(t *testing.T) {
		assert.Equal(t, []string{"1"}, res.PlaceholderDrift["de"]["hello {0}"])
		assert.Empty(t, res.PlaceholderDrift["b@d"])
	})

	t.Run("CheckBundles_EmptyMessages", func(t *testing.T) {
		assert.Equal(t, []string{"hello {0}"}, res.EmptyMessages["b@d"])
		assert.Empty(t, res.EmptyMessages["de"])
	})

	t.Run("CheckBundles_DuplicateKeys", func(t *testing.T) {
		// de is defined by both a .json and a .yaml file
		assert.Equal(t, []string{"hello {0}"}, res.DuplicateKeys["de"])
	})
}

func TestCheckBundles_NoBundles(t *testing.T) {
	_, err := CheckBundles(t.TempDir())
	require.Error(t, err)
}

func TestParseBundleName(t *testing.T) {
	cases := []struct {
		base   string
		locale string
		ok     bool
	}{
		{"bundle.l10n.json", "", true},
		{"bundle.l10n.yaml", "", true},
		{"bundle.l10n.de.json", "de", true},
		{"bundle.l10n.zh-CN.toml", "zh-CN", true},
		{"bundle.l10n.de.txt", "", false},
		{"messages.de.json", "", false},
	}

	for _, tc := range cases {
		locale, ok := parseBundleName(tc.base)
		assert.Equal(t, tc.ok, ok, tc.base)
		assert.Equal(t, tc.locale, locale, tc.base)
	}
}
