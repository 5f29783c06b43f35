package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/medsignup/internal/catalog"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	require.Positive(t, c.Len())

	values := c.Values()
	assert.Contains(t, values, "cardiology")
	assert.Len(t, c.Options(), len(values))

	label, ok := c.Label("emergency-medicine")
	assert.True(t, ok)
	assert.Equal(t, "Emergency Medicine", label)

	_, ok = c.Label("astrology")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []catalog.Specialization
		wantErr error
	}{
		{
			name:  "trims and defaults label",
			input: "specializations:\n  - value: ' ent '\n  - value: icu\n    label: Intensive Care\n  - value: sports-medicine\n",
			want: []catalog.Specialization{
				{Value: "ent", Label: "Ent"},
				{Value: "icu", Label: "Intensive Care"},
				{Value: "sports-medicine", Label: "Sports Medicine"},
			},
		},
		{
			name:    "empty document",
			input:   "specializations: []\n",
			wantErr: catalog.ErrEmptyCatalog,
		},
		{
			name:    "empty value",
			input:   "specializations:\n  - label: Nothing\n",
			wantErr: catalog.ErrEmptyValue,
		},
		{
			name:    "duplicate",
			input:   "specializations:\n  - value: icu\n  - value: icu\n",
			wantErr: catalog.ErrDuplicateValue,
		},
		{
			name:    "invalid yaml",
			input:   "specializations: [\n",
			wantErr: catalog.ErrParseCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := catalog.Parse([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Options())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses default", func(t *testing.T) {
		c, err := catalog.Load("")
		require.NoError(t, err)
		assert.Equal(t, catalog.Default().Values(), c.Values())
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "specs.yaml")
		require.NoError(t, os.WriteFile(path, []byte("specializations:\n  - value: icu\n"), 0o600))

		c, err := catalog.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"icu"}, c.Values())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, catalog.ErrReadCatalog)
	})
}

func TestOptionsIsCopy(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	opts := c.Options()
	opts[0].Value = "changed"
	assert.NotEqual(t, "changed", c.Values()[0])
}
