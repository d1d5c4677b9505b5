package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	ids := []string{
		"aaaa1111-0000-0000-0000-000000000000",
		"aaaa2222-0000-0000-0000-000000000000",
		"bbbb0000-0000-0000-0000-000000000000",
	}

	t.Run("exact match", func(t *testing.T) {
		got, err := resolveID("task", ids[0], ids)
		require.NoError(t, err)
		assert.Equal(t, ids[0], got)
	})

	t.Run("unique prefix", func(t *testing.T) {
		got, err := resolveID("task", "bbbb", ids)
		require.NoError(t, err)
		assert.Equal(t, ids[2], got)
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := resolveID("task", "aaaa", ids)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := resolveID("task", "cccc", ids)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := resolveID("task", "", ids)
		require.Error(t, err)
	})
}
