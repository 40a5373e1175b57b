package ipallow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/seckit/pkg/ipallow"
)

func TestAllowlistMatch(t *testing.T) {
	t.Parallel()

	t.Run("exact literal match", func(t *testing.T) {
		t.Parallel()

		al, err := ipallow.New([]string{"192.0.2.10", "203.0.113.7"})
		require.NoError(t, err)

		assert.True(t, al.Match("192.0.2.10"))
		assert.True(t, al.Match("203.0.113.7"))
		assert.False(t, al.Match("192.0.2.11"))
	})

	t.Run("wildcard segment match", func(t *testing.T) {
		t.Parallel()

		al, err := ipallow.New([]string{"192.168.1.*"})
		require.NoError(t, err)

		assert.True(t, al.Match("192.168.1.42"))
		assert.True(t, al.Match("192.168.1.1"))
		assert.False(t, al.Match("192.168.2.1"))
		assert.False(t, al.Match("10.168.1.42"))
	})

	t.Run("wildcard does not match extra segments", func(t *testing.T) {
		t.Parallel()

		al, err := ipallow.New([]string{"192.168.1.*"})
		require.NoError(t, err)

		assert.False(t, al.Match("192.168.1.42.99"))
	})

	t.Run("empty allowlist admits everyone", func(t *testing.T) {
		t.Parallel()

		al, err := ipallow.New(nil)
		require.NoError(t, err)

		assert.True(t, al.Empty())
		assert.True(t, al.Match("198.51.100.2"))
	})

	t.Run("blank entries are ignored", func(t *testing.T) {
		t.Parallel()

		al, err := ipallow.New([]string{" ", ""})
		require.NoError(t, err)
		assert.True(t, al.Empty())
	})
}
