package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewDecimal(t *testing.T) {
	t.Run("float 0.1 converts exactly, not via binary mantissa", func(t *testing.T) {
		d, err := NewDecimal(0.1)
		require.NoError(t, err)
		require.Equal(t, "0.1", d.String())
	})

	t.Run("string weights keep their exact value", func(t *testing.T) {
		d, err := NewDecimal("0.1")
		require.NoError(t, err)
		require.Equal(t, "0.1", d.String())
	})

	t.Run("ints convert exactly", func(t *testing.T) {
		d, err := NewDecimal(585)
		require.NoError(t, err)
		require.Equal(t, "585", d.String())
	})

	t.Run("garbage strings fail", func(t *testing.T) {
		_, err := NewDecimal("not-a-number")
		require.Error(t, err)
	})

	t.Run("unsupported types fail", func(t *testing.T) {
		_, err := NewDecimal(struct{}{})
		require.Error(t, err)
	})
}
