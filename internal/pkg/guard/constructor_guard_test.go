package guard_test

import (
	"errors"
	"testing"

	"mailroom/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("slot not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_constructed_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type shelfLabel struct {
		code  string
		guard guard.ConstructorGuard
	}
	errLabelNotConstructed := errors.New("shelfLabel must be created via newShelfLabel")

	newShelfLabel := func(code string) (shelfLabel, error) {
		if code == "" {
			return shelfLabel{}, errors.New("code is required")
		}
		return shelfLabel{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	label, err := newShelfLabel("A-12")
	require.NoError(t, err)
	require.NoError(t, label.guard.Validate(errLabelNotConstructed))

	_, err = newShelfLabel("")
	require.Error(t, err)

	var zero shelfLabel
	assert.Equal(t, errLabelNotConstructed, zero.guard.Validate(errLabelNotConstructed))
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
