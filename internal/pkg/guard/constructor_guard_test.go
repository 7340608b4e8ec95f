package guard_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not fire")))
	})

	t.Run("zero value fails with supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		errNotConstructed := errors.New("thing must be created via NewThing")
		err := g.Validate(errNotConstructed)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type command struct {
		guard guard.ConstructorGuard
	}

	fresh := command{guard: guard.NewConstructorGuard()}
	require.NoError(t, fresh.guard.Validate(nil))

	var zero command
	require.Error(t, zero.guard.Validate(nil))
}
