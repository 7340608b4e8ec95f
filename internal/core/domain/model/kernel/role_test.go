package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	for _, raw := range []string{"customer", "restaurant", "driver", "admin"} {
		role, err := kernel.RoleFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, role.String())
	}

	_, err := kernel.RoleFromString("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		actor, err := kernel.NewActor(id, kernel.RoleDriver)
		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleDriver, actor.Role())
		require.NoError(t, actor.Validate())
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.Role("ghost"))
		require.Error(t, err)
	})

	t.Run("zero actor fails validate", func(t *testing.T) {
		var actor kernel.Actor
		require.Error(t, actor.Validate())
	})
}
