package budgeting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	createdBy := uuid.New()

	t.Run("creates group with IDR currency", func(t *testing.T) {
		group, err := NewGroup("  Keluarga Budi  ", createdBy)

		require.NoError(t, err)
		assert.Equal(t, "Keluarga Budi", group.Name)
		assert.Equal(t, "IDR", group.DefaultCurrency)
		assert.Equal(t, createdBy, group.CreatedBy)
		assert.NotEqual(t, uuid.Nil, group.ID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewGroup("   ", createdBy)
		assert.Error(t, err)
	})

	t.Run("rejects missing creator", func(t *testing.T) {
		_, err := NewGroup("Keluarga", uuid.Nil)
		assert.Error(t, err)
	})
}

func TestGroup_Rename(t *testing.T) {
	group, err := NewGroup("Old", uuid.New())
	require.NoError(t, err)

	require.NoError(t, group.Rename("  New Name "))
	assert.Equal(t, "New Name", group.Name)

	assert.Error(t, group.Rename("  "))
	assert.Equal(t, "New Name", group.Name)
}

func TestNewMembership(t *testing.T) {
	t.Run("creates owner membership", func(t *testing.T) {
		membership, err := NewMembership(uuid.New(), uuid.New(), RoleOwner)

		require.NoError(t, err)
		assert.Equal(t, RoleOwner, membership.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewMembership(uuid.New(), uuid.New(), "admin")
		assert.Error(t, err)
	})
}
