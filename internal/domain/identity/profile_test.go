package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	t.Run("keeps the provider's ID", func(t *testing.T) {
		id := uuid.New()
		profile, err := NewProfile(id, " user@example.com ")

		require.NoError(t, err)
		assert.Equal(t, id, profile.ID)
		assert.Equal(t, "user@example.com", profile.Email)
		assert.False(t, profile.OnboardingCompleted)
		assert.Nil(t, profile.ActiveGroupID)
	})

	t.Run("rejects nil ID", func(t *testing.T) {
		_, err := NewProfile(uuid.Nil, "user@example.com")
		assert.Error(t, err)
	})

	t.Run("rejects blank email", func(t *testing.T) {
		_, err := NewProfile(uuid.New(), "  ")
		assert.Error(t, err)
	})
}

func TestProfile_CompleteOnboarding(t *testing.T) {
	profile, err := NewProfile(uuid.New(), "user@example.com")
	require.NoError(t, err)

	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	income := int64(1500000000)
	profile.CompleteOnboarding(&income, at)

	assert.True(t, profile.OnboardingCompleted)
	require.NotNil(t, profile.OnboardingCompletedAt)
	assert.Equal(t, at, *profile.OnboardingCompletedAt)
	require.NotNil(t, profile.MonthlyIncomeCents)
	assert.Equal(t, income, *profile.MonthlyIncomeCents)
	assert.Equal(t, at, profile.UpdatedAt)
}

func TestProfile_CompleteOnboardingWithoutIncome(t *testing.T) {
	profile, err := NewProfile(uuid.New(), "user@example.com")
	require.NoError(t, err)

	profile.CompleteOnboarding(nil, time.Now())

	assert.True(t, profile.OnboardingCompleted)
	assert.Nil(t, profile.MonthlyIncomeCents)
}

func TestProfile_SetActiveGroup(t *testing.T) {
	profile, err := NewProfile(uuid.New(), "user@example.com")
	require.NoError(t, err)

	groupID := uuid.New()
	profile.SetActiveGroup(groupID)

	require.NotNil(t, profile.ActiveGroupID)
	assert.Equal(t, groupID, *profile.ActiveGroupID)
}
