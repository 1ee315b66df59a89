package memory

import (
	"context"
	"testing"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	_, ok, err := repo.GetFilters(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	saved := game.Filter{GameNames: []string{"Classic"}}
	require.NoError(t, repo.SaveFilters(ctx, "s1", saved))

	got, ok, err := repo.GetFilters(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, saved, got)
}

func TestSessionRepository_SessionsAreIsolated(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveFilters(ctx, "s1", game.Filter{Venues: []string{"Arena"}}))

	_, ok, err := repo.GetFilters(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, ok)
}
