package story_test

import (
	"testing"

	"clank/internal/narrative"
	"clank/internal/story"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_DirectEndings(t *testing.T) {
	tests := map[int]narrative.Ending{
		1: narrative.EndingReturnHome,
		2: narrative.EndingTrappedHappy,
		3: narrative.EndingMergeWorlds,
	}
	for id, want := range tests {
		r := story.NewResolver()
		require.NoError(t, r.Select(id))

		got, ok := r.Ending()
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, story.Resolved, r.Phase())
	}
}

func TestResolver_TruthBranch(t *testing.T) {
	tests := map[int]narrative.Ending{
		1: narrative.EndingReturnHome,
		2: narrative.EndingTrappedHappy,
		3: narrative.EndingMergeWorlds,
		5: narrative.EndingSacrificeReset,
	}
	for id, want := range tests {
		r := story.NewResolver()
		require.NoError(t, r.Select(4))
		assert.Equal(t, story.AwaitingParadoxChoice, r.Phase())
		_, ok := r.Ending()
		assert.False(t, ok)

		require.NoError(t, r.Select(id))
		got, ok := r.Ending()
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.NotEqual(t, narrative.EndingParadoxTruth, got)
	}
}

func TestResolver_RejectsUnlistedOptions(t *testing.T) {
	r := story.NewResolver()
	assert.ErrorIs(t, r.Select(5), story.ErrUnknownOption)
	assert.Equal(t, story.AwaitingFinalChoice, r.Phase())

	require.NoError(t, r.Select(4))
	assert.ErrorIs(t, r.Select(4), story.ErrUnknownOption)
	assert.Equal(t, story.AwaitingParadoxChoice, r.Phase())

	require.NoError(t, r.Select(5))
	assert.ErrorIs(t, r.Select(1), story.ErrResolved)
	_, err := r.Scene()
	assert.ErrorIs(t, err, story.ErrResolved)
}

func TestResolver_SceneMenusMatchPhases(t *testing.T) {
	r := story.NewResolver()

	final, err := r.Scene()
	require.NoError(t, err)
	assert.Empty(t, final.ChoiceKey)
	assert.Equal(t, []int{1, 2, 3, 4}, final.Menu.IDs())

	require.NoError(t, r.Select(4))
	truth, err := r.Scene()
	require.NoError(t, err)
	assert.Empty(t, truth.ChoiceKey)
	assert.Equal(t, []int{1, 2, 3, 5}, truth.Menu.IDs())
}

func TestEndingScene_Fallback(t *testing.T) {
	home := story.EndingScene(narrative.EndingReturnHome)
	assert.Equal(t, "ending_return_home", home.ID)

	assert.Equal(t, home.ID, story.EndingScene(narrative.EndingParadoxTruth).ID)
	assert.Equal(t, home.ID, story.EndingScene(narrative.EndingUnset).ID)

	assert.Equal(t, "ending_trapped_happy", story.EndingScene(narrative.EndingTrappedHappy).ID)
	assert.Equal(t, "ending_merge_worlds", story.EndingScene(narrative.EndingMergeWorlds).ID)
	assert.Equal(t, "ending_sacrifice_reset", story.EndingScene(narrative.EndingSacrificeReset).ID)
}
