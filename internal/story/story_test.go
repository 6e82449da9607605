package story_test

import (
	"testing"

	"clank/internal/narrative"
	"clank/internal/story"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClank_SceneOrder(t *testing.T) {
	var ids []string
	for _, s := range story.Clank().Scenes {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		"intro",
		"accident",
		"awakening",
		"echo_introduction",
		"city_exploration",
		"maven_encounter",
		"revelation",
		"convergence",
	}, ids)
}

func TestClank_EveryOptionHasABranch(t *testing.T) {
	cast := make(map[narrative.Character]bool)
	for _, c := range narrative.Cast {
		cast[c] = true
	}

	keys := make(map[string]bool)
	for _, s := range story.Clank().Scenes {
		if !s.HasChoice() {
			assert.Empty(t, s.ChoiceKey, s.ID)
			assert.Empty(t, s.Branches, s.ID)
			continue
		}
		require.NotEmpty(t, s.ChoiceKey, s.ID)
		assert.False(t, keys[s.ChoiceKey], "duplicate choice key %s", s.ChoiceKey)
		keys[s.ChoiceKey] = true

		assert.Len(t, s.Branches, s.Menu.Len(), s.ID)
		for _, id := range s.Menu.IDs() {
			eff, err := s.Branch(id)
			require.NoError(t, err, "%s option %d", s.ID, id)
			for c := range eff.Adjust {
				assert.True(t, cast[c], "%s adjusts unknown %q", s.ID, c)
			}
			for c := range eff.Assign {
				assert.True(t, cast[c], "%s assigns unknown %q", s.ID, c)
			}
		}
	}
	assert.Len(t, keys, 5)
}

func TestScene_BranchUnknown(t *testing.T) {
	s := story.Clank().Scenes[1]
	_, err := s.Branch(9)
	assert.ErrorIs(t, err, story.ErrNoBranch)
}

func sceneByKey(t *testing.T, key string) story.Scene {
	t.Helper()
	for _, s := range story.Clank().Scenes {
		if s.ChoiceKey == key {
			return s
		}
	}
	t.Fatalf("no scene with choice key %s", key)
	return story.Scene{}
}

func TestFirstContactEffects(t *testing.T) {
	tests := []struct {
		option int
		echo   int
		fact   string
	}{
		{1, 1, "Pendekatan hati-hati dapat berguna"},
		{2, 2, "Kejujuran membuka pintu komunikasi"},
		{3, -1, "Agresi adalah pilihan yang berisiko"},
	}
	s := sceneByKey(t, story.KeyFirstContact)
	for _, tt := range tests {
		st := narrative.New()
		eff, err := s.Branch(tt.option)
		require.NoError(t, err)
		require.NoError(t, eff.Apply(st))

		assert.Equal(t, tt.echo, st.Relationship(narrative.Echo))
		assert.Equal(t, []string{tt.fact}, st.Knowledge())
	}
}

func TestPosterOptionThreeAssignsObserver(t *testing.T) {
	s := sceneByKey(t, story.KeyPoster)
	st := narrative.New()
	require.NoError(t, st.Adjust(narrative.Observer, 4))

	eff, err := s.Branch(3)
	require.NoError(t, err)
	require.NoError(t, eff.Apply(st))

	assert.Equal(t, -1, st.Relationship(narrative.Observer))
	assert.Equal(t, []string{"THE OBSERVER memantau dimensi ini dengan ketat"}, st.Knowledge())
}

func TestRevelationEntryRevealsTwist(t *testing.T) {
	s := sceneByKey(t, story.KeyReaction)
	st := narrative.New()

	require.NoError(t, s.OnEnter.Apply(st))

	assert.True(t, st.PlotTwistRevealed())
	assert.Equal(t, []string{"PLOT TWIST: Clank adalah bagian dari percobaan dimensional yang disengaja"}, st.Knowledge())
}

func TestEffect_ApplyUnknownCharacter(t *testing.T) {
	eff := story.Effect{Adjust: map[narrative.Character]int{"Nobody": 1}}
	assert.ErrorIs(t, eff.Apply(narrative.New()), narrative.ErrUnknownCharacter)
}

func TestEffect_ApplyIsDeterministic(t *testing.T) {
	for _, s := range story.Clank().Scenes {
		for _, id := range s.Menu.IDs() {
			eff, err := s.Branch(id)
			require.NoError(t, err)

			a, b := narrative.New(), narrative.New()
			require.NoError(t, eff.Apply(a))
			require.NoError(t, eff.Apply(b))
			assert.Equal(t, a, b, "%s option %d", s.ID, id)
		}
	}
}
