package engine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"clank/internal/choice"
	"clank/internal/engine"
	"clank/internal/narrative"
	"clank/internal/story"
	"clank/internal/terminal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGame(out *bytes.Buffer, opt terminal.Options, inputs ...string) *engine.Engine {
	printer := terminal.NewPrinter(out, opt)
	in := choice.NewLineReader(strings.NewReader(strings.Join(inputs, "\n") + "\n"))
	return engine.New(story.Clank(), printer, choice.NewPrompter(in, printer, zap.NewNop()), zap.NewNop())
}

func play(t *testing.T, ctx context.Context, inputs ...string) (*narrative.State, string, error) {
	t.Helper()
	var out bytes.Buffer
	st, err := newGame(&out, terminal.Options{Palette: terminal.Plain()}, inputs...).Play(ctx)
	return st, out.String(), err
}

// cancelOnText returns a Sleep hook that cancels once marker has been printed,
// and counts the waits that come after it.
func cancelOnText(out *bytes.Buffer, marker string, cancel context.CancelFunc, after *int) func(time.Duration) {
	return func(time.Duration) {
		if !strings.Contains(out.String(), marker) {
			return
		}
		if *after == 0 {
			cancel()
		}
		*after++
	}
}

func TestPlay_AlwaysFirstOption(t *testing.T) {
	st, out, err := play(t, context.Background(), "1", "1", "1", "1", "1", "1")
	require.NoError(t, err)

	ending, ok := st.Ending()
	require.True(t, ok)
	assert.Equal(t, narrative.EndingReturnHome, ending)

	assert.Equal(t, []narrative.ChoiceRecord{
		{Scene: "accident_response", Option: "1"},
		{Scene: "first_contact", Option: "1"},
		{Scene: "poster_decision", Option: "1"},
		{Scene: "maven_question", Option: "1"},
		{Scene: "reaction_twist", Option: "1"},
	}, st.Choices())

	assert.Equal(t, 1, st.Relationship(narrative.Echo))
	assert.Equal(t, 0, st.Relationship(narrative.Maven))
	assert.Equal(t, 0, st.Relationship(narrative.Observer))
	assert.True(t, st.PlotTwistRevealed())
	assert.Equal(t, []string{
		"Tindakan langsung mempercepat keadaan dimensional",
		"Pendekatan hati-hati dapat berguna",
		"THE OBSERVER adalah entitas misterius yang merekam semua dimensi",
		"PLOT TWIST: Clank adalah bagian dari percobaan dimensional yang disengaja",
	}, st.Knowledge())

	assert.Contains(t, out, "CLANK: Petualangan Dimensi Temporal")
	assert.Contains(t, out, "ENDING 1: PULANG")
	assert.Contains(t, out, "RINGKASAN PETUALANGAN")
	assert.Contains(t, out, "  • Echo: 1 (❤️ )")
	assert.Contains(t, out, "Terima kasih telah bermain CLANK!")
}

func TestPlay_FirstContactHonesty(t *testing.T) {
	st, _, err := play(t, context.Background(), "1", "2", "1", "1", "1", "1")
	require.NoError(t, err)

	assert.Equal(t, 2, st.Relationship(narrative.Echo))
	assert.Contains(t, st.Knowledge(), "Kejujuran membuka pintu komunikasi")
}

func TestPlay_FinalChoiceIgnoresHistory(t *testing.T) {
	want := map[string]narrative.Ending{
		"1": narrative.EndingReturnHome,
		"2": narrative.EndingTrappedHappy,
		"3": narrative.EndingMergeWorlds,
	}
	histories := [][]string{
		{"1", "1", "1", "1", "1"},
		{"3", "3", "3", "3", "3"},
		{"2", "2", "2", "2", "2"},
	}
	for final, ending := range want {
		for _, h := range histories {
			st, _, err := play(t, context.Background(), append(h, final)...)
			require.NoError(t, err)

			got, ok := st.Ending()
			require.True(t, ok)
			assert.Equal(t, ending, got, "history %v final %s", h, final)
		}
	}
}

func TestPlay_TruthThenSacrifice(t *testing.T) {
	st, out, err := play(t, context.Background(), "1", "1", "1", "1", "1", "4", "5")
	require.NoError(t, err)

	ending, _ := st.Ending()
	assert.Equal(t, narrative.EndingSacrificeReset, ending)

	assert.Len(t, st.Choices(), 5)
	_, ok := st.Choice("final_choice")
	assert.False(t, ok)
	_, ok = st.Choice("truth_choice")
	assert.False(t, ok)

	assert.Contains(t, out, "KEBENARAN YANG DALAM")
	assert.Equal(t, 1, strings.Count(out, "Pengorbanan adalah bentuk kasih sayang tertinggi."))
}

func TestPlay_TruthThenDirectEnding(t *testing.T) {
	want := map[string]narrative.Ending{
		"1": narrative.EndingReturnHome,
		"2": narrative.EndingTrappedHappy,
		"3": narrative.EndingMergeWorlds,
	}
	for pick, ending := range want {
		st, _, err := play(t, context.Background(), "1", "1", "1", "1", "1", "4", pick)
		require.NoError(t, err)

		got, _ := st.Ending()
		assert.Equal(t, ending, got)
		assert.NotEqual(t, narrative.EndingParadoxTruth, got)
	}
}

func TestPlay_TruthMenuRejectsFour(t *testing.T) {
	st, out, err := play(t, context.Background(), "1", "1", "1", "1", "1", "4", "4", "2")
	require.NoError(t, err)

	got, _ := st.Ending()
	assert.Equal(t, narrative.EndingTrappedHappy, got)
	assert.Contains(t, out, "Pilihan tidak valid! Coba lagi.")
}

func TestPlay_InvalidInputLeavesStateUntouched(t *testing.T) {
	st, out, err := play(t, context.Background(), "abc", "7", "0")
	require.ErrorIs(t, err, choice.ErrInterrupted)

	assert.Empty(t, st.Choices())
	assert.Empty(t, st.Knowledge())
	for _, c := range narrative.Cast {
		assert.Equal(t, 0, st.Relationship(c))
	}
	_, ended := st.Ending()
	assert.False(t, ended)

	assert.Equal(t, 4, strings.Count(out, "Masukkan pilihan (angka): "))
	assert.Equal(t, 1, strings.Count(out, "Masukkan angka yang valid!"))
	assert.Equal(t, 2, strings.Count(out, "Pilihan tidak valid! Coba lagi."))
}

func TestPlay_RetriesThenContinues(t *testing.T) {
	st, _, err := play(t, context.Background(), "x", "1", "", "9", "3", "1", "1", "1", "2")
	require.NoError(t, err)

	v, _ := st.Choice(story.KeyFirstContact)
	assert.Equal(t, "3", v)
	assert.Equal(t, -1, st.Relationship(narrative.Echo))
	ending, _ := st.Ending()
	assert.Equal(t, narrative.EndingTrappedHappy, ending)
}

func TestPlay_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, _, err := play(t, ctx, "1", "1")
	require.ErrorIs(t, err, choice.ErrInterrupted)
	assert.Empty(t, st.Choices())
}

func TestPlay_InterruptDuringNarration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	var after int
	game := newGame(&out, terminal.Options{
		Palette:   terminal.Plain(),
		CharDelay: time.Millisecond,
		LinePause: time.Millisecond,
		Sleep:     cancelOnText(&out, "SAAT KECELAKAAN", cancel, &after),
	}, "1", "1", "1", "1", "1", "1")

	st, err := game.Play(ctx)

	require.ErrorIs(t, err, choice.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, after)
	assert.Empty(t, st.Choices())
	assert.NotContains(t, out.String(), "Pilihan Anda:")
}

func TestPlay_InterruptAfterFinalChoice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	var after int
	game := newGame(&out, terminal.Options{
		Palette:    terminal.Plain(),
		CharDelay:  time.Millisecond,
		LinePause:  time.Millisecond,
		ScenePause: time.Millisecond,
		Sleep:      cancelOnText(&out, "ENDING 1: PULANG", cancel, &after),
	}, "1", "1", "1", "1", "1", "1")

	st, err := game.Play(ctx)

	require.ErrorIs(t, err, choice.ErrInterrupted)
	assert.Equal(t, 1, after)
	ending, ok := st.Ending()
	require.True(t, ok)
	assert.Equal(t, narrative.EndingReturnHome, ending)
	assert.NotContains(t, out.String(), "RINGKASAN PETUALANGAN")
	assert.NotContains(t, out.String(), "Terima kasih telah bermain")
}
