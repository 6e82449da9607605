// Package engine plays a story.Story: it walks the scene table in order,
// applies the effect of every choice, resolves the ending and prints the
// summary.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"clank/internal/choice"
	"clank/internal/narrative"
	"clank/internal/story"
	"clank/internal/summary"
	"clank/internal/terminal"

	"go.uber.org/zap"
)

type Engine struct {
	story    story.Story
	out      *terminal.Printer
	prompter *choice.Prompter
	log      *zap.Logger
}

func New(s story.Story, out *terminal.Printer, prompter *choice.Prompter, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{story: s, out: out, prompter: prompter, log: log}
}

// Play runs one playthrough. When the player interrupts, at a prompt or
// while narration is printing, the partial state is returned together with an
// error wrapping choice.ErrInterrupted.
func (e *Engine) Play(ctx context.Context) (*narrative.State, error) {
	st := narrative.New()
	if err := e.play(ctx, st); err != nil {
		if ctx.Err() != nil && !errors.Is(err, choice.ErrInterrupted) {
			err = fmt.Errorf("%w: %w", choice.ErrInterrupted, err)
		}
		return st, err
	}
	return st, nil
}

func (e *Engine) play(ctx context.Context, st *narrative.State) error {
	e.out.Banner(e.story.Banner)
	if err := e.out.Pause(ctx); err != nil {
		return err
	}

	for _, sc := range e.story.Scenes {
		if err := e.playScene(ctx, st, sc); err != nil {
			return err
		}
		if err := e.out.Pause(ctx); err != nil {
			return err
		}
	}

	ending, err := e.resolveEnding(ctx, st)
	if err != nil {
		return err
	}

	e.out.Divider("ENDING")
	closing := story.EndingScene(ending)
	e.log.Debug("scene started", zap.String("scene", closing.ID))
	e.out.Divider(closing.Title)
	if err := e.out.Lines(ctx, closing.Intro); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	e.out.Divider("RINGKASAN PETUALANGAN")
	if err := summary.Build(st).Render(e.out.Writer()); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.out.Farewell(e.story.Title)
	return nil
}

func (e *Engine) playScene(ctx context.Context, st *narrative.State, sc story.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.log.Debug("scene started", zap.String("scene", sc.ID))
	e.out.Divider(sc.Title)
	if sc.Act != "" {
		e.out.Heading(sc.Act)
	}
	if err := e.out.Lines(ctx, sc.Intro); err != nil {
		return err
	}

	if err := e.apply(ctx, st, sc.OnEnter); err != nil {
		return fmt.Errorf("scene %s: %w", sc.ID, err)
	}

	if sc.HasChoice() {
		id, err := e.prompter.Choose(ctx, sc.Menu)
		if err != nil {
			return err
		}
		st.RecordChoice(sc.ChoiceKey, strconv.Itoa(id))
		e.log.Info("choice recorded",
			zap.String("scene", sc.ID),
			zap.String("key", sc.ChoiceKey),
			zap.Int("option", id),
		)
		eff, err := sc.Branch(id)
		if err != nil {
			return err
		}
		if err := e.apply(ctx, st, eff); err != nil {
			return fmt.Errorf("scene %s option %d: %w", sc.ID, id, err)
		}
	}

	return e.out.Lines(ctx, sc.Outro)
}

// resolveEnding plays the decision scenes the resolver asks for until it
// settles on an ending, then records it. The decisions themselves stay out of
// the choice record.
func (e *Engine) resolveEnding(ctx context.Context, st *narrative.State) (narrative.Ending, error) {
	r := story.NewResolver()
	for r.Phase() != story.Resolved {
		sc, err := r.Scene()
		if err != nil {
			return narrative.EndingUnset, err
		}
		e.log.Debug("scene started", zap.String("scene", sc.ID), zap.Stringer("phase", r.Phase()))
		e.out.Divider(sc.Title)
		if err := e.out.Lines(ctx, sc.Intro); err != nil {
			return narrative.EndingUnset, err
		}

		id, err := e.prompter.Choose(ctx, sc.Menu)
		if err != nil {
			return narrative.EndingUnset, err
		}
		e.log.Info("decision made", zap.String("scene", sc.ID), zap.Int("option", id))
		if err := r.Select(id); err != nil {
			return narrative.EndingUnset, err
		}
	}

	ending, _ := r.Ending()
	if err := st.SetEnding(ending); err != nil {
		return narrative.EndingUnset, err
	}
	e.log.Info("ending resolved", zap.Stringer("ending", ending))
	return ending, nil
}

func (e *Engine) apply(ctx context.Context, st *narrative.State, eff story.Effect) error {
	if err := e.out.Lines(ctx, eff.Lines); err != nil {
		return err
	}
	return eff.Apply(st)
}
