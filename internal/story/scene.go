// Package story holds the fixed CLANK scene table: narration, choice menus,
// the effect each option has on the narrative state, and the ending scenes.
package story

import (
	"errors"
	"fmt"

	"clank/internal/choice"
	"clank/internal/narrative"
	"clank/internal/terminal"
)

var ErrNoBranch = errors.New("no branch for option")

// Scene describes one narrative unit. A scene with an empty Menu is pure
// narration.
type Scene struct {
	ID    string
	Title string
	// Act is printed as a heading under the divider when set.
	Act     string
	Intro   []terminal.Line
	OnEnter Effect

	ChoiceKey string
	Menu      choice.Menu
	Branches  map[int]Effect

	Outro []terminal.Line
}

func (s Scene) HasChoice() bool {
	return s.Menu.Len() > 0
}

// Branch returns the effect of picking id.
func (s Scene) Branch(id int) (Effect, error) {
	e, ok := s.Branches[id]
	if !ok {
		return Effect{}, fmt.Errorf("scene %s option %d: %w", s.ID, id, ErrNoBranch)
	}
	return e, nil
}

// Effect is the fixed consequence of a scene entry or a chosen option.
type Effect struct {
	Lines       []terminal.Line
	Learn       []string
	Adjust      map[narrative.Character]int
	Assign      map[narrative.Character]int
	RevealTwist bool
}

// Apply mutates st. Lines are left to the caller to print.
func (e Effect) Apply(st *narrative.State) error {
	if e.RevealTwist {
		st.RevealPlotTwist()
	}
	for _, fact := range e.Learn {
		st.Learn(fact)
	}
	for c, delta := range e.Adjust {
		if err := st.Adjust(c, delta); err != nil {
			return err
		}
	}
	for c, score := range e.Assign {
		if err := st.Assign(c, score); err != nil {
			return err
		}
	}
	return nil
}

// Story is the complete scene table of a game.
type Story struct {
	Title  string
	Banner []string
	Scenes []Scene
}

func narr(s string) terminal.Line     { return terminal.Line{Tone: terminal.ToneNarration, Text: s} }
func setting(s string) terminal.Line  { return terminal.Line{Tone: terminal.ToneSetting, Text: s} }
func clank(s string) terminal.Line    { return terminal.Line{Tone: terminal.ToneClank, Text: s} }
func echo(s string) terminal.Line     { return terminal.Line{Tone: terminal.ToneEcho, Text: s} }
func maven(s string) terminal.Line    { return terminal.Line{Tone: terminal.ToneMaven, Text: s} }
func observer(s string) terminal.Line { return terminal.Line{Tone: terminal.ToneObserver, Text: s} }
func alarm(s string) terminal.Line    { return terminal.Line{Tone: terminal.ToneAlarm, Text: s} }
func option(s string) terminal.Line   { return terminal.Line{Tone: terminal.ToneHint, Text: s} }
