// Package narrative holds the state a single playthrough accumulates: choices,
// discovered knowledge, relationship scores and the resolved ending.
package narrative

import (
	"errors"
	"fmt"
)

// Character is a member of the fixed cast whose relationship with CLANK is
// scored.
type Character string

const (
	Echo     Character = "Echo"
	Maven    Character = "Dr. Maven"
	Observer Character = "The Observer"
)

// Cast lists the scored characters in reporting order.
var Cast = []Character{Echo, Maven, Observer}

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrEndingAlreadySet = errors.New("ending already set")
	ErrInvalidEnding    = errors.New("invalid ending")
)

// ChoiceRecord is one entry of the choices made, kept in recording order.
type ChoiceRecord struct {
	Scene  string `json:"scene"`
	Option string `json:"option"`
}

// State is the mutable record of one playthrough. The zero value is not
// usable; call New.
type State struct {
	choices       map[string]string
	choiceOrder   []string
	knowledge     []string
	relationships map[Character]int
	ending        Ending
	plotTwist     bool
}

// New returns an empty state with every cast member at score 0.
func New() *State {
	s := &State{
		choices:       make(map[string]string),
		relationships: make(map[Character]int, len(Cast)),
	}
	for _, c := range Cast {
		s.relationships[c] = 0
	}
	return s
}

// RecordChoice stores the option picked at a scene. Recording the same scene
// twice replaces the value but keeps its original position.
func (s *State) RecordChoice(scene, option string) {
	if _, ok := s.choices[scene]; !ok {
		s.choiceOrder = append(s.choiceOrder, scene)
	}
	s.choices[scene] = option
}

// Choice returns the option recorded for scene.
func (s *State) Choice(scene string) (string, bool) {
	v, ok := s.choices[scene]
	return v, ok
}

// Choices returns a copy of the recorded choices in recording order.
func (s *State) Choices() []ChoiceRecord {
	out := make([]ChoiceRecord, 0, len(s.choiceOrder))
	for _, k := range s.choiceOrder {
		out = append(out, ChoiceRecord{Scene: k, Option: s.choices[k]})
	}
	return out
}

// Learn appends a fact. Duplicates are kept.
func (s *State) Learn(fact string) {
	s.knowledge = append(s.knowledge, fact)
}

// Knowledge returns a copy of the facts in discovery order.
func (s *State) Knowledge() []string {
	out := make([]string, len(s.knowledge))
	copy(out, s.knowledge)
	return out
}

// Adjust adds delta to the relationship score of c.
func (s *State) Adjust(c Character, delta int) error {
	if _, ok := s.relationships[c]; !ok {
		return fmt.Errorf("adjust %q: %w", c, ErrUnknownCharacter)
	}
	s.relationships[c] += delta
	return nil
}

// Assign overwrites the relationship score of c.
func (s *State) Assign(c Character, score int) error {
	if _, ok := s.relationships[c]; !ok {
		return fmt.Errorf("assign %q: %w", c, ErrUnknownCharacter)
	}
	s.relationships[c] = score
	return nil
}

// Relationship returns the current score of c, 0 for names outside the cast.
func (s *State) Relationship(c Character) int {
	return s.relationships[c]
}

// RevealPlotTwist sets the plot twist flag. It is never cleared.
func (s *State) RevealPlotTwist() {
	s.plotTwist = true
}

func (s *State) PlotTwistRevealed() bool {
	return s.plotTwist
}

// SetEnding records the resolved ending. It may be called once per state.
func (s *State) SetEnding(e Ending) error {
	if !e.Valid() {
		return fmt.Errorf("set ending %d: %w", int(e), ErrInvalidEnding)
	}
	if s.ending != EndingUnset {
		return fmt.Errorf("set ending %s (have %s): %w", e, s.ending, ErrEndingAlreadySet)
	}
	s.ending = e
	return nil
}

// Ending returns the resolved ending and whether one has been set.
func (s *State) Ending() (Ending, bool) {
	return s.ending, s.ending != EndingUnset
}
