// Package choice presents numbered option menus and turns raw player input
// into a selected option id.
package choice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDuplicateOption = errors.New("duplicate option id")
	ErrEmptyMenu       = errors.New("menu has no options")

	// ErrNotNumber and ErrNotListed are the two reasons input is rejected.
	ErrNotNumber = errors.New("input is not a number")
	ErrNotListed = errors.New("option is not on the menu")
)

// Option is one numbered entry of a menu.
type Option struct {
	ID    int
	Label string
}

// Menu is an ordered set of options with unique ids.
type Menu struct {
	options []Option
}

// NewMenu builds a menu, keeping the given order.
func NewMenu(options ...Option) (Menu, error) {
	if len(options) == 0 {
		return Menu{}, ErrEmptyMenu
	}
	seen := make(map[int]struct{}, len(options))
	for _, o := range options {
		if _, dup := seen[o.ID]; dup {
			return Menu{}, fmt.Errorf("option %d: %w", o.ID, ErrDuplicateOption)
		}
		seen[o.ID] = struct{}{}
	}
	out := make([]Option, len(options))
	copy(out, options)
	return Menu{options: out}, nil
}

// MustMenu is NewMenu for static tables; it panics on an invalid menu.
func MustMenu(options ...Option) Menu {
	m, err := NewMenu(options...)
	if err != nil {
		panic(err)
	}
	return m
}

// Options returns a copy of the options in display order.
func (m Menu) Options() []Option {
	out := make([]Option, len(m.options))
	copy(out, m.options)
	return out
}

// IDs returns the option ids in display order.
func (m Menu) IDs() []int {
	ids := make([]int, len(m.options))
	for i, o := range m.options {
		ids[i] = o.ID
	}
	return ids
}

// Has reports whether id is listed.
func (m Menu) Has(id int) bool {
	for _, o := range m.options {
		if o.ID == id {
			return true
		}
	}
	return false
}

func (m Menu) Len() int { return len(m.options) }

// InvalidInputError describes rejected input. Reason is ErrNotNumber or
// ErrNotListed.
type InvalidInputError struct {
	Raw    string
	Reason error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid choice %q: %v", e.Raw, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Reason }

// Resolve maps one line of raw input to an option id of m. It does no I/O.
func Resolve(m Menu, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidInputError{Raw: raw, Reason: ErrNotNumber}
	}
	if !m.Has(id) {
		return 0, &InvalidInputError{Raw: raw, Reason: ErrNotListed}
	}
	return id, nil
}
