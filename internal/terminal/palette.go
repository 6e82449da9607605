// Package terminal renders story text to a console: colour, typewriter pacing,
// section dividers and choice menus.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Tone classifies a line so the palette can colour it.
type Tone int

const (
	ToneNarration Tone = iota
	ToneSetting
	ToneClank
	ToneEcho
	ToneMaven
	ToneObserver
	ToneAlarm
	ToneAct
	ToneDivider
	ToneTitle
	ToneMenuHeader
	ToneOption
	TonePrompt
	ToneError
	ToneEnding
	ToneHint
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiBlue   = "\033[94m"
	ansiCyan   = "\033[96m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiRed    = "\033[91m"
)

// Palette maps tones to escape sequences. The zero value is colourless.
type Palette struct {
	codes map[Tone]string
}

// ANSI returns the standard colour palette.
func ANSI() Palette {
	return Palette{codes: map[Tone]string{
		ToneSetting:    ansiBlue,
		ToneClank:      ansiYellow,
		ToneEcho:       ansiGreen,
		ToneMaven:      ansiBlue,
		ToneObserver:   ansiRed,
		ToneAlarm:      ansiRed,
		ToneAct:        ansiBold + ansiYellow,
		ToneDivider:    ansiCyan,
		ToneTitle:      ansiBold + ansiCyan,
		ToneMenuHeader: ansiYellow,
		ToneOption:     ansiGreen,
		TonePrompt:     ansiBold,
		ToneError:      ansiRed,
		ToneEnding:     ansiGreen,
		ToneHint:       ansiYellow,
	}}
}

// Plain returns a palette that emits no escape sequences.
func Plain() Palette { return Palette{} }

// Detect returns ANSI when f is a terminal and Plain otherwise, so piped or
// redirected output carries no escape sequences.
func Detect(f *os.File) Palette {
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return ANSI()
	}
	return Plain()
}

func (p Palette) open(t Tone) string {
	return p.codes[t]
}

func (p Palette) close(t Tone) string {
	if p.codes[t] == "" {
		return ""
	}
	return ansiReset
}

// Paint wraps s in the escape sequence for t.
func (p Palette) Paint(t Tone, s string) string {
	return p.open(t) + s + p.close(t)
}
