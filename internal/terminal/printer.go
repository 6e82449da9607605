package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"clank/internal/choice"
)

const dividerWidth = 60

// Line is one unit of narration.
type Line struct {
	Tone Tone
	Text string
}

// Options tune presentation. Zero delays print instantly.
type Options struct {
	Palette    Palette
	CharDelay  time.Duration
	LinePause  time.Duration
	ScenePause time.Duration
	// Sleep replaces the timer wait when set. The context is still checked
	// after it returns.
	Sleep func(time.Duration)
}

// Printer writes story output. It implements choice.UI.
type Printer struct {
	w   io.Writer
	opt Options
}

var _ choice.UI = (*Printer)(nil)

func NewPrinter(w io.Writer, opt Options) *Printer {
	return &Printer{w: w, opt: opt}
}

// Writer exposes the underlying stream for plain dumps.
func (p *Printer) Writer() io.Writer { return p.w }

// sleep waits d or until ctx is done, whichever comes first.
func (p *Printer) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	if p.opt.Sleep != nil {
		p.opt.Sleep(d)
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Say prints a line with the typewriter effect. It stops mid-line when ctx
// is done and returns ctx.Err().
func (p *Printer) Say(ctx context.Context, l Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pal := p.opt.Palette
	fmt.Fprint(p.w, pal.open(l.Tone))
	if p.opt.CharDelay <= 0 {
		fmt.Fprint(p.w, l.Text)
	} else {
		for _, r := range l.Text {
			fmt.Fprint(p.w, string(r))
			if err := p.sleep(ctx, p.opt.CharDelay); err != nil {
				fmt.Fprintln(p.w, pal.close(l.Tone))
				return err
			}
		}
	}
	fmt.Fprintln(p.w, pal.close(l.Tone))
	return p.sleep(ctx, p.opt.LinePause)
}

func (p *Printer) Lines(ctx context.Context, lines []Line) error {
	for _, l := range lines {
		if err := p.Say(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// Divider prints a ruled section break with an optional centred title.
func (p *Printer) Divider(title string) {
	pal := p.opt.Palette
	rule := strings.Repeat("=", dividerWidth)
	fmt.Fprintf(p.w, "\n%s\n", pal.Paint(ToneDivider, rule))
	if title == "" {
		return
	}
	fmt.Fprintln(p.w, pal.Paint(ToneTitle, center(title, dividerWidth)))
	fmt.Fprintln(p.w, pal.Paint(ToneDivider, rule))
}

// Heading prints an act heading.
func (p *Printer) Heading(text string) {
	fmt.Fprintf(p.w, "\n%s\n\n", p.opt.Palette.Paint(ToneAct, text))
}

// Banner prints the boxed title shown once at start.
func (p *Printer) Banner(lines []string) {
	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	width += 4
	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", width) + "╗\n")
	for _, l := range lines {
		b.WriteString("║" + pad(center(l, width), width) + "║\n")
	}
	b.WriteString("╚" + strings.Repeat("═", width) + "╝")
	fmt.Fprintf(p.w, "\n%s\n\n", p.opt.Palette.Paint(ToneTitle, b.String()))
}

// Pause waits between scenes.
func (p *Printer) Pause(ctx context.Context) error {
	return p.sleep(ctx, p.opt.ScenePause)
}

func (p *Printer) ShowMenu(m choice.Menu) {
	pal := p.opt.Palette
	fmt.Fprintf(p.w, "\n%s\n", pal.Paint(ToneMenuHeader, "Pilihan Anda:"))
	for _, o := range m.Options() {
		fmt.Fprintln(p.w, pal.Paint(ToneOption, fmt.Sprintf("%d. %s", o.ID, o.Label)))
	}
}

func (p *Printer) AskChoice() {
	fmt.Fprintf(p.w, "\n%s", p.opt.Palette.Paint(TonePrompt, "Masukkan pilihan (angka): "))
}

func (p *Printer) RejectChoice(err error) {
	msg := "Pilihan tidak valid! Coba lagi."
	if errors.Is(err, choice.ErrNotNumber) {
		msg = "Masukkan angka yang valid!"
	}
	fmt.Fprintln(p.w, p.opt.Palette.Paint(ToneError, msg))
}

// Interrupted prints the message shown when the player quits mid-story.
func (p *Printer) Interrupted() {
	fmt.Fprintf(p.w, "\n%s\n\n", p.opt.Palette.Paint(ToneError, "Permainan dihentikan oleh pemain."))
}

// Farewell prints the closing lines after the summary.
func (p *Printer) Farewell(title string) {
	pal := p.opt.Palette
	p.Divider("")
	fmt.Fprintf(p.w, "\n%s\n\n", pal.Paint(ToneTitle, "Terima kasih telah bermain "+title+"!"))
	fmt.Fprintf(p.w, "%s\n\n\n", pal.Paint(ToneHint, "Untuk bermain lagi dan membuat pilihan berbeda, jalankan program ini kembali."))
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
