package choice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ErrInterrupted is returned when the player stops the game while a prompt is
// waiting: the context was cancelled or input ended.
var ErrInterrupted = errors.New("interrupted")

// LineReader hands out stdin lines one at a time. A single goroutine scans the
// input so a waiting prompt can still observe context cancellation.
type LineReader struct {
	lines chan string
	err   error
}

// NewLineReader starts reading r.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lr.lines <- scanner.Text()
		}
		lr.err = scanner.Err()
		close(lr.lines)
	}()
	return lr
}

// Next blocks for the next line.
func (r *LineReader) Next(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	case line, ok := <-r.lines:
		if !ok {
			cause := r.err
			if cause == nil {
				cause = io.EOF
			}
			return "", fmt.Errorf("%w: %w", ErrInterrupted, cause)
		}
		return line, nil
	}
}

// UI is the output side of a prompt.
type UI interface {
	ShowMenu(m Menu)
	AskChoice()
	RejectChoice(err error)
}

// Prompter asks until the player picks a listed option.
type Prompter struct {
	in  *LineReader
	ui  UI
	log *zap.Logger
}

func NewPrompter(in *LineReader, ui UI, log *zap.Logger) *Prompter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Prompter{in: in, ui: ui, log: log}
}

// Choose shows m and re-asks on every invalid entry. It only returns on a
// valid selection or with ErrInterrupted.
func (p *Prompter) Choose(ctx context.Context, m Menu) (int, error) {
	p.ui.ShowMenu(m)
	for {
		p.ui.AskChoice()
		line, err := p.in.Next(ctx)
		if err != nil {
			return 0, err
		}
		id, err := Resolve(m, line)
		if err != nil {
			p.log.Debug("rejected choice input", zap.String("input", line), zap.Error(err))
			p.ui.RejectChoice(err)
			continue
		}
		return id, nil
	}
}
