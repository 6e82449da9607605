// Package archive records finished playthroughs to a Supabase table. Rows are
// only ever written; nothing is read back into a game.
package archive

import (
	"context"
	"fmt"
	"time"

	"clank/internal/summary"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// Row matches the archive table.
type Row struct {
	ID         string         `json:"id"`
	FinishedAt time.Time      `json:"finished_at"`
	Ending     string         `json:"ending"`
	Report     summary.Report `json:"report"`
}

// Inserter writes one row to a table.
type Inserter interface {
	Insert(table string, row Row) error
}

type Archive struct {
	db    Inserter
	table string
	log   *zap.Logger
	now   func() time.Time
}

func New(db Inserter, table string, log *zap.Logger) *Archive {
	if log == nil {
		log = zap.NewNop()
	}
	return &Archive{db: db, table: table, log: log, now: time.Now}
}

// NewSupabase connects to the Supabase project at url.
func NewSupabase(url, key, table string, log *zap.Logger) (*Archive, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to supabase: %w", err)
	}
	return New(&supabaseInserter{client: client}, table, log), nil
}

// Record stores r as the row for playthrough id and returns it.
func (a *Archive) Record(ctx context.Context, id uuid.UUID, r summary.Report) (Row, error) {
	if err := ctx.Err(); err != nil {
		return Row{}, err
	}
	row := Row{
		ID:         id.String(),
		FinishedAt: a.now().UTC(),
		Ending:     r.Ending,
		Report:     r,
	}
	if err := a.db.Insert(a.table, row); err != nil {
		return Row{}, fmt.Errorf("insert playthrough %s: %w", row.ID, err)
	}
	a.log.Info("playthrough archived",
		zap.String("id", row.ID),
		zap.String("table", a.table),
		zap.String("ending", row.Ending),
	)
	return row, nil
}

type supabaseInserter struct {
	client *supa.Client
}

func (s *supabaseInserter) Insert(table string, row Row) error {
	var inserted []Row
	_, err := s.client.From(table).Insert(row, false, "", "", "").ExecuteTo(&inserted)
	if err != nil {
		return err
	}
	if len(inserted) == 0 {
		return fmt.Errorf("row %s was not created, but no error was returned", row.ID)
	}
	return nil
}
