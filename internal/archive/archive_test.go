package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"clank/internal/summary"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInserter struct {
	mock.Mock
}

func (m *mockInserter) Insert(table string, row Row) error {
	args := m.Called(table, row)
	return args.Error(0)
}

var (
	fixedID   = uuid.MustParse("6f1c2a52-5d7e-4e8f-9a0b-1c2d3e4f5a6b")
	fixedTime = time.Date(2287, 3, 14, 9, 30, 0, 0, time.UTC)
)

func newTestArchive(db Inserter) *Archive {
	a := New(db, "playthrough", nil)
	a.now = func() time.Time { return fixedTime }
	return a
}

func TestRecord_InsertsRow(t *testing.T) {
	db := new(mockInserter)
	report := summary.Report{Ending: "MERGE_WORLDS", EndingLabel: "ENDING 3: KESATUAN - Dua dimensi bergabung"}
	want := Row{
		ID:         fixedID.String(),
		FinishedAt: fixedTime,
		Ending:     "MERGE_WORLDS",
		Report:     report,
	}
	db.On("Insert", "playthrough", want).Return(nil).Once()

	got, err := newTestArchive(db).Record(context.Background(), fixedID, report)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	db.AssertExpectations(t)
}

func TestRecord_InsertError(t *testing.T) {
	db := new(mockInserter)
	db.On("Insert", "playthrough", mock.AnythingOfType("archive.Row")).Return(errors.New("503")).Once()

	_, err := newTestArchive(db).Record(context.Background(), fixedID, summary.Report{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), fixedID.String())
	db.AssertExpectations(t)
}

func TestRecord_CancelledContextSkipsInsert(t *testing.T) {
	db := new(mockInserter)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestArchive(db).Record(ctx, fixedID, summary.Report{})
	assert.ErrorIs(t, err, context.Canceled)
	db.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
