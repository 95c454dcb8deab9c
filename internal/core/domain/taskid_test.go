package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

func TestTaskIDPrefix(t *testing.T) {
	day := time.Date(2026, 3, 12, 15, 4, 5, 0, time.UTC)
	require.Equal(t, uint64(20260312), domain.TaskIDPrefix(day))

	// Single-digit month and day still render as two digits each.
	day = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, uint64(20260105), domain.TaskIDPrefix(day))
}

func TestTaskIDRange(t *testing.T) {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	lo, hi := domain.TaskIDRange(day)
	require.Equal(t, uint64(2026031200), lo)
	require.Equal(t, uint64(2026031299), hi)
}

func TestNextTaskID_FirstOfDay(t *testing.T) {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	id, err := domain.NextTaskID(day, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(2026031201), id)
}

func TestNextTaskID_IncrementsFromExisting(t *testing.T) {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	id, err := domain.NextTaskID(day, 2026031207)
	require.NoError(t, err)
	require.Equal(t, uint64(2026031208), id)
}

func TestNextTaskID_SequenceExhausted(t *testing.T) {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	_, err := domain.NextTaskID(day, 2026031299)
	require.ErrorIs(t, err, domain.ErrDailySequenceFull)
}
