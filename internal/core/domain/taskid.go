package domain

import "time"

// Task ids encode their creation date: yyyymmdd followed by a two-digit daily
// sequence (01–99). The sequence is derived from existing ids sharing the
// day's prefix, not from a separate counter, so it stays consistent with data
// created before this service existed.

const maxDailySequence = 99

// TaskIDPrefix returns the yyyymmdd prefix for the given day.
func TaskIDPrefix(day time.Time) uint64 {
	return uint64(day.Year())*10000 + uint64(day.Month())*100 + uint64(day.Day())
}

// TaskIDRange returns the inclusive id range covering one day's tasks.
func TaskIDRange(day time.Time) (lo, hi uint64) {
	prefix := TaskIDPrefix(day)
	return prefix * 100, prefix*100 + maxDailySequence
}

// NextTaskID computes the next id for a day given the highest existing id in
// that day's range (0 when the day has no tasks yet). Returns
// ErrDailySequenceFull once the two-digit sequence is used up.
func NextTaskID(day time.Time, maxExisting uint64) (uint64, error) {
	prefix := TaskIDPrefix(day)
	seq := uint64(0)
	if maxExisting != 0 {
		seq = maxExisting % 100
	}
	if seq >= maxDailySequence {
		return 0, ErrDailySequenceFull
	}
	return prefix*100 + seq + 1, nil
}
