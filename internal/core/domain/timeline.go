package domain

import (
	"fmt"
	"sort"
	"time"
)

type TimelineEntryKind string

const (
	TimelineStatusChange TimelineEntryKind = "status_change"
	TimelineTaskEvent    TimelineEntryKind = "task_event"
)

// TimelineEntry is one row of the audit timeline shown on a task. Status
// entries carry the time spent in the previous status; event entries carry
// the event type and, for invoice events, the invoice number.
type TimelineEntry struct {
	Kind          TimelineEntryKind
	Status        TaskStatus
	FromStatus    *TaskStatus
	EventType     TaskEventType
	InvoiceNumber *string
	Timestamp     time.Time
	Duration      string
}

// BuildTimeline merges a task's status history and events into one
// time-ordered view. It is a pure function over well-formed input: the first
// history entry is expected to sit at createdAt per the task invariants.
func BuildTimeline(createdAt time.Time, history []StatusChange, events []TaskEvent) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(history)+len(events))

	prev := createdAt
	for _, h := range history {
		entries = append(entries, TimelineEntry{
			Kind:       TimelineStatusChange,
			Status:     h.Status,
			FromStatus: h.FromStatus,
			Timestamp:  h.Timestamp,
			Duration:   FormatDuration(h.Timestamp.Sub(prev)),
		})
		prev = h.Timestamp
	}

	for _, e := range events {
		entries = append(entries, TimelineEntry{
			Kind:          TimelineTaskEvent,
			EventType:     e.Type,
			InvoiceNumber: e.InvoiceNumber,
			Timestamp:     e.Timestamp,
		})
	}

	// Stable: status entries stay ahead of events sharing a timestamp.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return entries
}

// FormatDuration renders a segment duration the way the board displays it:
// "2d 5h", "5h" or "42m", floor-truncated.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	days := hours / 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours%24)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
