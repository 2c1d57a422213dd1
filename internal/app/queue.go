package app

import (
	"github.com/samber/lo"

	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

// QueueManager keeps one FIFO waiting list per mode. A participant is
// present in at most one of them.
type QueueManager struct {
	queues map[domain.Mode][]domain.ParticipantID
}

func NewQueueManager() *QueueManager {
	q := &QueueManager{queues: make(map[domain.Mode][]domain.ParticipantID, len(domain.Modes))}
	for _, m := range domain.Modes {
		q.queues[m] = nil
	}
	return q
}

// Enqueue removes sid from every queue and appends it to the tail of mode's
// queue. It reports false for an unrecognized mode and leaves state untouched.
func (q *QueueManager) Enqueue(sid domain.ParticipantID, mode domain.Mode) bool {
	if _, ok := q.queues[mode]; !ok {
		return false
	}
	q.RemoveEverywhere(sid)
	q.queues[mode] = append(q.queues[mode], sid)
	return true
}

// RemoveEverywhere drops sid from all queues and reports whether it was queued.
func (q *QueueManager) RemoveEverywhere(sid domain.ParticipantID) bool {
	removed := false
	for m, waiting := range q.queues {
		if !lo.Contains(waiting, sid) {
			continue
		}
		q.queues[m] = lo.Without(waiting, sid)
		removed = true
	}
	return removed
}

// PopPair takes the two oldest waiters of mode.
func (q *QueueManager) PopPair(mode domain.Mode) (domain.ParticipantID, domain.ParticipantID, bool) {
	waiting := q.queues[mode]
	if len(waiting) < 2 {
		return "", "", false
	}
	a, b := waiting[0], waiting[1]
	q.queues[mode] = waiting[2:]
	return a, b, true
}

func (q *QueueManager) Len(mode domain.Mode) int { return len(q.queues[mode]) }

// queued returns a copy of mode's queue, oldest first. Used by tests.
func (q *QueueManager) queued(mode domain.Mode) []domain.ParticipantID {
	return append([]domain.ParticipantID(nil), q.queues[mode]...)
}

// ModeOf returns the mode sid is currently waiting in.
func (q *QueueManager) ModeOf(sid domain.ParticipantID) (domain.Mode, bool) {
	for _, m := range domain.Modes {
		if lo.Contains(q.queues[m], sid) {
			return m, true
		}
	}
	return "", false
}

// Lengths reports the queue depth of every mode.
func (q *QueueManager) Lengths() map[domain.Mode]int {
	return lo.MapValues(q.queues, func(waiting []domain.ParticipantID, _ domain.Mode) int {
		return len(waiting)
	})
}
