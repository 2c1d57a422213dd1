package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

func TestQueueManager_Enqueue_SwitchingModeLeavesPreviousQueue(t *testing.T) {
	req := require.New(t)
	q := NewQueueManager()

	// Given a participant waiting for text
	req.True(q.Enqueue("p1", domain.ModeText))

	// When it asks for video
	req.True(q.Enqueue("p1", domain.ModeVideo))

	// Then it only waits for video
	req.Zero(q.Len(domain.ModeText))
	req.Equal([]domain.ParticipantID{"p1"}, q.queued(domain.ModeVideo))
	m, ok := q.ModeOf("p1")
	req.True(ok)
	req.Equal(domain.ModeVideo, m)
}

func TestQueueManager_Enqueue_RejoinIsIdempotent(t *testing.T) {
	req := require.New(t)
	q := NewQueueManager()

	q.Enqueue("p1", domain.ModeVoice)
	q.Enqueue("p2", domain.ModeVoice)
	q.Enqueue("p1", domain.ModeVoice)

	// A re-join moves the participant to the tail, never duplicates it.
	req.Equal([]domain.ParticipantID{"p2", "p1"}, q.queued(domain.ModeVoice))
}

func TestQueueManager_Enqueue_UnknownModeIsNoop(t *testing.T) {
	req := require.New(t)
	q := NewQueueManager()
	q.Enqueue("p1", domain.ModeText)

	req.False(q.Enqueue("p1", domain.Mode("audio")))

	req.Equal([]domain.ParticipantID{"p1"}, q.queued(domain.ModeText))
}

func TestQueueManager_SingleQueueInvariant(t *testing.T) {
	req := require.New(t)
	q := NewQueueManager()
	ids := []domain.ParticipantID{"a", "b", "c"}

	for i := 0; i < 30; i++ {
		q.Enqueue(ids[i%len(ids)], domain.Modes[(i*7)%len(domain.Modes)])

		for _, id := range ids {
			seen := 0
			for _, m := range domain.Modes {
				for _, w := range q.queued(m) {
					if w == id {
						seen++
					}
				}
			}
			req.LessOrEqual(seen, 1, "participant %s in %d queues", id, seen)
		}
	}
}

func TestQueueManager_RemoveEverywhere(t *testing.T) {
	req := require.New(t)
	q := NewQueueManager()
	q.Enqueue("p1", domain.ModeText)
	q.Enqueue("p2", domain.ModeText)

	req.True(q.RemoveEverywhere("p1"))
	req.False(q.RemoveEverywhere("p1"))
	req.False(q.RemoveEverywhere("ghost"))

	req.Equal([]domain.ParticipantID{"p2"}, q.queued(domain.ModeText))
}

func TestQueueManager_PopPair_OldestFirst(t *testing.T) {
	req := require.New(t)
	q := NewQueueManager()
	for _, id := range []domain.ParticipantID{"p1", "p2", "p3"} {
		q.Enqueue(id, domain.ModeText)
	}

	a, b, ok := q.PopPair(domain.ModeText)
	req.True(ok)
	req.Equal(domain.ParticipantID("p1"), a)
	req.Equal(domain.ParticipantID("p2"), b)

	_, _, ok = q.PopPair(domain.ModeText)
	req.False(ok)
	req.Equal([]domain.ParticipantID{"p3"}, q.queued(domain.ModeText))
}

func TestQueueManager_Lengths(t *testing.T) {
	q := NewQueueManager()
	q.Enqueue("p1", domain.ModeText)
	q.Enqueue("p2", domain.ModeVideo)
	q.Enqueue("p3", domain.ModeVideo)

	require.Equal(t, map[domain.Mode]int{
		domain.ModeText:  1,
		domain.ModeVoice: 0,
		domain.ModeVideo: 2,
	}, q.Lengths())
}
