package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

// fakeConn records every frame it accepts.
type fakeConn struct {
	frames []core.Frame
	full   bool
	closed int
}

func (c *fakeConn) TrySend(f core.Frame) error {
	if c.closed > 0 {
		return core.ErrConnClosed
	}
	if c.full {
		return core.ErrBackpressure
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *fakeConn) Close() { c.closed++ }

type frame struct {
	Type      string          `json:"type"`
	Count     int             `json:"count"`
	Mode      string          `json:"mode"`
	PartnerID string          `json:"partnerId"`
	Initiator bool            `json:"initiator"`
	From      string          `json:"from"`
	Message   json.RawMessage `json:"message"`
	Signal    json.RawMessage `json:"signal"`
}

func (c *fakeConn) decoded(t *testing.T) []frame {
	t.Helper()
	out := make([]frame, 0, len(c.frames))
	for _, f := range c.frames {
		var fr frame
		require.NoError(t, json.Unmarshal(f, &fr))
		out = append(out, fr)
	}
	return out
}

func (c *fakeConn) ofType(t *testing.T, typ string) []frame {
	t.Helper()
	var out []frame
	for _, fr := range c.decoded(t) {
		if fr.Type == typ {
			out = append(out, fr)
		}
	}
	return out
}

func (c *fakeConn) reset() { c.frames = nil }

// seqCoin returns its values in order and then repeats the last one.
type seqCoin struct {
	values []int
	calls  int
}

func (c *seqCoin) Intn(int) int {
	v := c.values[len(c.values)-1]
	if c.calls < len(c.values) {
		v = c.values[c.calls]
	}
	c.calls++
	return v
}

func connectN(t *testing.T, r *Rendezvous, ids ...domain.ParticipantID) map[domain.ParticipantID]*fakeConn {
	t.Helper()
	conns := make(map[domain.ParticipantID]*fakeConn, len(ids))
	for _, id := range ids {
		c := &fakeConn{}
		require.True(t, r.Connect(id, c))
		conns[id] = c
	}
	for _, c := range conns {
		c.reset()
	}
	return conns
}
