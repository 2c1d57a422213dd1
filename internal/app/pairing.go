package app

import "github.com/VedSharma9644/Omegle-clone/internal/domain"

// PairingTable holds the symmetric partner relation of modes that keep a
// standing relay address. For every a: partnerOf[partnerOf[a]] == a, or a has
// no entry at all.
type PairingTable struct {
	partnerOf map[domain.ParticipantID]domain.ParticipantID
}

func NewPairingTable() *PairingTable {
	return &PairingTable{partnerOf: make(map[domain.ParticipantID]domain.ParticipantID)}
}

// Pair links a and b, dropping any stale entries either side had.
func (t *PairingTable) Pair(a, b domain.ParticipantID) {
	t.Unpair(a)
	t.Unpair(b)
	t.partnerOf[a] = b
	t.partnerOf[b] = a
}

// Unpair removes a and its partner from the table and returns the partner.
// Calling it for an unpaired participant is a no-op.
func (t *PairingTable) Unpair(a domain.ParticipantID) (domain.ParticipantID, bool) {
	partner, ok := t.partnerOf[a]
	if !ok {
		return "", false
	}
	delete(t.partnerOf, a)
	if t.partnerOf[partner] == a {
		delete(t.partnerOf, partner)
	}
	return partner, true
}

func (t *PairingTable) PartnerOf(a domain.ParticipantID) (domain.ParticipantID, bool) {
	p, ok := t.partnerOf[a]
	return p, ok
}

// Len returns the number of pairs.
func (t *PairingTable) Len() int { return len(t.partnerOf) / 2 }
