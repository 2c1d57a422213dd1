package domain

// Match is the transient result of pairing two waiting participants.
// It is delivered once to each side and never stored.
type Match struct {
	Mode      Mode
	Initiator ParticipantID
	Receiver  ParticipantID
}

// PartnerOf returns the other side of the match for id.
func (m Match) PartnerOf(id ParticipantID) (ParticipantID, bool) {
	switch id {
	case m.Initiator:
		return m.Receiver, true
	case m.Receiver:
		return m.Initiator, true
	default:
		return "", false
	}
}
