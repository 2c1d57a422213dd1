package app

import (
	"github.com/pion/randutil"

	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

// Coin picks the initiator of a match. Intn(2) must return 0 or 1 with equal
// probability.
type Coin interface {
	Intn(n int) int
}

// NewCoin returns the default unbiased coin.
func NewCoin() Coin {
	return randutil.NewMathRandomGenerator()
}

// Matchmaker pairs the two oldest waiters of a mode until fewer than two remain.
type Matchmaker struct {
	queues *QueueManager
	coin   Coin
}

func NewMatchmaker(queues *QueueManager, coin Coin) *Matchmaker {
	if coin == nil {
		coin = NewCoin()
	}
	return &Matchmaker{queues: queues, coin: coin}
}

// Run drains mode's queue two at a time, oldest first.
func (m *Matchmaker) Run(mode domain.Mode) []domain.Match {
	var matches []domain.Match
	for {
		a, b, ok := m.queues.PopPair(mode)
		if !ok {
			return matches
		}
		match := domain.Match{Mode: mode, Initiator: a, Receiver: b}
		if m.coin.Intn(2) == 1 {
			match.Initiator, match.Receiver = b, a
		}
		matches = append(matches, match)
	}
}
