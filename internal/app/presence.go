package app

// Presence counts connections that have not completed disconnect cleanup.
type Presence struct {
	count int
}

func (p *Presence) Inc() int {
	p.count++
	return p.count
}

// Dec never goes below zero.
func (p *Presence) Dec() int {
	if p.count > 0 {
		p.count--
	}
	return p.count
}

func (p *Presence) Count() int { return p.count }
