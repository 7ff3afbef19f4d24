package model

// Player is a seat in a simulated game
type Player struct {
	Name   string `json:"name"`
	Rack   Rack   `json:"rack"`
	Points int    `json:"points"`
}

// NewPlayer creates a player with an empty rack
func NewPlayer(name string) *Player {
	return &Player{Name: name, Rack: Rack{}}
}

// NeedsTiles returns how many tiles fill the rack back up to RackSize
func (p *Player) NeedsTiles() int {
	if n := RackSize - len(p.Rack); n > 0 {
		return n
	}
	return 0
}

// AddTiles appends drawn tiles to the rack
func (p *Player) AddTiles(tiles []Letter) {
	p.Rack = append(p.Rack, tiles...)
}

// RemoveTiles takes played or exchanged tiles out of the rack
func (p *Player) RemoveTiles(tiles []Letter) error {
	rack, err := p.Rack.Remove(tiles)
	if err != nil {
		return err
	}
	p.Rack = rack
	return nil
}
