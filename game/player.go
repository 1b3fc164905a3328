package game

import "github.com/kevin-chtw/tw_riichi/mahjong"

// Participant 一个座位上的参与者
type Participant struct {
	id    string
	seat  int32
	actor mahjong.Actor
}

func NewParticipant(id string, actor mahjong.Actor) *Participant {
	return &Participant{id: id, seat: mahjong.SeatNull, actor: actor}
}

func (p *Participant) ID() string {
	return p.id
}

func (p *Participant) Seat() int32 {
	return p.seat
}

func (p *Participant) Actor() mahjong.Actor {
	return p.actor
}
