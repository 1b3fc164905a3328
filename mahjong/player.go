package mahjong

// Player 跨局的玩家数据
type Player struct {
	seat  int32
	score int64
	rank  int32
}

func NewPlayer(seat int32, score int64) *Player {
	return &Player{seat: seat, score: score}
}

func (p *Player) Seat() int32 {
	return p.seat
}

func (p *Player) GetCurScore() int64 {
	return p.score
}

func (p *Player) AddScore(delta int64) {
	p.score += delta
}

func (p *Player) Rank() int32 {
	return p.rank
}

func (p *Player) SetRank(r int32) {
	p.rank = r
}
