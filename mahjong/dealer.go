package mahjong

import (
	"errors"
	"math/rand"
)

var ErrWallEmpty = errors.New("wall is empty")

// Dealer 发牌器, 持有活牌墙与王牌区
type Dealer struct {
	rule     *Rule
	tileWall []Tile
	doras    []Tile // 宝牌指示牌
	uras     []Tile // 里宝牌指示牌
	rinshan  []Tile // 岭上牌
	doraOpen int    // 已翻开的指示牌数
}

// NewDealer 同一(rule, seed)必然生成同一副牌墙
func NewDealer(rule *Rule, seed int64) *Dealer {
	d := &Dealer{rule: rule}
	d.initialize(rand.New(rand.NewSource(seed)))
	return d
}

func (d *Dealer) initialize(rng *rand.Rand) {
	wall := make([]Tile, 0, TileCountWall)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			red := 0
			if c != ColorHonor && p == 5 {
				red = d.rule.RedFives[c]
			}
			for i := 0; i < 4; i++ {
				if i < red {
					wall = append(wall, MakeTile(c, 0))
				} else {
					wall = append(wall, MakeTile(c, p))
				}
			}
		}
	}
	rng.Shuffle(len(wall), func(i, j int) {
		wall[i], wall[j] = wall[j], wall[i]
	})

	// 先抽出王牌区: 宝牌/里宝牌指示牌各5张, 岭上牌4张
	d.doras, wall = wall[:DeadWallDoras], wall[DeadWallDoras:]
	d.uras, wall = wall[:DeadWallUras], wall[DeadWallUras:]
	d.rinshan, wall = wall[:DeadWallRinshan], wall[DeadWallRinshan:]
	d.tileWall = wall
	d.doraOpen = 0
	d.RevealDora()
}

// Deal 配牌, 庄家先拿
func (d *Dealer) Deal(banker int32) [SeatCount][]Tile {
	var hands [SeatCount][]Tile
	for i := int32(0); i < SeatCount; i++ {
		seat := GetNextSeat(banker, i, SeatCount)
		hands[seat] = d.tileWall[:TileCountInitNormal]
		d.tileWall = d.tileWall[TileCountInitNormal:]
	}
	return hands
}

func (d *Dealer) DrawTile() (Tile, error) {
	if len(d.tileWall) == 0 {
		return TileNull, ErrWallEmpty
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile, nil
}

// DrawReplacement 杠或拔北后摸岭上牌, 王牌区从墙尾补足, 可摸数随之减一
func (d *Dealer) DrawReplacement() (Tile, error) {
	if len(d.rinshan) == 0 {
		return TileNull, ErrWallEmpty
	}
	tile := d.rinshan[0]
	d.rinshan = d.rinshan[1:]
	if n := len(d.tileWall); n > 0 {
		d.rinshan = append(d.rinshan, d.tileWall[n-1])
		d.tileWall = d.tileWall[:n-1]
	}
	return tile, nil
}

// RevealDora 翻开下一张宝牌指示牌
func (d *Dealer) RevealDora() Tile {
	if d.doraOpen >= DoraIndicatorMax {
		return TileNull
	}
	tile := d.doras[d.doraOpen]
	d.doraOpen++
	return tile
}

// DoraIndicators 已翻开的宝牌指示牌
func (d *Dealer) DoraIndicators() []Tile {
	return d.doras[:d.doraOpen]
}

// UraIndicators 与已翻开宝牌同数的里宝牌指示牌
func (d *Dealer) UraIndicators() []Tile {
	return d.uras[:d.doraOpen]
}

func (d *Dealer) DoraCount() int {
	return d.doraOpen
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall))
}
